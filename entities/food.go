package entities

import (
	"time"
)

type Food struct {
	ID           int64     `gorm:"column:food_id;primaryKey;autoIncrement" json:"food_id"`
	Name         string    `gorm:"not null" json:"name"`
	Brand        string    `gorm:"not null;default:''" json:"brand"`
	ServingUnit  string    `gorm:"not null" json:"serving_unit"` // "g" or "ml"
	Energy       float64   `gorm:"not null" json:"energy"`
	Protein      float64   `gorm:"not null" json:"protein"`
	Fat          float64   `gorm:"not null" json:"fat"`
	FatSaturated float64   `gorm:"not null" json:"fat_saturated"`
	Carbs        float64   `gorm:"not null" json:"carbs"`
	CarbsSugars  float64   `gorm:"not null" json:"carbs_sugars"`
	Fibre        float64   `gorm:"not null" json:"fibre"`
	Sodium       float64   `gorm:"not null" json:"sodium"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
}

func (Food) TableName() string {
	return "foods"
}

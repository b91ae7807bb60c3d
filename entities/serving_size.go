package entities

import (
	"time"
)

type ServingSize struct {
	ID        int64     `gorm:"column:serving_id;primaryKey;autoIncrement" json:"serving_id"`
	FoodID    int64     `gorm:"not null;index" json:"food_id"`
	Name      string    `gorm:"column:serving_name;not null" json:"serving_name"`
	Amount    float64   `gorm:"column:serving_amount;not null" json:"serving_amount"` // in the food's base unit
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`

	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ServingSize) TableName() string {
	return "serving_sizes"
}

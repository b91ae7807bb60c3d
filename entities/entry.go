package entities

import (
	"time"
)

type Entry struct {
	ID     int64  `gorm:"column:entry_id;primaryKey;autoIncrement" json:"entry_id"`
	Date   string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	FoodID int64  `gorm:"not null;index" json:"food_id"`
	// ServingID has no foreign key. Deleting a serving size leaves the
	// reference dangling and the daily log flags it.
	ServingID *int64    `json:"serving_id,omitempty"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`

	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Entry) TableName() string {
	return "entries"
}

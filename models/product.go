package models

import "time"

// Product is one catalog entry, scoped to a single restaurant.
type Product struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RestaurantID    uint      `gorm:"not null;index" json:"restaurant_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category        string    `gorm:"type:varchar(100);not null" json:"category"`
	Image           string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	PreparationTime int       `gorm:"not null;default:15" json:"preparation_time"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

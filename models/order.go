package models

import "time"

// Order captures one submitted cart against a table session.
// TotalAmount is fixed at creation time from catalog prices.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	RestaurantID    uint        `gorm:"not null;index" json:"restaurant_id"`
	TableID         uint        `gorm:"not null;index" json:"table_id"`
	Table           Table       `gorm:"foreignKey:TableID" json:"table"`
	SessionID       string      `gorm:"type:varchar(64);not null" json:"session_id"`
	Status          string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	OrderNumber     string      `gorm:"type:varchar(50);unique" json:"order_number"`
	SpecialRequests string      `gorm:"type:text" json:"special_requests,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

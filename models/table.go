package models

import "time"

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"

	LocationInterior = "interior"
	LocationTerrace  = "terrace"
)

// Table is a physical table. CurrentSession is the token binding a dining
// party to the table; it is non-nil exactly while the table is occupied.
type Table struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RestaurantID   uint      `gorm:"not null;uniqueIndex:idx_restaurant_number" json:"restaurant_id"`
	Number         int       `gorm:"not null;uniqueIndex:idx_restaurant_number" json:"number"`
	Capacity       int       `gorm:"not null" json:"capacity"`
	Location       string    `gorm:"type:varchar(20);not null" json:"location"`
	IsOccupied     bool      `gorm:"not null;default:false" json:"is_occupied"`
	CurrentSession *string   `gorm:"type:varchar(64)" json:"current_session"`
	Status         string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	QRCode         string    `gorm:"type:text" json:"qr_code"`
	MenuURL        string    `gorm:"type:varchar(255)" json:"menu_url"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func ValidTableStatus(s string) bool {
	return s == TableAvailable || s == TableOccupied || s == TableReserved
}

func ValidTableLocation(l string) bool {
	return l == LocationInterior || l == LocationTerrace
}

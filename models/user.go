package models

import "time"

const (
	RoleRestaurant = "restaurant"
	RoleAdmin      = "admin"
)

// User is a restaurant account. The owner signs in with it and every
// table, product and order hangs off its ID.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	Role        string    `gorm:"type:varchar(50);not null;default:'restaurant'" json:"role"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Cuisine     string    `gorm:"type:varchar(100)" json:"cuisine,omitempty"`
	Street      string    `gorm:"type:varchar(255)" json:"street,omitempty"`
	City        string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country     string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	PostalCode  string    `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

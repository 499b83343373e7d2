package models

import "time"

// Role is the closed set of account roles. A user is exactly one of these;
// the "both" state of the two role flags on the wire is unrepresentable here.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantOwner Role = "restaurant_owner"
)

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleRestaurantOwner
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsCustomer reports the customer role flag as exposed on the wire.
func (u *User) IsCustomer() bool { return u.Role == RoleCustomer }

// IsRestaurantOwner reports the owner role flag as exposed on the wire.
func (u *User) IsRestaurantOwner() bool { return u.Role == RoleRestaurantOwner }

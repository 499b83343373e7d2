package models

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	CustomerID   uint        `json:"customer_id" gorm:"not null;index"`
	Customer     User        `json:"-" gorm:"foreignKey:CustomerID"`
	RestaurantID uint        `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant  `json:"-" gorm:"foreignKey:RestaurantID"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'received'"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID                  uint     `json:"id" gorm:"primaryKey"`
	OrderID             uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID          uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem            MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity            int      `json:"quantity" gorm:"not null"`
	SpecialInstructions string   `json:"special_instructions" gorm:"type:text"` // unbounded, round-trips exactly
}

package models

import "time"

// Order is an immutable snapshot of a checked-out cart. UserID is nil for
// guest checkouts. Item prices are copied at purchase time, so later
// catalog changes never affect historical orders.
type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef  string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID    *uint       `gorm:"index" json:"user_id,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64     `gorm:"not null" json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

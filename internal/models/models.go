package models

import (
	"time"
)

// User - Who is behind the till (or the admin screens)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `gorm:"size:20" json:"role"` // 'superadmin', 'admin', 'sales'
	CreatedAt    time.Time `json:"created_at"`
}

// Category groups products. Deleting one takes its products with it.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Product - The Inventory
type Product struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Name             string      `gorm:"size:100" json:"name"`
	CategoryID       uint        `json:"category_id"`
	Price            float64     `json:"price"`
	Stock            int         `json:"stock"`
	ImageURL         string      `gorm:"size:255" json:"image_url"`
	CreatedAt        time.Time   `json:"created_at"`
	InventoryRecords []Inventory `gorm:"foreignKey:ProductID" json:"-"`
}

// Sale - The Transaction Header
type Sale struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `json:"user_id"` // Who processed it
	TotalAmount float64    `json:"total_amount"`
	TotalItems  int        `json:"total_items"`
	SaleTime    time.Time  `json:"sale_time"`
	Items       []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
}

// SaleItem - The specific items sold in one transaction
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `json:"sale_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"` // Preload product details
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Snapshot of price at time of sale
}

// Inventory - One snapshot row per product per sale, kept for reporting.
// Month and Year are denormalized from RecordDate so the report filters stay cheap.
type Inventory struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ProductID         uint      `json:"product_id"`
	Product           Product   `json:"product"`
	QuantitySold      int       `json:"quantity_sold"`
	QuantityRemaining int       `json:"quantity_remaining"`
	RecordDate        time.Time `json:"record_date"`
	Month             string    `gorm:"size:20" json:"month"`
	Year              int       `json:"year"`
}

package database

import (
	"errors"
	"fmt"
	"time"

	"go-grocery-pos/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CartLine is one product+quantity+price entry handed to the sale
// transaction. Price is the unit price copied when the line entered the
// cart, not the live product price.
type CartLine struct {
	ProductID uint
	Name      string
	Price     float64
	Quantity  int
}

// ProcessSale turns a cart into persistent rows: one Sale header, one
// SaleItem and one Inventory snapshot per line, and a stock decrement per
// product. Everything happens in a single transaction; any failure rolls
// the whole sale back.
//
// The decrement is a conditional UPDATE guarded on stock >= quantity, so
// two tills selling the same product at once cannot drive stock negative.
func ProcessSale(userID uint, lines []CartLine) (uint, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var totalAmount float64
	var totalItems int
	for _, line := range lines {
		totalAmount += line.Price * float64(line.Quantity)
		totalItems += line.Quantity
	}

	now := time.Now()
	sale := models.Sale{
		UserID:      userID,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
		SaleTime:    now,
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, line := range lines {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, line.Name)
			}

			item := models.SaleItem{
				SaleID:    sale.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			// Re-read the decremented stock for the snapshot.
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				return err
			}
			snapshot := models.Inventory{
				ProductID:         line.ProductID,
				QuantitySold:      line.Quantity,
				QuantityRemaining: product.Stock,
				RecordDate:        now,
				Month:             now.Month().String(),
				Year:              now.Year(),
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sale.ID, nil
}

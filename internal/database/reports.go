package database

import (
	"go-grocery-pos/internal/models"
)

// InventoryFilter narrows the snapshot listing. Zero values mean "no
// filter" for their field; callers are expected to have validated the
// raw query parameters already (malformed ones are dropped, not errors).
type InventoryFilter struct {
	Month      string
	Year       int
	Date       string // YYYY-MM-DD, compared against the date part of record_date
	CategoryID uint
}

// ListInventory returns snapshot rows matching the filter, product
// preloaded, newest first.
func ListInventory(f InventoryFilter) ([]models.Inventory, error) {
	q := DB.Preload("Product").Model(&models.Inventory{})
	if f.Month != "" {
		q = q.Where("month = ?", f.Month)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.Date != "" {
		q = q.Where("DATE(record_date) = ?", f.Date)
	}
	if f.CategoryID != 0 {
		q = q.Joins("JOIN products ON products.id = inventories.product_id").
			Where("products.category_id = ?", f.CategoryID)
	}

	var records []models.Inventory
	err := q.Order("record_date desc").Find(&records).Error
	return records, err
}

// CategoryStockRow is the pivoted report line shown when a category filter
// is active: total sold over the filtered window plus the live stock.
type CategoryStockRow struct {
	Product           models.Product `json:"product"`
	QuantitySold      int            `json:"quantity_sold"`
	QuantityRemaining int            `json:"quantity_remaining"`
}

// CategoryInventory pivots the report to one row per product in the
// category. QuantityRemaining is the product's current stock, not a
// historical value.
func CategoryInventory(f InventoryFilter) ([]CategoryStockRow, error) {
	var products []models.Product
	err := DB.Where("category_id = ?", f.CategoryID).Order("name").Find(&products).Error
	if err != nil {
		return nil, err
	}

	rows := make([]CategoryStockRow, 0, len(products))
	for _, p := range products {
		q := DB.Model(&models.Inventory{}).Where("product_id = ?", p.ID)
		if f.Month != "" {
			q = q.Where("month = ?", f.Month)
		}
		if f.Year != 0 {
			q = q.Where("year = ?", f.Year)
		}
		if f.Date != "" {
			q = q.Where("DATE(record_date) = ?", f.Date)
		}

		var sold int
		if err := q.Select("COALESCE(SUM(quantity_sold), 0)").Scan(&sold).Error; err != nil {
			return nil, err
		}

		rows = append(rows, CategoryStockRow{
			Product:           p,
			QuantitySold:      sold,
			QuantityRemaining: p.Stock,
		})
	}
	return rows, nil
}

// SnapshotYears lists the distinct years present in the snapshots,
// ascending, for the report's year dropdown.
func SnapshotYears() ([]int, error) {
	var years []int
	err := DB.Model(&models.Inventory{}).
		Distinct("year").
		Order("year asc").
		Pluck("year", &years).Error
	return years, err
}

// HistoryEntry is one sale in a user's history together with the revenue
// accumulated so far (newest sale first).
type HistoryEntry struct {
	Sale         models.Sale `json:"sale"`
	RunningTotal float64     `json:"running_total"`
}

// SalesHistory returns the user's sales in reverse-chronological order
// with a running revenue total.
func SalesHistory(userID uint) ([]HistoryEntry, error) {
	var sales []models.Sale
	err := DB.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("sale_time desc").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(sales))
	var running float64
	for _, s := range sales {
		running += s.TotalAmount
		entries = append(entries, HistoryEntry{Sale: s, RunningTotal: running})
	}
	return entries, nil
}

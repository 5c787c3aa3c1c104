package database

import (
	"go-grocery-pos/internal/models"

	"gorm.io/gorm"
)

// DeleteCategory hard-deletes a category together with its products and
// their inventory snapshots, in one transaction. Sale items survive so
// past receipts stay intact.
func DeleteCategory(id uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error
		if err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Inventory{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// DeleteProduct hard-deletes a product and its inventory snapshots.
func DeleteProduct(id uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

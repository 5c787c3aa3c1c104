package database

import (
	"path/filepath"
	"testing"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupDB points the package-level DB at a fresh sqlite file for one test.
func setupDB(t *testing.T) {
	t.Helper()
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "pos_test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	old := DB
	DB = db
	t.Cleanup(func() { DB = old })
}

func seedCatalog(t *testing.T, name string, price float64, stock int) (models.Category, models.Product) {
	t.Helper()
	category := models.Category{Name: "Produce-" + name, Description: "test"}
	require.NoError(t, DB.Create(&category).Error)

	product := models.Product{
		Name:       name,
		CategoryID: category.ID,
		Price:      price,
		Stock:      stock,
	}
	require.NoError(t, DB.Create(&product).Error)
	return category, product
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestSeedSuperadmin(t *testing.T) {
	setupDB(t)
	t.Setenv("SUPERADMIN_PASSWORD", "bootstrap-pass")

	require.NoError(t, SeedSuperadmin(DB))

	var user models.User
	require.NoError(t, DB.Where("username = ?", "superadmin").First(&user).Error)
	assert.Equal(t, auth.RoleSuperadmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("bootstrap-pass")))

	// Idempotent: a second call must not add another user.
	require.NoError(t, SeedSuperadmin(DB))
	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteCategory_CascadesToProductsAndSnapshots(t *testing.T) {
	setupDB(t)
	category, product := seedCatalog(t, "Apple", 1.50, 10)

	_, err := ProcessSale(1, []CartLine{{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, DeleteCategory(category.ID))

	var categories int64
	require.NoError(t, DB.Model(&models.Category{}).Where("id = ?", category.ID).Count(&categories).Error)
	assert.Zero(t, categories)

	var products, snapshots int64
	require.NoError(t, DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&products).Error)
	require.NoError(t, DB.Model(&models.Inventory{}).Where("product_id = ?", product.ID).Count(&snapshots).Error)
	assert.Zero(t, products)
	assert.Zero(t, snapshots)
}

func TestDeleteProduct_CascadesToSnapshots(t *testing.T) {
	setupDB(t)
	_, product := seedCatalog(t, "Apple", 1.50, 10)

	_, err := ProcessSale(1, []CartLine{{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, DeleteProduct(product.ID))

	var snapshots int64
	require.NoError(t, DB.Model(&models.Inventory{}).Where("product_id = ?", product.ID).Count(&snapshots).Error)
	assert.Zero(t, snapshots)

	// The historical sale items survive the product's deletion.
	var items int64
	require.NoError(t, DB.Model(&models.SaleItem{}).Where("product_id = ?", product.ID).Count(&items).Error)
	assert.EqualValues(t, 1, items)
}

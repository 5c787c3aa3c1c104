package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name       string  `form:"name" json:"name" binding:"required"`
	CategoryID uint    `form:"category_id" json:"category_id" binding:"required"`
	Price      float64 `form:"price" json:"price"`
	Stock      int     `form:"stock" json:"stock"`
	ImageURL   string  `form:"image_url" json:"image_url"`
}

func validateProduct(c *gin.Context) (*ProductRequest, bool) {
	var input ProductRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return nil, false
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return nil, false
	}
	if input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
		return nil, false
	}
	var category models.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return nil, false
	}
	return &input, true
}

// --- GET: /admin/products ---
// The management page needs both lists: products to show, categories for
// the select box.
func ManageProducts(c *gin.Context) {
	var products []models.Product
	var categories []models.Category

	if err := database.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "categories": categories})
}

// --- POST: /admin/products ---
func CreateProduct(c *gin.Context) {
	input, ok := validateProduct(c)
	if !ok {
		return
	}

	var existing models.Product
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil && existing.Name == input.Name {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product already exists"})
		return
	}

	product := models.Product{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Stock:      input.Stock,
		ImageURL:   input.ImageURL,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --- GET: /admin/products/:id/edit ---
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- POST: /admin/products/:id/edit ---
// Replaces every mutable field, including an absolute stock set. No
// partial updates, no concurrency check: last writer wins.
func EditProduct(c *gin.Context) {
	var product models.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	input, ok := validateProduct(c)
	if !ok {
		return
	}

	product.Name = input.Name
	product.CategoryID = input.CategoryID
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	if err := database.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// --- POST: /admin/products/:id/delete ---
// Hard delete; inventory snapshots go with the product.
func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := database.DeleteProduct(product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// --- POST: /admin/upload ---
// Stores a product image under ./uploads and returns the URL to save on
// the product.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), file.Filename)
	filepath := "./uploads/" + filename

	if err := c.SaveUploadedFile(file, filepath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     baseURL + "/uploads/" + filename,
	})
}

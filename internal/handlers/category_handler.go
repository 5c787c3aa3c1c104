package handlers

import (
	"net/http"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
}

// --- GET: /admin/categories ---
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// --- POST: /admin/categories ---
func CreateCategory(c *gin.Context) {
	var input CategoryRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Duplicate pre-check. MySQL collations can match case-insensitively,
	// so compare the stored name byte-for-byte before rejecting.
	var existing models.Category
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil && existing.Name == input.Name {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
		return
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// --- GET: /admin/categories/:id/edit ---
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// --- POST: /admin/categories/:id/edit ---
// Replaces all mutable fields unconditionally, last writer wins.
func EditCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input CategoryRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// --- POST: /admin/categories/:id/delete ---
// Hard delete, cascading to the category's products and their inventory
// snapshots.
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := database.DeleteCategory(category.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

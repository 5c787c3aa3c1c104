package handlers

import (
	"net/http"
	"strconv"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"
	"go-grocery-pos/internal/session"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/products/:category_id ---
// Product picker data for the sales screen. Open to any logged-in role.
func ProductsByCategory(c *gin.Context) {
	catID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var products []models.Product
	if err := database.DB.Where("category_id = ?", catID).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// --- POST: /api/add-to-cart ---
// Rejects the add when the cumulative line quantity (already in cart plus
// requested) would exceed live stock; a rejected add leaves the cart
// untouched.
func AddToCart(c *gin.Context) {
	var input AddToCartRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, input.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	sessionID := c.GetString("sessionID")
	inCart := session.Default.CartQuantity(sessionID, product.ID)
	if inCart+input.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient stock"})
		return
	}

	session.Default.AddToCart(sessionID, session.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  input.Quantity,
		ImageURL:  product.ImageURL,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
}

// --- POST: /api/remove-from-cart/:id ---
func RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	session.Default.RemoveFromCart(c.GetString("sessionID"), uint(productID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"
	"go-grocery-pos/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// --- GET: /sales/home ---
func SalesHome(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// --- GET: /sales/checkout ---
// The cart with its totals, plus a display timestamp for the page header.
func Checkout(c *gin.Context) {
	cart := session.Default.Cart(c.GetString("sessionID"))

	var totalItems int
	var totalAmount float64
	for _, item := range cart {
		totalItems += item.Quantity
		totalAmount += float64(item.Quantity) * item.Price
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":         cart,
		"total_items":  totalItems,
		"total_amount": totalAmount,
		"date":         time.Now().Format("January 02, 2006 03:04 PM"),
	})
}

// --- POST: /api/process-sale ---
// Hands the session cart to the sale transaction and clears it on success.
func ProcessSale(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	userID := c.MustGet("userID").(uint)

	cart := session.Default.Cart(sessionID)
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	lines := make([]database.CartLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, database.CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	saleID, err := database.ProcessSale(userID, lines)
	if err != nil {
		if errors.Is(err, database.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		zap.L().Error("sale processing failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to process sale"})
		return
	}

	session.Default.ClearCart(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "sale_id": saleID})
}

// --- GET: /sales/receipt/:sale_id ---
func Receipt(c *gin.Context) {
	var sale models.Sale
	err := database.DB.Preload("Items").Preload("Items.Product").
		First(&sale, c.Param("sale_id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// --- GET: /sales/history ---
// The acting user's own sales, newest first, with a running revenue total.
func SalesHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := database.SalesHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": entries})
}

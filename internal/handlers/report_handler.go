package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"

	"github.com/gin-gonic/gin"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// parseInventoryFilter reads the optional query parameters. Malformed
// values are dropped, not rejected: a bad year or date simply means "no
// filter" for that field.
func parseInventoryFilter(c *gin.Context) database.InventoryFilter {
	var f database.InventoryFilter

	f.Month = c.Query("month")

	if y := c.Query("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			f.Year = year
		}
	}
	if d := c.Query("date"); d != "" {
		if _, err := time.Parse("2006-01-02", d); err == nil {
			f.Date = d
		}
	}
	if cat := c.Query("category"); cat != "" {
		if catID, err := strconv.Atoi(cat); err == nil && catID > 0 {
			f.CategoryID = uint(catID)
		}
	}
	return f
}

// --- GET: /admin/inventory?month=&year=&category=&date= ---
// With a category filter the report pivots to one row per product in that
// category; otherwise it lists the raw snapshot records. Dropdown data
// (months, snapshot years, categories) rides along in the response.
func GetInventoryReport(c *gin.Context) {
	f := parseInventoryFilter(c)

	years, err := database.SnapshotYears()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory years"})
		return
	}

	var categories []models.Category
	if err := database.DB.Order("LOWER(name)").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	resp := gin.H{
		"months":     monthNames,
		"years":      years,
		"categories": categories,
		"filter": gin.H{
			"month":    f.Month,
			"year":     f.Year,
			"date":     f.Date,
			"category": f.CategoryID,
		},
	}

	if f.CategoryID != 0 {
		rows, err := database.CategoryInventory(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build inventory report"})
			return
		}
		resp["inventory"] = rows
		c.JSON(http.StatusOK, resp)
		return
	}

	records, err := database.ListInventory(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	resp["inventory"] = records
	c.JSON(http.StatusOK, resp)
}

// --- GET: /admin/dashboard ---
func AdminDashboard(c *gin.Context) {
	var categories []models.Category
	var products []models.Product

	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	if err := database.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "products": products})
}

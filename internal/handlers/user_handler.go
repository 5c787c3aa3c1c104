package handlers

import (
	"net/http"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// --- GET: /superadmin/dashboard ---
func SuperadminDashboard(c *gin.Context) {
	var admins []models.User
	var salesUsers []models.User

	if err := database.DB.Where("role = ?", auth.RoleAdmin).Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if err := database.DB.Where("role = ?", auth.RoleSales).Find(&salesUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": admins, "sales_users": salesUsers})
}

type AddUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required"`
}

// --- POST: /superadmin/add-user ---
func AddUser(c *gin.Context) {
	var input AddUserRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Role != auth.RoleAdmin && input.Role != auth.RoleSales && input.Role != auth.RoleSuperadmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	// Pre-check, exact match: two users may not share a username.
	var existing models.User
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil && existing.Username == input.Username {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// --- POST: /superadmin/delete-user/:id ---
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

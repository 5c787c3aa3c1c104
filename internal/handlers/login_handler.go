package handlers

import (
	"net/http"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/database"
	"go-grocery-pos/internal/middleware"
	"go-grocery-pos/internal/models"
	"go-grocery-pos/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// homeFor maps a role to its landing page.
func homeFor(role string) string {
	switch role {
	case auth.RoleSuperadmin:
		return "/superadmin/dashboard"
	case auth.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/sales/home"
	}
}

// Index routes a logged-in user to their role's landing page, anyone
// else to login.
func Index(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.SessionCookie)
	if err == nil {
		if sessionID, err := auth.ValidateSessionToken(tokenString); err == nil {
			if sess, ok := session.Default.Get(sessionID); ok {
				c.Redirect(http.StatusFound, homeFor(sess.Role))
				return
			}
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage is the GET side of /login. The frontend renders the form; we
// just answer something sensible.
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Please log in"})
}

func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Unknown user and wrong password answer identically on purpose.
	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	sess := session.Default.Create(user.ID, user.Username, user.Role)
	token, err := auth.GenerateSessionToken(sess.ID)
	if err != nil {
		session.Default.Delete(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	// 12 hours, matching the token expiry.
	c.SetCookie(middleware.SessionCookie, token, 12*60*60, "/", "", false, true)

	zap.L().Info("user logged in", zap.String("username", user.Username), zap.String("role", user.Role))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": user.Username,
		"role":     user.Role,
		"redirect": homeFor(user.Role),
	})
}

func Logout(c *gin.Context) {
	if tokenString, err := c.Cookie(middleware.SessionCookie); err == nil {
		if sessionID, err := auth.ValidateSessionToken(tokenString); err == nil {
			session.Default.Delete(sessionID)
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// Unauthorized is the landing page for authenticated users who hit a
// route their role does not allow.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this page"})
}

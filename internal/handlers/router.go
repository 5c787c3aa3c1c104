package handlers

import (
	"net/http"
	"os"
	"time"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route in the app. Kept out of main so the handler
// tests can drive the real route table.
func NewRouter() *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })
	r.Static("/uploads", "./uploads")

	// Session lifecycle, open to everyone.
	r.GET("/", Index)
	r.GET("/login", LoginPage)
	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.GET("/unauthorized", Unauthorized)

	// --- PROTECTED ROUTES ---
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		sa := protected.Group("/superadmin")
		sa.Use(middleware.RequireRole(auth.RoleSuperadmin))
		{
			sa.GET("/dashboard", SuperadminDashboard)
			sa.POST("/add-user", AddUser)
			sa.POST("/delete-user/:id", DeleteUser)
		}

		adm := protected.Group("/admin")
		adm.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			adm.GET("/dashboard", AdminDashboard)

			adm.GET("/categories", ListCategories)
			adm.POST("/categories", CreateCategory)
			adm.GET("/categories/:id/edit", GetCategory)
			adm.POST("/categories/:id/edit", EditCategory)
			adm.POST("/categories/:id/delete", DeleteCategory)

			adm.GET("/products", ManageProducts)
			adm.POST("/products", CreateProduct)
			adm.GET("/products/:id/edit", GetProduct)
			adm.POST("/products/:id/edit", EditProduct)
			adm.POST("/products/:id/delete", DeleteProduct)
			adm.POST("/upload", UploadImage)

			adm.GET("/inventory", GetInventoryReport)
		}

		sales := protected.Group("/sales")
		sales.Use(middleware.RequireRole(auth.RoleSales))
		{
			sales.GET("/home", SalesHome)
			sales.GET("/checkout", Checkout)
			sales.GET("/receipt/:sale_id", Receipt)
			sales.GET("/history", SalesHistory)
		}

		api := protected.Group("/api")
		{
			// Any logged-in role may browse products.
			api.GET("/products/:category_id", ProductsByCategory)

			cart := api.Group("/")
			cart.Use(middleware.RequireRole(auth.RoleSales))
			{
				cart.POST("/add-to-cart", AddToCart)
				cart.POST("/remove-from-cart/:id", RemoveFromCart)
				cart.POST("/process-sale", ProcessSale)
			}
		}
	}

	return r
}

package routes

import (
	"os"
	"strings"
	"time"

	"arabica_back_end/internal/handlers"
	"arabica_back_end/internal/handlers/admin"
	"arabica_back_end/internal/handlers/menu"
	"arabica_back_end/internal/handlers/user"
	"arabica_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// ✅ CORS : origines autorisées depuis .env (frontend en dev par défaut)
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(origins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api", middleware.APIRateLimit())

	// ☕ Menu public
	api.GET("/menu", menu.GetMenu)
	api.GET("/menu/search", middleware.SearchRateLimit(), menu.SearchMenu)
	api.GET("/menu/category/:category", menu.GetMenuByCategory)
	api.GET("/menu/:id", menu.GetMenuItem)

	// 🖼️ Galerie publique
	api.GET("/gallery", handlers.GetGallery)

	// 📬 Contact et chatbot (publics)
	api.POST("/contact", handlers.SubmitContact)
	api.POST("/chat", handlers.Chat)

	// 🔐 Authentification
	api.POST("/auth/register", middleware.RegisterRateLimit(), user.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/:provider", user.BeginOAuth)
	api.GET("/auth/:provider/callback", user.OAuthCallback)

	// 👤 Espace client (JWT obligatoire)
	auth := api.Group("", middleware.AuthRequired())
	{
		auth.GET("/me", user.GetMe)
		auth.PUT("/me", user.UpdateMe)

		auth.GET("/addresses", user.ListMyAddresses)
		auth.POST("/addresses", user.AddAddress)
		auth.DELETE("/addresses/:id", user.DeleteAddress)

		// 🛒 Panier
		cart := auth.Group("/cart", middleware.CartRateLimit())
		{
			cart.GET("", user.GetCart)
			cart.POST("/items", user.AddToCart)
			cart.PUT("/items/:itemId", user.UpdateCartItem)
			cart.DELETE("/items/:itemId", user.RemoveFromCart)
			cart.DELETE("", user.ClearCart)
			cart.POST("/merge", user.MergeCart)
		}
		auth.GET("/ws/cart", user.CartWebSocket)

		// 📦 Commandes
		auth.POST("/checkout", user.Checkout)
		auth.GET("/orders/mine", user.GetMyOrders)
		auth.GET("/orders/:id", user.GetOrderByID)
		auth.POST("/orders/:id/cancel", user.CancelOrder)
		auth.POST("/orders/:id/reorder", user.Reorder)

		// ☕ Recommandations
		auth.GET("/recommendations", user.GetRecommendations)

		// 🔔 Notifications
		auth.GET("/notifications", user.GetNotifications)
		auth.PUT("/notifications/read-all", user.MarkAllNotificationsRead)
		auth.PUT("/notifications/:id/read", user.MarkNotificationRead)
		auth.DELETE("/notifications", user.DeleteNotifications)
		auth.GET("/ws/notifications", user.NotificationWebSocket)
	}

	// 🛠️ Back office (admin uniquement)
	adminGroup := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.POST("/menu", menu.CreateMenuItem)
		adminGroup.PUT("/menu/:id", menu.UpdateMenuItem)
		adminGroup.DELETE("/menu/:id", menu.DeleteMenuItem)

		adminGroup.GET("/orders", admin.GetAllOrders)
		adminGroup.GET("/orders/stats", admin.GetOrderStats)
		adminGroup.PUT("/orders/:id/status", admin.UpdateOrderStatus)

		adminGroup.GET("/customers", admin.GetCustomers)
		adminGroup.PUT("/customers/:id/role", admin.UpdateCustomerRole)

		adminGroup.POST("/gallery", handlers.UploadGalleryImage)
	}
}

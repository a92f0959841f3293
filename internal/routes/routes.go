package routes

import (
	"os"
	"strings"
	"time"

	"saveur_back_end/internal/handlers"
	adminhandlers "saveur_back_end/internal/handlers/admin"
	"saveur_back_end/internal/handlers/food"
	"saveur_back_end/internal/handlers/order"
	"saveur_back_end/internal/handlers/report"
	"saveur_back_end/internal/handlers/user"
	"saveur_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Password"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Menu
	foods := api.Group("/foods")
	{
		foods.GET("", food.GetAllFoods)
		foods.GET("/search", food.SearchFoods)
		foods.GET("/:id", food.GetFoodByID)
		foods.POST("", middleware.RequireAdmin, food.CreateFood)
		foods.PUT("/:id", middleware.RequireAdmin, food.UpdateFood)
		foods.DELETE("/:id", middleware.RequireAdmin, food.DeleteFood)
	}

	// Commandes — GET sans filtre réservé à l'admin, vérifié dans le handler
	orders := api.Group("/orders")
	{
		orders.POST("", order.CreateOrder)
		orders.GET("", order.ListOrders)
		orders.GET("/:id", order.GetOrderByID)
		orders.GET("/:id/qr", order.GetOrderQR)
		orders.PUT("/:id", middleware.RequireAdmin, order.UpdateOrderStatus)
	}
	api.POST("/send-order-email", order.SendOrderEmail)

	// Rapports (admin)
	reports := api.Group("/reports")
	reports.Use(middleware.RequireAdmin)
	{
		reports.GET("/daily-revenue", report.GetDailyRevenue)
		reports.GET("/daily-revenue/chart.svg", report.GetDailyRevenueChart)
		reports.GET("/lifetime-revenue", report.GetLifetimeRevenue)
	}

	// Membres
	auth := api.Group("/auth")
	{
		auth.POST("/signup", user.Signup)
		auth.POST("/login", middleware.LoginRateLimit(), user.Login)
		auth.GET("/me", middleware.AuthRequired(), user.Me)
	}

	// Admin
	api.POST("/admin/login", adminhandlers.Login)

	// Images (admin)
	api.POST("/images/upload", middleware.RequireAdmin, handlers.UploadFoodImage)
}

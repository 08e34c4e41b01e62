package router

import (
	"github.com/gin-gonic/gin"
	"github.com/qrresto/qr-resto/controllers"
	"github.com/qrresto/qr-resto/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	statsCtrl := controllers.NewStatsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Diner-facing: the QR code points the browser at the menu page, which
	// loads products and submits orders without any login.
	r.GET("/products", productCtrl.GetProducts)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// TABLES
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	auth.PATCH("/tables/:table_id/close", tableCtrl.CloseTable)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// PRODUCTS
	auth.POST("/products", productCtrl.CreateProduct)
	auth.PATCH("/products/:product_id", productCtrl.UpdateProduct)
	auth.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	// STATS
	auth.GET("/stats", statsCtrl.GetStats)
	auth.GET("/stats/popular-products", statsCtrl.GetPopularProducts)

	return r
}

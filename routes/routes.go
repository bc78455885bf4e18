package routes

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/configs"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/controllers"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/middlewares"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/services"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.TrackHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	var events services.StatusPublisher
	if hub != nil {
		events = hub
	}
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	addrSvc := services.NewAddressService(db, addrRepo)
	menuSvc := services.NewMenuService(db, menuRepo, restRepo)
	restSvc := services.NewRestaurantService(db, restRepo, menuRepo, orderRepo, ratingRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, addrRepo, courierRepo, paymentRepo, restRepo, cfg.OrderFlow, events)
	courierSvc := services.NewCourierService(db, courierRepo, orderRepo, events)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo)
	ratingSvc := services.NewRatingService(db, ratingRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addrCtrl := controllers.NewAddressController(addrSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)
	courierCtrl := controllers.NewCourierController(courierSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	adminCtrl := controllers.NewAdminController(db, userRepo, courierRepo)

	auth := func(roles ...entity.RoleName) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/restaurants/:id/ratings", ratingCtrl.ListForRestaurant)

	// Orders (customer)
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
		u.GET("/orders/:id/payment", paymentCtrl.Get)
		u.POST("/orders/:id/payment/complete", paymentCtrl.Complete)
		u.POST("/orders/:id/payment/fail", paymentCtrl.Fail)
		u.POST("/ratings", ratingCtrl.Create)
		u.PATCH("/ratings/:id", ratingCtrl.Update)
		u.DELETE("/ratings/:id", ratingCtrl.Delete)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/ratings", ratingCtrl.ListMine)
		profile.GET("/addresses", addrCtrl.List)
		profile.POST("/addresses", addrCtrl.Create)
		profile.PATCH("/addresses/:id", addrCtrl.Update)
		profile.DELETE("/addresses/:id", addrCtrl.Delete)
	}

	// Partner Restaurant (owner/admin)
	partnerRest := r.Group("/partner/restaurant", auth(entity.RoleRestaurant, entity.RoleAdmin))
	{
		partnerRest.GET("", restCtrl.Mine)
		partnerRest.POST("", restCtrl.Create)
		partnerRest.PATCH("/:id", restCtrl.Update)
		partnerRest.GET("/:id/dashboard", restCtrl.Dashboard)
		partnerRest.GET("/:id/orders", ownerOrderCtrl.List)
		partnerRest.POST("/:id/menu", restCtrl.CreateMenuItem)
		partnerRest.PATCH("/menu/:id", restCtrl.UpdateMenuItem)
		partnerRest.PATCH("/orders/:id/accept", ownerOrderCtrl.Accept)
		partnerRest.PATCH("/orders/:id/ready", ownerOrderCtrl.Ready)
	}

	// Partner Courier (courier/admin)
	partnerCourier := r.Group("/partner/courier", auth(entity.RoleCourier, entity.RoleAdmin))
	{
		partnerCourier.GET("/dashboard", courierCtrl.Dashboard)
		partnerCourier.GET("/assignment", courierCtrl.CurrentAssignment)
		partnerCourier.GET("/histories", courierCtrl.Histories)
		partnerCourier.PATCH("/orders/:id/pickup", courierCtrl.Pickup)
		partnerCourier.PATCH("/orders/:id/deliver", courierCtrl.Deliver)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/couriers", adminCtrl.ListCouriers)
		admin.POST("/users/:id/roles", adminCtrl.GrantRole)
		admin.POST("/couriers", adminCtrl.CreateCourier)
	}

	// Live order tracking
	if hub != nil {
		r.GET("/ws/orders/:id", auth(), hub.HandleWebSocket)
	}
}

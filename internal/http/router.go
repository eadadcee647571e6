package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "luggagebill/internal/config"
	h "luggagebill/internal/http/handlers"
	"luggagebill/internal/http/middleware"
	"luggagebill/internal/utils"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWTSecret, env.JWTTTL)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	staff := []gin.HandlerFunc{middleware.Authenticate(h.TokenAuthenticator{}), middleware.RequireStaff()}

	r.GET("/", h.Home)

	// Detail views
	views := r.Group("/admin/luggages", staff...)
	{
		views.GET("/luggagebill/:id", h.BillDetail)
		views.GET("/luggagebill/:id/receipt", h.GetBillReceipt)
		views.GET("/customer/:id", h.CustomerDetail)
		views.GET("/trip/:id", h.TripDetail)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.Authenticate(h.TokenAuthenticator{}), h.Me)

		admin := api.Group("/admin", staff...)
		admin.GET("/routes", h.Routes)

		customers := admin.Group("/customers")
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		buses := admin.Group("/buses")
		buses.GET("", h.ListBuses)
		buses.GET("/:id", h.GetBus)
		buses.POST("", h.CreateBus)
		buses.PUT("/:id", h.UpdateBus)
		buses.DELETE("/:id", h.DeleteBus)

		states := admin.Group("/states")
		states.GET("", h.ListStates)
		states.GET("/:id", h.GetState)
		states.POST("", h.CreateState)
		states.PUT("/:id", h.UpdateState)
		states.DELETE("/:id", h.DeleteState)

		parks := admin.Group("/park-locations")
		parks.GET("", h.ListParkLocations)
		parks.GET("/:id", h.GetParkLocation)
		parks.POST("", h.CreateParkLocation)
		parks.PUT("/:id", h.UpdateParkLocation)
		parks.DELETE("/:id", h.DeleteParkLocation)

		weights := admin.Group("/weights")
		weights.GET("", h.ListWeights)
		weights.GET("/:id", h.GetWeight)
		weights.POST("", h.CreateWeight)
		weights.PUT("/:id", h.UpdateWeight)
		weights.DELETE("/:id", h.DeleteWeight)

		bagTypes := admin.Group("/bag-types")
		bagTypes.GET("", h.ListBagTypes)
		bagTypes.GET("/:id", h.GetBagType)
		bagTypes.POST("", h.CreateBagType)
		bagTypes.PUT("/:id", h.UpdateBagType)
		bagTypes.DELETE("/:id", h.DeleteBagType)

		trips := admin.Group("/trips")
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)

		bills := admin.Group("/bills")
		bills.GET("", h.ListBills)
		bills.GET("/export", h.ExportBills)
		bills.POST("/export", h.ExportBills)
		bills.GET("/:id", h.GetBill)
		bills.POST("", h.CreateBill)
		bills.PUT("/:id", h.UpdateBill)
		bills.DELETE("/:id", h.DeleteBill)

		// Users (superuser only)
		users := admin.Group("/users", middleware.RequireSuperuser())
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	h.SetRouter(r)
	return r
}

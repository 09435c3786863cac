package routes

import (
	"clinicpro-backend/config"
	"clinicpro-backend/controllers"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(clinic *services.ClinicService, authority services.Authority) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	authController := controllers.AuthController{Auth: authority}
	customerController := controllers.CustomerController{Clinic: clinic}
	serviceController := controllers.ServiceController{Clinic: clinic}
	courseController := controllers.CourseController{Clinic: clinic}
	inventoryController := controllers.InventoryController{Clinic: clinic}
	appointmentController := controllers.AppointmentController{Clinic: clinic}
	posController := controllers.POSController{Clinic: clinic}
	dashboardController := controllers.DashboardController{Clinic: clinic}
	reportController := controllers.ReportController{Clinic: clinic}
	roleController := controllers.RoleController{Clinic: clinic}
	systemController := controllers.SystemController{Clinic: clinic}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.POST("/:id/treatments", customerController.AddTreatmentRecord)
			customers.POST("/:id/use-course", customerController.UseCourse)
		}

		// Service catalog routes
		catalog := api.Group("/services")
		{
			catalog.POST("", serviceController.CreateService)
			catalog.GET("", serviceController.GetServices)
			catalog.GET("/:id", serviceController.GetService)
			catalog.PUT("/:id", serviceController.UpdateService)
			catalog.DELETE("/:id", serviceController.DeleteService)
		}

		// Course catalog routes
		courses := api.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.GetCourses)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", inventoryController.CreateItem)
			inventory.GET("", inventoryController.GetItems)
			inventory.GET("/low-stock", inventoryController.GetLowStockItems)
			inventory.PUT("/:id", inventoryController.UpdateItem)
			inventory.DELETE("/:id", inventoryController.DeleteItem)
			inventory.POST("/:id/stock", inventoryController.AdjustStock)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.PUT("/:id/status", appointmentController.UpdateStatus)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// POS routes
		transactions := api.Group("/transactions")
		{
			transactions.POST("", posController.Checkout)
			transactions.GET("", posController.GetTransactions)
			transactions.PUT("/:id/items", posController.CorrectTransaction)
		}

		// Reports routes
		api.GET("/reports/sales", reportController.GetSalesReport)
		api.GET("/reports/sales/export", reportController.ExportSalesReport)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetOverview)

		// Role administration
		roles := api.Group("/roles")
		{
			roles.GET("", roleController.GetRoles)
			roles.POST("", roleController.GrantAdmin)
		}

		// System routes
		system := api.Group("/system")
		{
			system.GET("/status", systemController.GetStatus)
			system.POST("/refresh", systemController.Refresh)
			system.GET("/backup", systemController.Backup)
			system.POST("/reset", systemController.Reset)
		}
	}

	return r
}

package routes

import (
	"balneario-backend/config"
	"balneario-backend/controllers"
	"balneario-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles the handler dependencies the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Clients      *controllers.ClientController
	Employees    *controllers.EmployeeController
	Reservations *controllers.ReservationController
	Bills        *controllers.BillController
	Reports      *controllers.ReportController
	Dashboard    *controllers.DashboardController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", ctrl.Clients.CreateClient)
			clients.GET("", ctrl.Clients.GetClients)
			clients.GET("/:id", ctrl.Clients.GetClient)
			clients.PUT("/:id", ctrl.Clients.UpdateClient)
			clients.DELETE("/:id", ctrl.Clients.DeleteClient)
		}

		// Employee routes
		employees := api.Group("/employees")
		{
			employees.POST("", ctrl.Employees.CreateEmployee)
			employees.GET("", ctrl.Employees.GetEmployees)
			employees.GET("/:id", ctrl.Employees.GetEmployee)
			employees.PUT("/:id", ctrl.Employees.UpdateEmployee)
			employees.DELETE("/:id", ctrl.Employees.DeleteEmployee)
		}

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.GET("/availability", ctrl.Reservations.GetAvailability)
			reservations.POST("", ctrl.Reservations.CreateReservation)
			reservations.GET("", ctrl.Reservations.GetReservations)
			reservations.GET("/:id", ctrl.Reservations.GetReservation)
			reservations.DELETE("/:id", ctrl.Reservations.CancelReservation)
		}

		// Bill routes
		bills := api.Group("/bills")
		{
			bills.POST("", ctrl.Bills.CreateBill)
			bills.GET("", ctrl.Bills.GetBills)
			bills.GET("/:id", ctrl.Bills.GetBill)
			bills.DELETE("/:id", ctrl.Bills.DeleteBill)
		}

		// Report routes
		api.GET("/reports/daily", ctrl.Reports.GetDailyReport)

		// Dashboard routes
		api.GET("/dashboard", ctrl.Dashboard.GetDashboardOverview)
	}

	return r
}

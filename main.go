package main

import (
	"os"

	"balneario-backend/config"
	"balneario-backend/controllers"
	"balneario-backend/routes"
	"balneario-backend/services"

	"github.com/sirupsen/logrus"
)

func main() {
	config.Load()

	st := config.OpenStore()
	if config.SeedDemo() {
		if err := seedDemoData(st); err != nil {
			logrus.WithError(err).Warn("failed to seed demo data")
		}
	}

	clientService := services.NewClientService(st)
	employeeService := services.NewEmployeeService(st)
	reservationService := services.NewReservationService(st, config.CapacityMax())
	billingService := services.NewBillingService(st, config.Prices())
	reportService := services.NewReportService(st)

	closing := services.NewClosingService(reportService)
	closing.StartScheduler()
	defer closing.Stop()

	r := routes.SetupRouter(routes.Controllers{
		Auth:         &controllers.AuthController{},
		Clients:      &controllers.ClientController{Clients: clientService},
		Employees:    &controllers.EmployeeController{Employees: employeeService},
		Reservations: &controllers.ReservationController{Reservations: reservationService, Clients: clientService},
		Bills:        &controllers.BillController{Billing: billingService},
		Reports:      &controllers.ReportController{Reports: reportService},
		Dashboard: &controllers.DashboardController{
			Clients:      clientService,
			Employees:    employeeService,
			Reservations: reservationService,
			Billing:      billingService,
		},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

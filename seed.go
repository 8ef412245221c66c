package main

import (
	"time"

	"balneario-backend/models"
	"balneario-backend/services"
	"balneario-backend/store"
	"balneario-backend/utils"

	"github.com/sirupsen/logrus"
)

// seedDemoData loads a handful of demo records for local development.
// It only runs against empty collections so it never clobbers real data.
func seedDemoData(st store.Store) error {
	existing, err := st.LoadAll(store.Clients)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Info("demo seed skipped, store is not empty")
		return nil
	}

	clients := services.NewClientService(st)
	employees := services.NewEmployeeService(st)
	reservations := services.NewReservationService(st, 0)

	ana, err := clients.Create(models.Client{
		IDNumber: "1-2345-6789",
		Name:     "Ana Rodríguez",
		Address:  "Cartago, Costa Rica",
		Phone:    "6666-6666",
		Email:    "ana@example.com",
	})
	if err != nil {
		return err
	}
	carlos, err := clients.Create(models.Client{
		IDNumber: "3-4567-8901",
		Name:     "Carlos Mora",
		Address:  "Alajuela, Costa Rica",
		Phone:    "5555-5555",
		Email:    "carlos@example.com",
	})
	if err != nil {
		return err
	}

	stephanie, err := employees.Create(models.Employee{
		IDNumber:   "1-1234-5678",
		Name:       "Stephanie Chacón",
		Address:    "San José, Costa Rica",
		Phone:      "8888-8888",
		Email:      "stephanie@example.com",
		Commission: 5,
		Salary:     450000,
		Position:   "Anfitriona Senior",
	})
	if err != nil {
		return err
	}
	nancy, err := employees.Create(models.Employee{
		IDNumber:   "2-3456-7890",
		Name:       "Nancy Calderón",
		Address:    "Heredia, Costa Rica",
		Phone:      "7777-7777",
		Email:      "nancy@example.com",
		Commission: 4,
		Salary:     400000,
		Position:   "Anfitriona",
	})
	if err != nil {
		return err
	}

	today := utils.DayOf(time.Now())
	if _, err := reservations.CreateReservation(services.CreateReservationInput{
		ClientID:         ana.ID,
		ClientName:       ana.Name,
		Date:             today,
		TimeSlot:         "14:00",
		AdultCount:       2,
		ChildCount:       1,
		AssignedEmployee: stephanie.Name,
	}); err != nil {
		return err
	}
	if _, err := reservations.CreateReservation(services.CreateReservationInput{
		ClientID:         carlos.ID,
		ClientName:       carlos.Name,
		Date:             today,
		TimeSlot:         "16:00",
		AdultCount:       1,
		SeniorCount:      2,
		AssignedEmployee: nancy.Name,
	}); err != nil {
		return err
	}

	logrus.Info("demo data loaded")
	return nil
}

package controllers

import (
	"net/http"
	"time"

	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// DashboardOverview is the landing-page summary for the operator
type DashboardOverview struct {
	TotalClients      int             `json:"totalClients"`
	TotalEmployees    int             `json:"totalEmployees"`
	TodayReservations int             `json:"todayReservations"`
	TodayVisitors     int             `json:"todayVisitors"`
	TodayRevenue      float64         `json:"todayRevenue"`
	SlotOccupancy     []SlotOccupancy `json:"slotOccupancy"`
}

// SlotOccupancy is today's booked load for one slot against capacity
type SlotOccupancy struct {
	TimeSlot string `json:"timeSlot"`
	Occupied int    `json:"occupied"`
	Capacity int    `json:"capacity"`
}

type DashboardController struct {
	Clients      *services.ClientService
	Employees    *services.EmployeeService
	Reservations *services.ReservationService
	Billing      *services.BillingService
}

// GetDashboardOverview summarizes today's operation
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	today := utils.DayOf(time.Now())

	clients, err := dc.Clients.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load clients")
		return
	}
	employees, err := dc.Employees.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load employees")
		return
	}
	reservations, err := dc.Reservations.ListReservations()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load reservations")
		return
	}
	bills, err := dc.Billing.ListBills()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bills")
		return
	}

	overview := DashboardOverview{
		TotalClients:   len(clients),
		TotalEmployees: len(employees),
	}

	occupied := make(map[string]int)
	for _, r := range reservations {
		if r.Date != today {
			continue
		}
		overview.TodayReservations++
		overview.TodayVisitors += r.PartySize()
		occupied[r.TimeSlot] += r.PartySize()
	}

	for _, b := range bills {
		if utils.DayOf(b.Date) == today {
			overview.TodayRevenue += b.Total
		}
	}

	capacity := dc.Reservations.CapacityMax()
	overview.SlotOccupancy = make([]SlotOccupancy, 0, len(services.Schedule))
	for _, slot := range services.Schedule {
		overview.SlotOccupancy = append(overview.SlotOccupancy, SlotOccupancy{
			TimeSlot: slot,
			Occupied: occupied[slot],
			Capacity: capacity,
		})
	}

	c.JSON(http.StatusOK, overview)
}

// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"balneario-backend/models"
	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateReservationInput defines the expected JSON structure for booking
type CreateReservationInput struct {
	ClientID         string `json:"clientId" binding:"required"`
	Date             string `json:"date" binding:"required"`
	TimeSlot         string `json:"timeSlot" binding:"required"`
	AdultCount       int    `json:"adultCount" binding:"min=0"`
	ChildCount       int    `json:"childCount" binding:"min=0"`
	SeniorCount      int    `json:"seniorCount" binding:"min=0"`
	AssignedEmployee string `json:"assignedEmployee"`
}

type ReservationController struct {
	Reservations *services.ReservationService
	Clients      *services.ClientService
}

// GetAvailability lists the slots that can still take the requested party
// size on a date
func (rc *ReservationController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}
	partySize, err := strconv.Atoi(c.Query("partySize"))
	if err != nil || partySize < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "partySize must be a positive integer")
		return
	}

	slots, err := rc.Reservations.AvailableSlots(date, partySize)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           date,
		"partySize":      partySize,
		"availableSlots": slots,
	})
}

// CreateReservation books a party into a slot
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client, err := rc.Clients.Get(input.ClientID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to look up client")
		}
		return
	}

	reservation, err := rc.Reservations.CreateReservation(services.CreateReservationInput{
		ClientID:         client.ID,
		ClientName:       client.Name,
		Date:             input.Date,
		TimeSlot:         input.TimeSlot,
		AdultCount:       input.AdultCount,
		ChildCount:       input.ChildCount,
		SeniorCount:      input.SeniorCount,
		AssignedEmployee: input.AssignedEmployee,
	})
	if err != nil {
		switch {
		case services.IsValidation(err):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrCapacityExceeded):
			utils.RespondWithError(c, http.StatusConflict, "Not enough capacity left in that time slot")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetReservations retrieves all reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := rc.Reservations.ListReservations()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a specific reservation by ID
func (rc *ReservationController) GetReservation(c *gin.Context) {
	reservation, err := rc.Reservations.GetReservation(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservation")
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CancelReservation deletes a reservation; issued bills keep their
// snapshot
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	if err := rc.Reservations.CancelReservation(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel reservation")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

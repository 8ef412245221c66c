// controllers/billing.go
package controllers

import (
	"errors"
	"net/http"

	"balneario-backend/models"
	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateBillInput defines the expected JSON structure for issuing a bill
type CreateBillInput struct {
	ClientID      string `json:"clientId" binding:"required"`
	ReservationID string `json:"reservationId" binding:"required"`
}

type BillController struct {
	Billing *services.BillingService
}

// CreateBill issues a bill from a client and reservation pair. The bill
// snapshots both plus the price list in effect.
func (bc *BillController) CreateBill(c *gin.Context) {
	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bill, err := bc.Billing.IssueBill(input.ClientID, input.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, "Client or reservation not found")
		case services.IsValidation(err):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue bill")
		}
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// GetBills retrieves all bills
func (bc *BillController) GetBills(c *gin.Context) {
	bills, err := bc.Billing.ListBills()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	c.JSON(http.StatusOK, bills)
}

// GetBill retrieves a specific bill by ID
func (bc *BillController) GetBill(c *gin.Context) {
	bill, err := bc.Billing.GetBill(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bill")
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

// DeleteBill removes a bill
func (bc *BillController) DeleteBill(c *gin.Context) {
	if err := bc.Billing.DeleteBill(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete bill")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

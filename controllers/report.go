// controllers/report.go
package controllers

import (
	"net/http"

	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles the daily operational reports
type ReportController struct {
	Reports *services.ReportService
}

// DailyReport bundles one day's attendance, revenue and slot analysis
type DailyReport struct {
	Date         string                        `json:"date"`
	Attendance   []services.EmployeeAttendance `json:"attendance"`
	Revenue      []services.EmployeeRevenue    `json:"revenue"`
	SlotAnalysis services.SlotAnalysis         `json:"slotAnalysis"`
}

// GetDailyReport returns the report for the requested date
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	attendance, err := rc.Reports.DailyAttendance(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build attendance report")
		return
	}
	revenue, err := rc.Reports.DailyRevenue(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build revenue report")
		return
	}
	analysis, err := rc.Reports.TimeSlotAnalysis(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to analyze time slots")
		return
	}

	c.JSON(http.StatusOK, DailyReport{
		Date:         date,
		Attendance:   attendance,
		Revenue:      revenue,
		SlotAnalysis: *analysis,
	})
}

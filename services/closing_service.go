// services/closing_service.go
package services

import (
	"time"

	"balneario-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ClosingService logs a daily operations summary after the last slot of
// the day has ended.
type ClosingService struct {
	reports *ReportService
	cron    *cron.Cron
}

func NewClosingService(reports *ReportService) *ClosingService {
	return &ClosingService{reports: reports}
}

// StartScheduler runs the closing summary every day at 21:00, one hour
// after the last seating.
func (s *ClosingService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 21 * * *", func() {
		s.LogDailySummary(utils.DayOf(time.Now()))
	})

	c.Start()
	s.cron = c
	logrus.Info("closing summary scheduler started")
}

// Stop halts the scheduler.
func (s *ClosingService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// LogDailySummary writes the day's attendance and revenue totals to the
// log.
func (s *ClosingService) LogDailySummary(date string) {
	attendance, err := s.reports.DailyAttendance(date)
	if err != nil {
		logrus.WithError(err).Error("closing summary: failed to load attendance")
		return
	}
	revenue, err := s.reports.DailyRevenue(date)
	if err != nil {
		logrus.WithError(err).Error("closing summary: failed to load revenue")
		return
	}
	analysis, err := s.reports.TimeSlotAnalysis(date)
	if err != nil {
		logrus.WithError(err).Error("closing summary: failed to analyze slots")
		return
	}

	visitors := 0
	for _, a := range attendance {
		visitors += a.Total
	}
	var income, commissions float64
	for _, r := range revenue {
		income += r.TotalRevenue
		commissions += r.Commission
	}

	logrus.WithFields(logrus.Fields{
		"date":        date,
		"visitors":    visitors,
		"revenue":     income,
		"commissions": commissions,
		"busiestSlot": analysis.Busiest.TimeSlot,
		"slowestSlot": analysis.Slowest.TimeSlot,
	}).Info("daily closing summary")
}

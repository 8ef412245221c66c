package services

import (
	"balneario-backend/models"
	"balneario-backend/store"
	"balneario-backend/utils"
)

// EmployeeAttendance aggregates one day's reservation headcounts for one
// employee.
type EmployeeAttendance struct {
	Employee string `json:"employee"`
	Total    int    `json:"total"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Seniors  int    `json:"seniors"`
}

// EmployeeRevenue aggregates one day's billed revenue for one employee,
// broken down by category, plus the commission earned on it.
type EmployeeRevenue struct {
	Employee      string  `json:"employee"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AdultRevenue  float64 `json:"adultRevenue"`
	ChildRevenue  float64 `json:"childRevenue"`
	SeniorRevenue float64 `json:"seniorRevenue"`
	Commission    float64 `json:"commission"`
}

// SlotAttendance is the total headcount booked into one time slot.
type SlotAttendance struct {
	TimeSlot  string `json:"timeSlot"`
	PartySize int    `json:"partySize"`
}

// SlotAnalysis names the busiest and slowest slot of a day.
type SlotAnalysis struct {
	Busiest SlotAttendance `json:"busiest"`
	Slowest SlotAttendance `json:"slowest"`
}

// ReportService derives daily operational reports from reservations and
// bills. Read-only.
type ReportService struct {
	store store.Store
}

func NewReportService(st store.Store) *ReportService {
	return &ReportService{store: st}
}

// DailyAttendance groups the day's reservation headcounts per assigned
// employee, in order of first appearance.
func (s *ReportService) DailyAttendance(date string) ([]EmployeeAttendance, error) {
	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	attendance := []EmployeeAttendance{}
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		i, ok := index[r.AssignedEmployee]
		if !ok {
			i = len(attendance)
			index[r.AssignedEmployee] = i
			attendance = append(attendance, EmployeeAttendance{Employee: r.AssignedEmployee})
		}
		attendance[i].Total += r.PartySize()
		attendance[i].Adults += r.AdultCount
		attendance[i].Children += r.ChildCount
		attendance[i].Seniors += r.SeniorCount
	}
	return attendance, nil
}

// DailyRevenue groups the day's billed revenue per assigned employee using
// the prices snapshotted on each bill, and applies the employee's
// commission percentage. Employees are matched by name, as stored on the
// bill.
func (s *ReportService) DailyRevenue(date string) ([]EmployeeRevenue, error) {
	bills, err := loadRecords[models.Bill](s.store, store.Bills)
	if err != nil {
		return nil, err
	}
	employees, err := loadRecords[models.Employee](s.store, store.Employees)
	if err != nil {
		return nil, err
	}

	commissionRates := make(map[string]float64, len(employees))
	for _, e := range employees {
		commissionRates[e.Name] = e.Commission
	}

	index := make(map[string]int)
	revenue := []EmployeeRevenue{}
	for _, b := range bills {
		if utils.DayOf(b.Date) != date {
			continue
		}
		i, ok := index[b.AssignedEmployee]
		if !ok {
			i = len(revenue)
			index[b.AssignedEmployee] = i
			revenue = append(revenue, EmployeeRevenue{Employee: b.AssignedEmployee})
		}

		adultRevenue := float64(b.AdultCount) * b.AdultPrice
		childRevenue := float64(b.ChildCount) * b.ChildPrice
		seniorRevenue := float64(b.SeniorCount) * b.SeniorPrice
		total := adultRevenue + childRevenue + seniorRevenue

		revenue[i].AdultRevenue += adultRevenue
		revenue[i].ChildRevenue += childRevenue
		revenue[i].SeniorRevenue += seniorRevenue
		revenue[i].TotalRevenue += total
		revenue[i].Commission += total * commissionRates[b.AssignedEmployee] / 100
	}
	return revenue, nil
}

// TimeSlotAnalysis finds the busiest and slowest slot of a day by booked
// headcount. With no reservations both come back as "N/A".
func (s *ReportService) TimeSlotAnalysis(date string) (*SlotAnalysis, error) {
	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}

	bySlot := occupiedBySlot(reservations, date)
	if len(bySlot) == 0 {
		none := SlotAttendance{TimeSlot: "N/A"}
		return &SlotAnalysis{Busiest: none, Slowest: none}, nil
	}

	var analysis SlotAnalysis
	first := true
	for _, slot := range Schedule {
		size, ok := bySlot[slot]
		if !ok {
			continue
		}
		current := SlotAttendance{TimeSlot: slot, PartySize: size}
		if first {
			analysis.Busiest = current
			analysis.Slowest = current
			first = false
			continue
		}
		if current.PartySize > analysis.Busiest.PartySize {
			analysis.Busiest = current
		}
		if current.PartySize < analysis.Slowest.PartySize {
			analysis.Slowest = current
		}
	}
	return &analysis, nil
}

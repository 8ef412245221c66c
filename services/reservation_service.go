package services

import (
	"time"

	"balneario-backend/models"
	"balneario-backend/store"
	"balneario-backend/utils"

	"github.com/google/uuid"
)

// Schedule is the fixed daily schedule: hourly slots from opening to the
// last seating, in serving order.
var Schedule = []string{
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
	"19:00",
	"20:00",
}

// DefaultCapacityMax is the total party-size units a single slot may hold.
const DefaultCapacityMax = 50

// ReservationService decides which slots can take more people on a given
// date and gates reservation creation on that answer.
type ReservationService struct {
	store       store.Store
	capacityMax int
}

func NewReservationService(st store.Store, capacityMax int) *ReservationService {
	if capacityMax <= 0 {
		capacityMax = DefaultCapacityMax
	}
	return &ReservationService{store: st, capacityMax: capacityMax}
}

// CapacityMax returns the configured per-slot capacity.
func (s *ReservationService) CapacityMax() int {
	return s.capacityMax
}

// CreateReservationInput carries the fields an operator submits when
// booking. ClientName is denormalized onto the stored record.
type CreateReservationInput struct {
	ClientID         string
	ClientName       string
	Date             string
	TimeSlot         string
	AdultCount       int
	ChildCount       int
	SeniorCount      int
	AssignedEmployee string
}

func (in CreateReservationInput) partySize() int {
	return in.AdultCount + in.ChildCount + in.SeniorCount
}

func (in CreateReservationInput) validate() error {
	if !utils.ValidDate(in.Date) {
		return &ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"}
	}
	if !knownSlot(in.TimeSlot) {
		return &ValidationError{Field: "timeSlot", Message: "must be one of the scheduled hours"}
	}
	if in.AdultCount < 0 || in.ChildCount < 0 || in.SeniorCount < 0 {
		return &ValidationError{Field: "headcount", Message: "counts must not be negative"}
	}
	if in.partySize() == 0 {
		return &ValidationError{Field: "headcount", Message: "at least one person is required"}
	}
	return nil
}

func knownSlot(slot string) bool {
	for _, s := range Schedule {
		if s == slot {
			return true
		}
	}
	return false
}

// occupiedBySlot sums party sizes of existing reservations per slot for a
// single date.
func occupiedBySlot(reservations []models.Reservation, date string) map[string]int {
	occupied := make(map[string]int)
	for _, r := range reservations {
		if r.Date == date {
			occupied[r.TimeSlot] += r.PartySize()
		}
	}
	return occupied
}

// AvailableSlots returns the slots that can still take partySize more
// people on date, in schedule order. Malformed input degrades to "no
// availability" rather than an error; format validation is the caller's
// concern.
func (s *ReservationService) AvailableSlots(date string, partySize int) ([]string, error) {
	if partySize < 1 || !utils.ValidDate(date) {
		return []string{}, nil
	}

	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}
	occupied := occupiedBySlot(reservations, date)

	available := make([]string, 0, len(Schedule))
	for _, slot := range Schedule {
		if occupied[slot]+partySize <= s.capacityMax {
			available = append(available, slot)
		}
	}
	return available, nil
}

// CreateReservation validates the input, re-checks slot capacity against
// the current store contents and persists a new reservation. On a
// capacity conflict it returns ErrCapacityExceeded and writes nothing.
func (s *ReservationService) CreateReservation(input CreateReservationInput) (*models.Reservation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}

	occupied := 0
	for _, r := range reservations {
		if r.Date == input.Date && r.TimeSlot == input.TimeSlot {
			occupied += r.PartySize()
		}
	}
	if occupied+input.partySize() > s.capacityMax {
		return nil, ErrCapacityExceeded
	}

	reservation := models.Reservation{
		ID:                uuid.New().String(),
		ClientID:          input.ClientID,
		ClientName:        input.ClientName,
		Date:              input.Date,
		TimeSlot:          input.TimeSlot,
		AdultCount:        input.AdultCount,
		ChildCount:        input.ChildCount,
		SeniorCount:       input.SeniorCount,
		AssignedEmployee:  input.AssignedEmployee,
		ReservationNumber: NewReservationNumber(),
	}

	reservations = append(reservations, reservation)
	if err := saveRecords(s.store, store.Reservations, reservations); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation removes a reservation. Bills already issued from it
// keep their snapshot and are not touched.
func (s *ReservationService) CancelReservation(id string) error {
	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return err
	}

	kept := make([]models.Reservation, 0, len(reservations))
	found := false
	for _, r := range reservations {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	return saveRecords(s.store, store.Reservations, kept)
}

func (s *ReservationService) ListReservations() ([]models.Reservation, error) {
	return loadRecords[models.Reservation](s.store, store.Reservations)
}

func (s *ReservationService) GetReservation(id string) (*models.Reservation, error) {
	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// NewReservationNumber generates a human-readable reservation number.
func NewReservationNumber() string {
	return "RES-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

package services

import (
	"fmt"
	"time"

	"balneario-backend/models"
	"balneario-backend/store"
	"balneario-backend/utils"

	"github.com/google/uuid"
)

// TaxRate is the fixed sales tax (IVA) applied to every bill.
const TaxRate = 0.13

// PriceList holds the per-person unit prices by category, in colones.
type PriceList struct {
	Adult  float64 `json:"adult"`
	Child  float64 `json:"child"`
	Senior float64 `json:"senior"`
}

// DefaultPriceList is the house price list, overridable through config.
var DefaultPriceList = PriceList{Adult: 15000, Child: 8000, Senior: 12000}

// Totals is the computed money breakdown of a bill.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a party against a price list. Pure function: no
// rounding is applied here, display formatting happens at the edges.
func ComputeTotals(adults, children, seniors int, prices PriceList) Totals {
	subtotal := float64(adults)*prices.Adult +
		float64(children)*prices.Child +
		float64(seniors)*prices.Senior
	tax := subtotal * TaxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// BillingService issues immutable bills from client/reservation pairs.
type BillingService struct {
	store  store.Store
	prices PriceList
}

func NewBillingService(st store.Store, prices PriceList) *BillingService {
	if prices == (PriceList{}) {
		prices = DefaultPriceList
	}
	return &BillingService{store: st, prices: prices}
}

// Prices returns the price list currently in effect.
func (s *BillingService) Prices() PriceList {
	return s.prices
}

// IssueBill snapshots the client, the reservation and the price list in
// effect into a new bill. Later edits or deletions of the sources do not
// change the bill. Nothing prevents issuing a second bill for the same
// reservation; that judgement is left to the operator.
func (s *BillingService) IssueBill(clientID, reservationID string) (*models.Bill, error) {
	clients, err := loadRecords[models.Client](s.store, store.Clients)
	if err != nil {
		return nil, err
	}
	var client *models.Client
	for i := range clients {
		if clients[i].ID == clientID {
			client = &clients[i]
			break
		}
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}

	reservations, err := loadRecords[models.Reservation](s.store, store.Reservations)
	if err != nil {
		return nil, err
	}
	var reservation *models.Reservation
	for i := range reservations {
		if reservations[i].ID == reservationID {
			reservation = &reservations[i]
			break
		}
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	if reservation.PartySize() == 0 {
		return nil, &ValidationError{Field: "reservation", Message: "has no people to bill"}
	}

	totals := ComputeTotals(reservation.AdultCount, reservation.ChildCount, reservation.SeniorCount, s.prices)

	bill := models.Bill{
		ID:         uuid.New().String(),
		BillNumber: NewBillNumber(),
		Date:       time.Now(),

		ClientID:          client.ID,
		ClientName:        client.Name,
		ClientIDNumber:    client.IDNumber,
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		AssignedEmployee:  reservation.AssignedEmployee,

		AdultCount:  reservation.AdultCount,
		ChildCount:  reservation.ChildCount,
		SeniorCount: reservation.SeniorCount,

		AdultPrice:  s.prices.Adult,
		ChildPrice:  s.prices.Child,
		SeniorPrice: s.prices.Senior,

		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}

	bills, err := loadRecords[models.Bill](s.store, store.Bills)
	if err != nil {
		return nil, err
	}
	bills = append(bills, bill)
	if err := saveRecords(s.store, store.Bills, bills); err != nil {
		return nil, err
	}
	return &bill, nil
}

// DeleteBill removes a bill.
func (s *BillingService) DeleteBill(id string) error {
	bills, err := loadRecords[models.Bill](s.store, store.Bills)
	if err != nil {
		return err
	}

	kept := make([]models.Bill, 0, len(bills))
	found := false
	for _, b := range bills {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return ErrNotFound
	}
	return saveRecords(s.store, store.Bills, kept)
}

func (s *BillingService) ListBills() ([]models.Bill, error) {
	return loadRecords[models.Bill](s.store, store.Bills)
}

func (s *BillingService) GetBill(id string) (*models.Bill, error) {
	bills, err := loadRecords[models.Bill](s.store, store.Bills)
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// NewBillNumber generates a human-readable bill number.
func NewBillNumber() string {
	return "FAC-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

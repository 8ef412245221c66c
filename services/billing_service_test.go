package services

import (
	"errors"
	"math"
	"testing"

	"balneario-backend/models"
	"balneario-backend/store"
)

func newTestBillingFixture(t *testing.T) (*BillingService, *ReservationService, *ClientService, *models.Client, *models.Reservation) {
	t.Helper()
	st := store.NewMemoryStore()
	clients := NewClientService(st)
	reservations := NewReservationService(st, 0)
	billing := NewBillingService(st, PriceList{})

	client, err := clients.Create(models.Client{
		IDNumber: "1-2345-6789",
		Name:     "Ana Rodríguez",
		Address:  "Cartago, Costa Rica",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	reservation, err := reservations.CreateReservation(CreateReservationInput{
		ClientID:         client.ID,
		ClientName:       client.Name,
		Date:             "2025-06-01",
		TimeSlot:         "14:00",
		AdultCount:       2,
		ChildCount:       1,
		AssignedEmployee: "Stephanie Chacón",
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return billing, reservations, clients, client, reservation
}

func TestComputeTotals(t *testing.T) {
	prices := PriceList{Adult: 15000, Child: 8000, Senior: 12000}

	totals := ComputeTotals(2, 1, 0, prices)
	if totals.Subtotal != 38000 {
		t.Fatalf("subtotal = %v, want 38000", totals.Subtotal)
	}
	if totals.Tax != 4940 {
		t.Fatalf("tax = %v, want 4940", totals.Tax)
	}
	if totals.Total != 42940 {
		t.Fatalf("total = %v, want 42940", totals.Total)
	}

	// Idempotent: same inputs, same outputs.
	if again := ComputeTotals(2, 1, 0, prices); again != totals {
		t.Fatalf("ComputeTotals not deterministic: %+v vs %+v", again, totals)
	}
}

func TestComputeTotalsReconciles(t *testing.T) {
	prices := DefaultPriceList
	for adults := 0; adults <= 10; adults++ {
		for children := 0; children <= 10; children += 2 {
			for seniors := 0; seniors <= 10; seniors += 5 {
				totals := ComputeTotals(adults, children, seniors, prices)

				want := float64(adults)*prices.Adult + float64(children)*prices.Child + float64(seniors)*prices.Senior
				if totals.Subtotal != want {
					t.Fatalf("subtotal(%d,%d,%d) = %v, want %v", adults, children, seniors, totals.Subtotal, want)
				}
				if math.Abs(totals.Tax-totals.Subtotal*TaxRate) > 0.01 {
					t.Fatalf("tax drift: %v vs %v", totals.Tax, totals.Subtotal*TaxRate)
				}
				if math.Abs(totals.Total-(totals.Subtotal+totals.Tax)) > 0.01 {
					t.Fatalf("total drift: %v vs %v", totals.Total, totals.Subtotal+totals.Tax)
				}
			}
		}
	}
}

func TestComputeTotalsZeroParty(t *testing.T) {
	totals := ComputeTotals(0, 0, 0, DefaultPriceList)
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Fatalf("empty party should cost nothing, got %+v", totals)
	}
}

func TestIssueBillSnapshotsSources(t *testing.T) {
	billing, reservations, clients, client, reservation := newTestBillingFixture(t)

	bill, err := billing.IssueBill(client.ID, reservation.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bill.AdultCount != 2 || bill.ChildCount != 1 || bill.SeniorCount != 0 {
		t.Fatalf("bill headcounts do not match reservation: %+v", bill)
	}
	if bill.ClientName != "Ana Rodríguez" || bill.ClientIDNumber != "1-2345-6789" {
		t.Fatalf("bill client snapshot wrong: %+v", bill)
	}
	if bill.ReservationNumber != reservation.ReservationNumber {
		t.Fatalf("bill should copy the reservation number")
	}
	if bill.AdultPrice != 15000 || bill.ChildPrice != 8000 || bill.SeniorPrice != 12000 {
		t.Fatalf("bill should snapshot the price list, got %+v", bill)
	}
	if bill.Subtotal != 38000 || bill.Tax != 4940 || bill.Total != 42940 {
		t.Fatalf("bill totals wrong: %+v", bill)
	}
	if bill.BillNumber[:4] != "FAC-" {
		t.Fatalf("bill number should carry the FAC- prefix, got %q", bill.BillNumber)
	}

	// Mutating or deleting the sources must not change the issued bill.
	client.Name = "Renamed"
	if _, err := clients.Update(*client); err != nil {
		t.Fatalf("update client: %v", err)
	}
	if err := reservations.CancelReservation(reservation.ID); err != nil {
		t.Fatalf("cancel reservation: %v", err)
	}

	stored, err := billing.GetBill(bill.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ClientName != "Ana Rodríguez" {
		t.Fatalf("bill snapshot changed after client edit: %q", stored.ClientName)
	}
	if stored.AdultCount != 2 || stored.ChildCount != 1 {
		t.Fatalf("bill snapshot changed after reservation delete: %+v", stored)
	}
}

func TestIssueBillMissingSources(t *testing.T) {
	billing, _, _, client, reservation := newTestBillingFixture(t)

	if _, err := billing.IssueBill("missing-client", reservation.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing client, got %v", err)
	}
	if _, err := billing.IssueBill(client.ID, "missing-reservation"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing reservation, got %v", err)
	}

	bills, err := billing.ListBills()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 0 {
		t.Fatalf("failed issuance must not write bills, found %d", len(bills))
	}
}

func TestIssueBillTwiceIsAllowed(t *testing.T) {
	billing, _, _, client, reservation := newTestBillingFixture(t)

	first, err := billing.IssueBill(client.ID, reservation.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := billing.IssueBill(client.ID, reservation.ID)
	if err != nil {
		t.Fatalf("re-billing the same reservation should be allowed, got %v", err)
	}
	if first.ID == second.ID || first.BillNumber == second.BillNumber {
		t.Fatalf("each bill needs its own identity: %+v vs %+v", first, second)
	}
}

func TestDeleteBill(t *testing.T) {
	billing, _, _, client, reservation := newTestBillingFixture(t)

	bill, err := billing.IssueBill(client.ID, reservation.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := billing.DeleteBill(bill.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := billing.DeleteBill(bill.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted bill, got %v", err)
	}
}

func TestBillingUsesConfiguredPrices(t *testing.T) {
	st := store.NewMemoryStore()
	clients := NewClientService(st)
	reservations := NewReservationService(st, 0)
	billing := NewBillingService(st, PriceList{Adult: 100, Child: 50, Senior: 80})

	client, err := clients.Create(models.Client{IDNumber: "1-1111-1111", Name: "Carlos Mora"})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	reservation, err := reservations.CreateReservation(CreateReservationInput{
		ClientID: client.ID, ClientName: client.Name,
		Date: "2025-06-01", TimeSlot: "10:00",
		AdultCount: 1, ChildCount: 1, SeniorCount: 1,
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	bill, err := billing.IssueBill(client.ID, reservation.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bill.Subtotal != 230 {
		t.Fatalf("subtotal = %v, want 230", bill.Subtotal)
	}
	if math.Abs(bill.Total-230*1.13) > 0.01 {
		t.Fatalf("total = %v, want %v", bill.Total, 230*1.13)
	}
}

package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"balneario-backend/controllers"
	"balneario-backend/services"
	"balneario-backend/store"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin")

	st := store.NewMemoryStore()
	clientService := services.NewClientService(st)
	employeeService := services.NewEmployeeService(st)
	reservationService := services.NewReservationService(st, 0)
	billingService := services.NewBillingService(st, services.PriceList{})
	reportService := services.NewReportService(st)

	return SetupRouter(Controllers{
		Auth:         &controllers.AuthController{},
		Clients:      &controllers.ClientController{Clients: clientService},
		Employees:    &controllers.EmployeeController{Employees: employeeService},
		Reservations: &controllers.ReservationController{Reservations: reservationService, Clients: clientService},
		Bills:        &controllers.BillController{Billing: billingService},
		Reports:      &controllers.ReportController{Reports: reportService},
		Dashboard: &controllers.DashboardController{
			Clients:      clientService,
			Employees:    employeeService,
			Reservations: reservationService,
			Billing:      billingService,
		},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "admin",
		"password": "admin",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %s", w.Body.String())
	}
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/clients", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestBookingFlow(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	// Register a client.
	w := doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{
		"idNumber": "1-2345-6789",
		"name":     "Ana Rodríguez",
		"address":  "Cartago, Costa Rica",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d %s", w.Code, w.Body.String())
	}
	var client struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	// All slots fit a party of 30 on an empty day.
	w = doJSON(t, r, http.MethodGet, "/api/reservations/availability?date=2025-06-01&partySize=30", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: %d %s", w.Code, w.Body.String())
	}
	var availability struct {
		AvailableSlots []string `json:"availableSlots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &availability); err != nil {
		t.Fatalf("decode availability: %v", err)
	}
	if len(availability.AvailableSlots) != len(services.Schedule) {
		t.Fatalf("expected all slots available, got %v", availability.AvailableSlots)
	}

	// Book 30 people at 14:00.
	w = doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{
		"clientId":         client.ID,
		"date":             "2025-06-01",
		"timeSlot":         "14:00",
		"adultCount":       30,
		"assignedEmployee": "Stephanie Chacón",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create reservation: %d %s", w.Code, w.Body.String())
	}
	var reservation struct {
		ID                string `json:"id"`
		ReservationNumber string `json:"reservationNumber"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reservation); err != nil {
		t.Fatalf("decode reservation: %v", err)
	}

	// A party of 21 no longer fits in that slot.
	w = doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{
		"clientId":   client.ID,
		"date":       "2025-06-01",
		"timeSlot":   "14:00",
		"adultCount": 21,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on overbooking, got %d %s", w.Code, w.Body.String())
	}

	// Issue a bill for the booking.
	w = doJSON(t, r, http.MethodPost, "/api/bills", token, gin.H{
		"clientId":      client.ID,
		"reservationId": reservation.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create bill: %d %s", w.Code, w.Body.String())
	}
	var bill struct {
		Subtotal          float64 `json:"subtotal"`
		Tax               float64 `json:"tax"`
		Total             float64 `json:"total"`
		ReservationNumber string  `json:"reservationNumber"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode bill: %v", err)
	}
	if bill.Subtotal != 450000 || bill.Tax != 58500 || bill.Total != 508500 {
		t.Fatalf("wrong bill totals: %+v", bill)
	}
	if bill.ReservationNumber != reservation.ReservationNumber {
		t.Fatalf("bill should reference the reservation number")
	}

	// Cancelling an unknown reservation is a 404.
	w = doJSON(t, r, http.MethodDelete, "/api/reservations/nope", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// Cancelling the real one works; the bill survives.
	w = doJSON(t, r, http.MethodDelete, "/api/reservations/"+reservation.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel reservation: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/api/bills", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list bills: %d", w.Code)
	}
	var bills []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatalf("decode bills: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("bill should survive reservation cancellation, got %d bills", len(bills))
	}
}

func TestAvailabilityRejectsBadQuery(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	for _, path := range []string{
		"/api/reservations/availability?date=2025-06-01",
		"/api/reservations/availability?date=2025-06-01&partySize=0",
		"/api/reservations/availability?date=bad&partySize=4",
	} {
		w := doJSON(t, r, http.MethodGet, path, token, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

package models

import "time"

// Bill is an issued invoice for a reservation. Client, reservation and
// price fields are snapshots taken at issuance time: editing or deleting
// the source client or reservation afterwards does not change the bill.
type Bill struct {
	ID         string    `json:"id"`
	BillNumber string    `json:"billNumber"`
	Date       time.Time `json:"date"`

	ClientID          string `json:"clientId"`
	ClientName        string `json:"clientName"`
	ClientIDNumber    string `json:"clientIdNumber"`
	ReservationID     string `json:"reservationId"`
	ReservationNumber string `json:"reservationNumber"`
	AssignedEmployee  string `json:"assignedEmployee"`

	AdultCount  int `json:"adultCount"`
	ChildCount  int `json:"childCount"`
	SeniorCount int `json:"seniorCount"`

	AdultPrice  float64 `json:"adultPrice"`
	ChildPrice  float64 `json:"childPrice"`
	SeniorPrice float64 `json:"seniorPrice"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

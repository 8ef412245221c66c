package models

// Reservation is a confirmed booking for a party at one time slot on one
// date. Records are immutable after creation; cancelling a reservation
// deletes the record.
type Reservation struct {
	ID                string `json:"id"`
	ClientID          string `json:"clientId"`
	ClientName        string `json:"clientName"`
	Date              string `json:"date"` // YYYY-MM-DD
	TimeSlot          string `json:"timeSlot"`
	AdultCount        int    `json:"adultCount"`
	ChildCount        int    `json:"childCount"`
	SeniorCount       int    `json:"seniorCount"`
	AssignedEmployee  string `json:"assignedEmployee"`
	ReservationNumber string `json:"reservationNumber"`
}

// PartySize is the number of capacity units the reservation occupies.
func (r Reservation) PartySize() int {
	return r.AdultCount + r.ChildCount + r.SeniorCount
}

package models

// Client is a person who books reservations. IDNumber is the national id
// (cédula) used on issued bills.
type Client struct {
	ID       string `json:"id"`
	IDNumber string `json:"idNumber"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

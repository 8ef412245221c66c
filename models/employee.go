package models

// Employee is a staff member who can be assigned to reservations.
// Commission is a percentage applied to the revenue of bills carrying the
// employee's name.
type Employee struct {
	ID         string  `json:"id"`
	IDNumber   string  `json:"idNumber"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Commission float64 `json:"commission"`
	Salary     float64 `json:"salary"`
	Position   string  `json:"position"`
}

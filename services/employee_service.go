package services

import (
	"balneario-backend/models"
	"balneario-backend/store"

	"github.com/google/uuid"
)

// EmployeeService owns the employees collection.
type EmployeeService struct {
	store store.Store
}

func NewEmployeeService(st store.Store) *EmployeeService {
	return &EmployeeService{store: st}
}

func (s *EmployeeService) List() ([]models.Employee, error) {
	return loadRecords[models.Employee](s.store, store.Employees)
}

func (s *EmployeeService) Get(id string) (*models.Employee, error) {
	employees, err := loadRecords[models.Employee](s.store, store.Employees)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *EmployeeService) Create(employee models.Employee) (*models.Employee, error) {
	if employee.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if employee.Commission < 0 {
		return nil, &ValidationError{Field: "commission", Message: "must not be negative"}
	}
	employee.ID = uuid.New().String()

	employees, err := loadRecords[models.Employee](s.store, store.Employees)
	if err != nil {
		return nil, err
	}
	employees = append(employees, employee)
	if err := saveRecords(s.store, store.Employees, employees); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Update(employee models.Employee) (*models.Employee, error) {
	employees, err := loadRecords[models.Employee](s.store, store.Employees)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range employees {
		if employees[i].ID == employee.ID {
			employees[i] = employee
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := saveRecords(s.store, store.Employees, employees); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Delete(id string) error {
	employees, err := loadRecords[models.Employee](s.store, store.Employees)
	if err != nil {
		return err
	}

	kept := make([]models.Employee, 0, len(employees))
	found := false
	for _, e := range employees {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}
	return saveRecords(s.store, store.Employees, kept)
}

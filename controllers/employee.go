package controllers

import (
	"errors"
	"net/http"

	"balneario-backend/models"
	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeInput defines the expected JSON structure for creating or
// updating an employee
type EmployeeInput struct {
	IDNumber   string  `json:"idNumber" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email" binding:"omitempty,email"`
	Commission float64 `json:"commission" binding:"min=0"`
	Salary     float64 `json:"salary" binding:"min=0"`
	Position   string  `json:"position"`
}

type EmployeeController struct {
	Employees *services.EmployeeService
}

// CreateEmployee registers a new employee
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	employee, err := ec.Employees.Create(models.Employee{
		IDNumber:   input.IDNumber,
		Name:       input.Name,
		Address:    input.Address,
		Phone:      input.Phone,
		Email:      input.Email,
		Commission: input.Commission,
		Salary:     input.Salary,
		Position:   input.Position,
	})
	if err != nil {
		if services.IsValidation(err) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		}
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployees retrieves all employees
func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	employees, err := ec.Employees.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee retrieves a specific employee by ID
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employee, err := ec.Employees.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employee")
		}
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee replaces an existing employee's details
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	employee, err := ec.Employees.Update(models.Employee{
		ID:         c.Param("id"),
		IDNumber:   input.IDNumber,
		Name:       input.Name,
		Address:    input.Address,
		Phone:      input.Phone,
		Email:      input.Email,
		Commission: input.Commission,
		Salary:     input.Salary,
		Position:   input.Position,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		}
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	if err := ec.Employees.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

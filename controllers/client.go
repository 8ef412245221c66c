package controllers

import (
	"errors"
	"net/http"

	"balneario-backend/models"
	"balneario-backend/services"
	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

// ClientInput defines the expected JSON structure for creating or
// updating a client
type ClientInput struct {
	IDNumber string `json:"idNumber" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type ClientController struct {
	Clients *services.ClientService
}

// CreateClient registers a new client
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateIDNumber(input.IDNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id number format")
		return
	}

	client, err := cc.Clients.Create(models.Client{
		IDNumber: input.IDNumber,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		Email:    input.Email,
	})
	if err != nil {
		if services.IsValidation(err) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients
func (cc *ClientController) GetClients(c *gin.Context) {
	clients, err := cc.Clients.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func (cc *ClientController) GetClient(c *gin.Context) {
	client, err := cc.Clients.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient replaces an existing client's details
func (cc *ClientController) UpdateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := cc.Clients.Update(models.Client{
		ID:       c.Param("id"),
		IDNumber: input.IDNumber,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		Email:    input.Email,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.Clients.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

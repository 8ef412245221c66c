// controllers/auth.go
package controllers

import (
	"net/http"
	"os"

	"balneario-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController implements the single-operator login stub. There is no
// user table: the operator account comes from the environment, defaulting
// to admin/admin for local use.
type AuthController struct{}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	if input.Username != username || !checkOperatorPassword(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": username},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username})
}

func checkOperatorPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return utils.CheckPasswordHash(password, hash)
	}
	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		plain = "admin"
	}
	return password == plain
}

package clienteControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/auth"
	"github.com/mprower/coleccionables-api/models"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Numero   string `json:"numero"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de registro inválidos: " + err.Error()})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar cliente"})
			return
		}

		cliente := models.Cliente{
			Nombre:   input.Nombre,
			Password: hash,
			Numero:   input.Numero,
		}
		if err := db.Create(&cliente).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar cliente"})
			return
		}

		// Password carries json:"-", the hash never leaves this boundary.
		c.JSON(http.StatusCreated, cliente)
	}
}

// POST /api/login
func Login(db *gorm.DB, tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de login inválidos: " + err.Error()})
			return
		}

		var cliente models.Cliente
		err := db.Where("nombre = ?", input.Nombre).First(&cliente).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el login"})
			return
		}

		if !auth.CheckPassword(input.Password, cliente.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
			return
		}

		token, err := tm.GenerateToken(cliente.ID, cliente.Nombre)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

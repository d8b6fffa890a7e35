// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Health
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// Get checks if the database is reachable
//
//	@Summary		Health check
//	@Description	Returns the health of the backend, checking the database connection
//	@Tags			Health
//	@Success		200
//	@Failure		500
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

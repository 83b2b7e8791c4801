// controllers/hydration_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// UpdateHydration handles manual updates of hydration intake for the current day
func UpdateHydration(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Hydration float64 `json:"hydration"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Hydration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hydration must be non-negative"})
		return
	}

	if err := services.UpsertHydration(uid, body.Hydration); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

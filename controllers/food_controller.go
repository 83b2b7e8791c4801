package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// POST /food/recognize  { "image_base64": "data:…"}
func RecognizeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}

	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	foodSvc := services.NewFoodService(vision, services.NewGenAIService())

	out, err := foodSvc.Recognize(req.ImageBase64)
	if err != nil {
		if errors.Is(err, services.ErrManualEntryRequired) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "manual_entry": true})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, out)
}

// POST /food/entries
func LogFoodEntry(c *gin.Context) {
	var body struct {
		Name        string    `json:"name" binding:"required"`
		Calories    int       `json:"calories"`
		PhotoBase64 string    `json:"photo_base64"`
		AteAt       time.Time `json:"ate_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")

	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	foodSvc := services.NewFoodService(vision, services.NewGenAIService())

	entry, err := foodSvc.LogEntry(uid, body.Name, body.Calories, body.PhotoBase64, body.AteAt)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, entry)
}

// GET /food/entries?date=2026-08-29
func ListFoodEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	foodSvc := services.NewFoodService(vision, services.NewGenAIService())

	entries, err := foodSvc.ListEntriesByDate(uid, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, entries)
}

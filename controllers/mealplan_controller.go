package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// POST /mealplans
func GenerateMealPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	planSvc := services.NewMealPlanService(services.NewGenAIService(), services.NewYelpService())
	hist, err := planSvc.GeneratePlan(uid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, hist)
}

// GET /mealplans
func ListMealPlans(c *gin.Context) {
	uid := c.GetUint("userID")

	planSvc := services.NewMealPlanService(services.NewGenAIService(), services.NewYelpService())
	hists, err := planSvc.ListHistories(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hists)
}

// GET /mealplans/:id
func GetMealPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	planSvc := services.NewMealPlanService(services.NewGenAIService(), services.NewYelpService())
	hist, err := planSvc.GetHistory(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	c.JSON(http.StatusOK, hist)
}

// PUT /mealplans/:id/meals/:position
func UpdateMealLine(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal position"})
		return
	}

	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	planSvc := services.NewMealPlanService(services.NewGenAIService(), services.NewYelpService())
	line, err := planSvc.UpdateMealLine(uid, uint(id), position, body.Text)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, line)
}

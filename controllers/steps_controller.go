package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type StepsController struct {
	Svc *services.StepService
}

func NewStepsController(svc *services.StepService) *StepsController {
	return &StepsController{Svc: svc}
}

type sensorReadingReq struct {
	DeviceID      string `json:"device_id" binding:"required"`
	RawCount      int64  `json:"raw_count"`
	SensorPresent *bool  `json:"sensor_present"`
}

// POST /steps/sensor — one raw cumulative counter reading from the device.
func (sc *StepsController) PostReading(c *gin.Context) {
	uid := c.GetUint("userID")

	var req sensorReadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	present := true
	if req.SensorPresent != nil {
		present = *req.SensorPresent
	}

	count, err := sc.Svc.RecordReading(uid, req.DeviceID, req.RawCount, present)
	if err != nil {
		if errors.Is(err, services.ErrStepSensorUnavailable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "terminal": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// POST /steps/baseline/reset
func (sc *StepsController) ResetBaseline(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		DeviceID string `json:"device_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.Svc.ResetBaseline(uid, req.DeviceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /steps/history
func (sc *StepsController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	recs, err := sc.Svc.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /steps/today
func (sc *StepsController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	count, err := sc.Svc.TodayCount(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

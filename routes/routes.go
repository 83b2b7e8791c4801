package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	stepsCtl := controllers.NewStepsController(services.NewStepService(rt))
	deviceCtl := controllers.NewDeviceController(push)
	rtCtl := controllers.NewRealtimeController(rt)

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.POST("/calorie-goal/recommend", controllers.RecommendCalorieGoal)
		}

		food := api.Group("/food")
		{
			food.POST("/recognize", controllers.RecognizeFood)
			food.POST("/entries", controllers.LogFoodEntry)
			food.GET("/entries", controllers.ListFoodEntries)
		}

		steps := api.Group("/steps")
		{
			steps.POST("/sensor", stepsCtl.PostReading)
			steps.POST("/baseline/reset", stepsCtl.ResetBaseline)
			steps.GET("/history", stepsCtl.History)
			steps.GET("/today", stepsCtl.Today)
		}

		api.PUT("/activity/hydration", controllers.UpdateHydration)
		api.GET("/summary", controllers.GetDailySummary)

		plans := api.Group("/mealplans")
		{
			plans.POST("", controllers.GenerateMealPlan)
			plans.GET("", controllers.ListMealPlans)
			plans.GET("/:id", controllers.GetMealPlan)
			plans.PUT("/:id/meals/:position", controllers.UpdateMealLine)
		}

		devices := api.Group("/devices")
		{
			devices.POST("", deviceCtl.Register)
			devices.POST("/notifications/toggle", deviceCtl.ToggleNotifications)
		}

		api.GET("/ws", rtCtl.LiveWS)
	}

	return r
}

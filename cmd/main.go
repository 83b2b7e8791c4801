package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}

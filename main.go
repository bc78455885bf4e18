package main

import (
	"fmt"
	"log"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/configs"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/routes"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedRoles(db); err != nil {
		log.Fatalf("seed roles failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// live order tracking
	hub := ws.NewTrackHub(db)
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("listening on %s (order flow: %s)", addr, cfg.OrderFlow)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

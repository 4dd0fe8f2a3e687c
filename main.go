package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/configs"
	"github.com/dgamboa/foodtrucks-backend/middlewares"
	"github.com/dgamboa/foodtrucks-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if cfg.SeedDemo {
		if err := configs.SeedDemo(db, cfg); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middlewares.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

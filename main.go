package main

import (
	"log"

	"Vitals360/auth"
	"Vitals360/config"
	"Vitals360/db"
	"Vitals360/jobs"
	"Vitals360/routes"
	"Vitals360/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	appointmentStore := db.NewAppointmentStore(database)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.Routes(r, auth.NewStore(database, cfg), routes.Services{
		Auth:        services.NewAuthService(db.NewUserStore(database)),
		Appointment: services.NewAppointmentService(appointmentStore),
		Review:      services.NewReviewService(db.NewReviewStore(database)),
	})

	jobs.StartDailyScheduler(appointmentStore)

	log.Println("Server running at http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start the server: %v", err)
	}
}

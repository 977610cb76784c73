package routes

import (
	"Vitals360/auth"
	"Vitals360/controllers"
	"Vitals360/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Services groups everything the route table needs.
type Services struct {
	Auth        *services.AuthService
	Appointment *services.AppointmentService
	Review      *services.ReviewService
}

func Routes(r *gin.Engine, store sessions.Store, svcs Services) {
	r.Use(sessions.Sessions(auth.SessionName, store))

	controllers.Auth(r, svcs.Auth)
	controllers.Appointment(r, svcs.Appointment)
	controllers.Review(r, svcs.Review)

	r.Static("/public", "./public")
}

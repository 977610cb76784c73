package controllers

import (
	"errors"
	"net/http"

	"Vitals360/auth"
	"Vitals360/models"
	"Vitals360/services"
	"Vitals360/util"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	svc *services.AppointmentService
}

func Appointment(r *gin.Engine, svc *services.AppointmentService) {
	ctl := &AppointmentController{svc: svc}
	api := r.Group("/api")
	{
		api.GET("/appointments/:doctorId", ctl.ListBookedSlots)
		api.POST("/appointments", ctl.CreateBooking)
	}
}

/*
* Read the doctor from the path
* Return the dateKey -> taken slots map
 */
func (ctl *AppointmentController) ListBookedSlots(c *gin.Context) {
	doctorId := c.Param("doctorId")
	booked, err := ctl.svc.ListBookedSlots(c, doctorId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(util.FAILED_TO_FETCH_APPOINTMENTS))
		return
	}
	c.JSON(http.StatusOK, booked)
}

/*
* Only a logged-in user may book
* Bind the typed body and pass it to the service
 */
func (ctl *AppointmentController) CreateBooking(c *gin.Context) {
	userId, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(util.LOGIN_REQUIRED_FOR_BOOKING))
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}

	if err := ctl.svc.CreateBooking(c, req, userId); err != nil {
		if errors.Is(err, services.ErrSlotFieldsRequired) {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, util.FailedResponse(util.FAILED_TO_SAVE_APPOINTMENT))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse())
}

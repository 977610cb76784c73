package controllers

import (
	"net/http"

	"Vitals360/auth"
	"Vitals360/models"
	"Vitals360/services"
	"Vitals360/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	svc *services.ReviewService
}

func Review(r *gin.Engine, svc *services.ReviewService) {
	ctl := &ReviewController{svc: svc}
	api := r.Group("/api")
	{
		api.GET("/reviews", ctl.ListReviews)
		api.POST("/reviews", ctl.CreateReview)
	}
}

// ListReviews returns every testimonial, newest first.
func (ctl *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := ctl.svc.ListReviews(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(util.FAILED_TO_FETCH_REVIEWS))
		return
	}
	c.JSON(http.StatusOK, reviews)
}

/*
* Only a logged-in user may post
* Bind the typed body and append the review
 */
func (ctl *ReviewController) CreateReview(c *gin.Context) {
	if _, ok := auth.CurrentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(util.UNAUTHORIZED))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}

	if err := ctl.svc.CreateReview(c, req); err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(util.FAILED_TO_SAVE_REVIEW))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse())
}

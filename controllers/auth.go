package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"Vitals360/auth"
	"Vitals360/models"
	"Vitals360/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func Auth(r *gin.Engine, svc *services.AuthService) {
	ctl := &AuthController{svc: svc}
	r.GET("/", ctl.Root)
	r.GET("/login", ctl.LoginPage)
	r.POST("/signup", ctl.Signup)
	r.POST("/login", ctl.Login)
	r.POST("/logout", ctl.Logout)
	r.GET("/dashboard", auth.RequirePage(), ctl.Dashboard)
}

func (ctl *AuthController) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (ctl *AuthController) LoginPage(c *gin.Context) {
	if _, ok := auth.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.File("./public/login.html")
}

func (ctl *AuthController) Dashboard(c *gin.Context) {
	c.File("./public/main.html")
}

/*
* Bind the signup form
* Refuse an existing username with an alert page, otherwise back to login
 */
func (ctl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		alertPage(c, "Error")
		return
	}

	err := ctl.svc.Signup(c, req.Name, req.Username, req.Password)
	if errors.Is(err, services.ErrUserExists) {
		alertPage(c, services.ErrUserExists.Error())
		return
	}
	if err != nil {
		alertPage(c, "Error")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

/*
* Verify the credentials
* Store the user in the session and move to the dashboard
 */
func (ctl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		alertPage(c, "Server Error")
		return
	}

	user, err := ctl.svc.Login(c, req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		alertPage(c, services.ErrUserNotFound.Error())
	case errors.Is(err, services.ErrInvalidPassword):
		alertPage(c, services.ErrInvalidPassword.Error())
	case err != nil:
		alertPage(c, "Server Error")
	default:
		if err := auth.SetUser(c, user.ID.Hex(), user.Name); err != nil {
			log.Println("Error saving session:", err)
			alertPage(c, "Server Error")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (ctl *AuthController) Logout(c *gin.Context) {
	if err := auth.ClearUser(c); err != nil {
		log.Println("Error destroying session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// alertPage mirrors the inline alert-and-redirect pages the login and
// signup forms expect.
func alertPage(c *gin.Context, msg string) {
	body := fmt.Sprintf(`<script>alert(%q); window.location.href="/login";</script>`, msg)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

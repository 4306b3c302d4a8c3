package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/triager/internal/constants"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/services"
	"github.com/yukikurage/triager/internal/view"
)

// AuthHandler serves the combined login + register page.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowHome renders the login + register page.
func (h *AuthHandler) ShowHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", view.HomeView{
		Flashes: takeFlashes(c),
	})
}

// SubmitHome dispatches the POST to whichever of the two forms was
// submitted, keyed on the hidden "form" field.
func (h *AuthHandler) SubmitHome(c *gin.Context) {
	switch c.PostForm("form") {
	case "register":
		h.register(c)
	case "login":
		h.login(c)
	default:
		addFlash(c, "Unknown form submission")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (h *AuthHandler) register(c *gin.Context) {
	type registerForm struct {
		Username        string `form:"username"`
		Email           string `form:"email"`
		Password        string `form:"password"`
		ConfirmPassword string `form:"confirm_password"`
	}

	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Username:        form.Username,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// No auto-login: the new user signs in explicitly.
	addFlash(c, "User registration successful")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) login(c *gin.Context) {
	type loginForm struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout ends the session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

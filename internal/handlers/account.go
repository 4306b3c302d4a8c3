package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/middleware"
	"github.com/yukikurage/triager/internal/services"
	"github.com/yukikurage/triager/internal/view"
)

// AccountHandler serves the account settings page.
type AccountHandler struct {
	authService    *services.AuthService
	accountService *services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService, accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		authService:    authService,
		accountService: accountService,
	}
}

// Show renders the account settings page.
func (h *AccountHandler) Show(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.HTML(http.StatusOK, "account_settings.html", view.AccountView{
		Flashes:  takeFlashes(c),
		Username: user.Username,
		Email:    user.Email,
	})
}

// Submit dispatches the settings POST: change password or delete account.
func (h *AccountHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	switch c.PostForm("form") {
	case "change_password":
		h.changePassword(c, userID)
	case "delete_account":
		h.deleteAccount(c, userID)
	default:
		addFlash(c, "Unknown form submission")
		c.Redirect(http.StatusSeeOther, "/account_settings")
	}
}

func (h *AccountHandler) changePassword(c *gin.Context, userID uint64) {
	type changePasswordForm struct {
		OldPassword     string `form:"old_password"`
		NewPassword     string `form:"new_password"`
		ConfirmPassword string `form:"confirm_password"`
	}

	var form changePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, "/account_settings")
		return
	}

	err := h.accountService.ChangePassword(userID, form.OldPassword, form.NewPassword, form.ConfirmPassword)
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/account_settings")
		return
	}

	addFlash(c, "Password changed")
	c.Redirect(http.StatusSeeOther, "/account_settings")
}

func (h *AccountHandler) deleteAccount(c *gin.Context, userID uint64) {
	confirm := c.PostForm("confirm_password")

	if err := h.accountService.DeleteAccount(userID, confirm); err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/account_settings")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.AddFlash("Account deleted")
	_ = session.Save()

	c.Redirect(http.StatusSeeOther, "/")
}

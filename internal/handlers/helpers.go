package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/triager/internal/constants"
	"github.com/yukikurage/triager/internal/services"
)

var errInvalidDate = errors.New("invalid date")

// addFlash queues a message for the next rendered page.
func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// takeFlashes drains the queued messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}

	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseDate parses a form date. Empty input yields the zero time, which
// the services treat as "not provided".
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// parseOwnerID parses an owner select value. Empty means unassigned.
func parseOwnerID(value string) (*uint64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, services.ErrTaskOwnerNotFound
	}
	return &id, nil
}

// redirectBack sends the browser to the referring page, or the fallback
// when no referer is present.
func redirectBack(c *gin.Context, fallback string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusSeeOther, target)
}

// flashMessage maps a service error onto the user-facing text shown on
// the page. Unexpected errors get a generic line.
func flashMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return "All fields are required"
	case errors.Is(err, services.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, services.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		return "Username or email already registered"
	case errors.Is(err, services.ErrUserNotFound):
		return "User does not exist, please register"
	case errors.Is(err, services.ErrWrongPassword):
		return "Incorrect password"
	case errors.Is(err, services.ErrDatesRequired):
		return "Date received and day zero are required"
	case errors.Is(err, services.ErrCommentTooLong):
		return "Comment is too long"
	case errors.Is(err, services.ErrTaskOwnerNotFound):
		return "Selected owner does not exist"
	case errors.Is(err, errInvalidDate):
		return "Invalid date format"
	default:
		return "Something went wrong, please try again"
	}
}

package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/triager/internal/view"
)

// NotFoundPage renders the distinct not-found page with a 404 status.
func NotFoundPage(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.HTML(http.StatusNotFound, "error.html", view.ErrorView{
		Status:  http.StatusNotFound,
		Message: message,
	})
}

// FailurePage renders the generic failure page with a 500 status. An
// unexpected fault ends the request here, never the process.
func FailurePage(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", view.ErrorView{
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong, please try again",
	})
}

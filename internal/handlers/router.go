package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/triager/internal/config"
	"github.com/yukikurage/triager/internal/constants"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/middleware"
	"github.com/yukikurage/triager/internal/view"
)

// Handlers bundles every screen handler for router assembly.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Task      *TaskHandler
	Account   *AccountHandler
}

// NewRouter assembles the gin engine: templates, sessions, logging,
// panic recovery, and the route table.
func NewRouter(cfg *config.Config, log *logrus.Logger, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.WithField("panic", err).Error("request panicked")
		weberrors.FailurePage(c)
		c.Abort()
	}))

	r.SetHTMLTemplate(view.Templates())

	store, err := sessionStore(cfg)
	if err != nil {
		return nil, err
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.NoRoute(func(c *gin.Context) {
		weberrors.NotFoundPage(c, "Page not found")
	})

	r.GET("/", h.Auth.ShowHome)
	r.POST("/", h.Auth.SubmitHome)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/dashboard", h.Dashboard.Show)
		authed.GET("/logout", h.Auth.Logout)

		authed.GET("/new_report", h.Report.New)
		authed.POST("/new_report", h.Report.Create)
		authed.GET("/report/:id", h.Report.Show)
		authed.POST("/report/:id", h.Report.Submit)
		authed.GET("/delete_report/:id", h.Report.Delete)

		authed.GET("/task/:id", h.Task.Show)
		authed.POST("/task/:id", h.Task.Update)
		authed.GET("/complete_task/:id", h.Task.Complete)
		authed.GET("/delete_task/:id", h.Task.Delete)
		authed.GET("/task_list", h.Task.List)

		authed.GET("/account_settings", h.Account.Show)
		authed.POST("/account_settings", h.Account.Submit)
	}

	return r, nil
}

func sessionStore(cfg *config.Config) (sessions.Store, error) {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.SessionStore == "redis" {
		store, err := redisStore.NewStore(
			10,
			"tcp",
			cfg.RedisHost+":"+cfg.RedisPort,
			"", // password (empty = no password)
			[]byte(cfg.SecretKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(options)
	return store, nil
}

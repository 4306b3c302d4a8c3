package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/triager/internal/config"
	"github.com/yukikurage/triager/internal/database"
	"github.com/yukikurage/triager/internal/logging"
	"github.com/yukikurage/triager/internal/models"
	"github.com/yukikurage/triager/internal/repository"
	"github.com/yukikurage/triager/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	authService    *services.AuthService
	reportService  *services.ReportService
	taskService    *services.TaskService
	accountService *services.AccountService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Report{},
		&models.Task{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	reportService := services.NewReportService(reportRepo)
	taskService := services.NewTaskService(taskRepo, reportRepo, userRepo)
	accountService := services.NewAccountService(userRepo)

	h := Handlers{
		Auth:      NewAuthHandler(authService),
		Dashboard: NewDashboardHandler(authService, reportService, taskService),
		Report:    NewReportHandler(reportService, taskService),
		Task:      NewTaskHandler(taskService),
		Account:   NewAccountHandler(authService, accountService),
	}

	cfg := &config.Config{
		SecretKey:    "secret",
		SessionStore: "cookie",
		GinMode:      gin.TestMode,
	}

	router, err := NewRouter(cfg, logging.New("error"), h)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:             db,
		router:         router,
		authService:    authService,
		reportService:  reportService,
		taskService:    taskService,
		accountService: accountService,
	}
}

func (env *testEnv) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) registerUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	return user
}

func (env *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{
		"form":     {"login"},
		"username": {username},
		"password": {password},
	}
	w := env.postForm(t, "/", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

func (env *testEnv) createReport(t *testing.T, caseID string) *models.Report {
	t.Helper()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report, err := env.reportService.Create(services.ReportInput{
		DateReceived: date,
		DayZero:      date,
		CaseID:       caseID,
		CaseVersion:  models.CaseVersionInitial,
	})
	require.NoError(t, err)
	return report
}

func (env *testEnv) createTask(t *testing.T, reportID uint64, ownerID *uint64, comment string) *models.Task {
	t.Helper()

	task, err := env.taskService.Add(services.AddTaskInput{
		ReportID: reportID,
		OwnerID:  ownerID,
		TaskType: models.TaskTypeDataEntry,
		DueDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Comment:  comment,
	})
	require.NoError(t, err)
	return task
}

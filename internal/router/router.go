package router

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"healthtrack/internal/auth"
	"healthtrack/internal/config"
	"healthtrack/internal/handler"
	"healthtrack/internal/logging"
	"healthtrack/internal/metrics"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth       *handler.AuthHandler
	Profile    *handler.ProfileHandler
	Symptom    *handler.SymptomHandler
	Diagnostic *handler.DiagnosticTestHandler
	Alert      *handler.AlertHandler
	Insight    *handler.InsightHandler
	Health     *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *logrus.Logger, tokens *auth.TokenService, h Handlers) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(metrics.Middleware())

	e.Validator = NewValidator()

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", h.Health.Health)
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require a bearer token)
	secured := api.Group("", auth.Gate(auth.GateConfig{
		Tokens:   tokens,
		Logger:   log,
		OnReject: metrics.RecordAuthRejection,
	}))

	secured.GET("/user/profile", h.Profile.GetProfile)
	secured.PUT("/user/profile", h.Profile.UpdateProfile)

	secured.GET("/health/symptoms", h.Symptom.ListSymptoms)
	secured.POST("/health/symptoms", h.Symptom.CreateSymptom)
	secured.GET("/health/metrics", h.Insight.Metrics)
	secured.GET("/health/score", h.Insight.Score)
	secured.GET("/health/ai-recommendations", h.Insight.Recommendations)
	secured.POST("/health/ai-diagnosis", h.Insight.Diagnose)
	secured.GET("/health/appointments", h.Insight.Appointments)

	secured.GET("/diagnostic-tests", h.Diagnostic.ListTests)
	secured.POST("/diagnostic-tests", h.Diagnostic.CreateTest)
	secured.GET("/diagnostic-tests/:id", h.Diagnostic.GetTest)
	secured.PUT("/diagnostic-tests/:id", h.Diagnostic.UpdateTest)
	secured.DELETE("/diagnostic-tests/:id", h.Diagnostic.DeleteTest)

	secured.GET("/alerts", h.Alert.ListAlerts)
	secured.POST("/alerts", h.Alert.CreateAlert)
	secured.PUT("/alerts/:id/status", h.Alert.UpdateAlertStatus)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/config"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/handler/middleware"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/auth"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterDeps struct {
	Config     *config.Config
	Log        *zap.Logger
	Collector  *metrics.Collector
	JWTManager *auth.JWTManager
	DB         Pinger

	Auth         *service.AuthService
	Doctors      *service.DoctorService
	Patients     *service.PatientService
	Appointments *service.AppointmentService
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestID(),
		middleware.Tracing(deps.Config.Tracing.ServiceName),
		middleware.Logger(deps.Log),
		middleware.Metrics(deps.Collector),
		middleware.CORS(deps.Config.CORS),
	)

	r.GET("/healthz", healthz(deps.DB))
	r.GET("/metrics", gin.WrapH(deps.Collector.Handler()))

	authH := NewAuthHandler(deps.Auth)
	doctorH := NewDoctorHandler(deps.Doctors)
	patientH := NewPatientHandler(deps.Patients)
	appointmentH := NewAppointmentHandler(deps.Appointments)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", authH.Login)
	authGroup.POST("/refresh", authH.Refresh)

	protected := api.Group("")
	protected.Use(middleware.Authenticate(deps.JWTManager))

	doctors := protected.Group("/doctors")
	doctors.GET("", doctorH.List)
	doctors.POST("", doctorH.Create)
	doctors.GET("/options", doctorH.Options)
	doctors.GET("/:id", doctorH.Get)
	doctors.PUT("/:id", doctorH.Update)

	patients := protected.Group("/patients")
	patients.GET("", patientH.List)
	patients.POST("", patientH.Create)
	patients.GET("/options", patientH.Options)
	patients.GET("/:id", patientH.Get)
	patients.PUT("/:id", patientH.Update)

	appointments := protected.Group("/appointments")
	appointments.GET("", appointmentH.List)
	appointments.POST("", appointmentH.Book)
	appointments.GET("/:id", appointmentH.Get)
	appointments.PATCH("/:id/status", appointmentH.UpdateStatus)

	return r
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

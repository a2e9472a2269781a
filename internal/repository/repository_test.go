package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/config"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/database"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

// newTestDB opens a migrated SQLite file private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "clinic.db"),
		BusyTimeout:     5 * time.Second,
		JournalMode:     "WAL",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	}

	log := zap.NewNop()
	db, err := database.Connect(cfg, log, metrics.NewCollector("test", prometheus.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db, log))
	return db
}

func strPtr(s string) *string { return &s }

func seedDoctor(t *testing.T, repo *DoctorRepository, name string, status doctor.Status) *doctor.Doctor {
	t.Helper()
	d := &doctor.Doctor{
		Name:           name,
		Specialization: "General",
		Phone:          "5551234567",
		Status:         status,
	}
	require.NoError(t, repo.Create(context.Background(), d))
	return d
}

func seedPatient(t *testing.T, repo *PatientRepository, first, last string) *patient.Patient {
	t.Helper()
	p := &patient.Patient{
		FirstName: first,
		LastName:  last,
		Gender:    patient.GenderFemale,
		DOB:       "1990-04-12",
		Phone:     "5559876543",
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func book(repo *AppointmentRepository, patientID, doctorID int64, datetime string) (*appointment.Appointment, error) {
	a := &appointment.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Datetime:  datetime,
		Status:    appointment.StatusBooked,
	}
	return a, repo.Create(context.Background(), a)
}

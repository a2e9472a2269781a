package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/config"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

// UniqueBookedSlotIndex rejects a second BOOKED appointment for a doctor at
// the same datetime. Cancelled and completed rows do not hold the slot.
const UniqueBookedSlotIndex = "uq_doctor_time_booked"

// GormConfig is shared by Connect and tests that open gorm over other connections.
func GormConfig(log *zap.Logger, cfg config.DatabaseConfig, collector *metrics.Collector) *gorm.Config {
	return &gorm.Config{
		Logger:                 NewGormLogger(log, cfg.SlowQueryThreshold, collector),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		DisableAutomaticPing:   false,
	}
}

func Connect(cfg config.DatabaseConfig, log *zap.Logger, collector *metrics.Collector) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{DSN: cfg.DSN()})
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormCfg := GormConfig(log, cfg, collector)
	gormCfg.PrepareStmt = true

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		var fk int
		if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
			return nil, fmt.Errorf("reading foreign_keys pragma: %w", err)
		}
		if fk != 1 {
			return nil, fmt.Errorf("sqlite foreign key enforcement is off; check the DSN")
		}
	}

	return db, nil
}

// Close releases the connection pool opened by Connect.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	start := time.Now()

	models := []any{
		&domain.User{},
		&doctor.Doctor{},
		&patient.Patient{},
		&appointment.Appointment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	log.Info("migrations completed", zap.Duration("duration", time.Since(start)))
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{
			name:  UniqueBookedSlotIndex,
			query: `CREATE UNIQUE INDEX IF NOT EXISTS ` + UniqueBookedSlotIndex + ` ON appointments (doctor_id, appointment_datetime) WHERE status = 'BOOKED'`,
		},
		{
			name:  "idx_patients_name",
			query: `CREATE INDEX IF NOT EXISTS idx_patients_name ON patients (last_name, first_name)`,
		},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			return fmt.Errorf("%s: %w", idx.name, err)
		}
	}

	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

// GormLogger sends gorm output to zap and records statement latency.
// Statement text is never logged: gorm interpolates bound values into it and
// those carry patient details.
type GormLogger struct {
	log       *zap.Logger
	level     gormlogger.LogLevel
	slow      time.Duration
	collector *metrics.Collector
}

func NewGormLogger(log *zap.Logger, slow time.Duration, collector *metrics.Collector) *GormLogger {
	return &GormLogger{
		log:       log.Named("gorm"),
		level:     gormlogger.Warn,
		slow:      slow,
		collector: collector,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if l.collector != nil {
		l.collector.DBQueryDuration.WithLabelValues(operation(sql)).Observe(elapsed.Seconds())
	}

	if l.level <= gormlogger.Silent {
		return
	}

	fields := []zap.Field{
		zap.String("operation", operation(sql)),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && !expected(err) && l.level >= gormlogger.Error:
		l.log.Warn("statement failed", append(fields, zap.Error(err))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		l.log.Warn("slow statement", append(fields, zap.Duration("threshold", l.slow))...)
	case l.level >= gormlogger.Info:
		l.log.Debug("statement", fields...)
	}
}

// expected reports errors the repositories turn into not-found or conflict
// answers for the caller.
func expected(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || IsUniqueViolation(err) || IsForeignKeyViolation(err)
}

// operation is the leading SQL keyword, e.g. "select" or "insert".
func operation(sql string) string {
	sql = strings.TrimSpace(sql)
	if i := strings.IndexAny(sql, " \n\t"); i > 0 {
		sql = sql[:i]
	}
	return strings.ToLower(sql)
}

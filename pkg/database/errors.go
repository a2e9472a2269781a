package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Message fragments for drivers or versions that do not translate errors.
var (
	uniqueViolationMarkers = []string{
		"UNIQUE constraint failed",
		"duplicate key value",
	}
	foreignKeyViolationMarkers = []string{
		"FOREIGN KEY constraint failed",
		"violates foreign key constraint",
	}
)

// IsUniqueViolation reports whether err is a rejected duplicate on a unique
// index, such as a second booking of a doctor's slot.
func IsUniqueViolation(err error) bool {
	return err != nil && (errors.Is(err, gorm.ErrDuplicatedKey) || containsAny(err.Error(), uniqueViolationMarkers))
}

// IsForeignKeyViolation reports whether err is a reference to a missing row.
func IsForeignKeyViolation(err error) bool {
	return err != nil && (errors.Is(err, gorm.ErrForeignKeyViolated) || containsAny(err.Error(), foreignKeyViolationMarkers))
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Package validation normalizes and checks raw clinic form input.
//
// Every function is pure: the current time is passed in, never read. Callers
// validate fields left to right (names, then date and gender, then phone, then
// email) and stop at the first failure, so one message is reported per attempt.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"

	phoneDigits = 10
)

var (
	// time.Parse accepts single-digit hours, so the shape is checked first.
	dateShape     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)
)

// Error is a rejected field. Message is meant to be shown to the user as is.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(field, message string) error {
	return &Error{Field: field, Message: message}
}

// RequiredText returns the trimmed value, or an error naming label if it is blank.
func RequiredText(field, label, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fail(field, label+" is required.")
	}
	return v, nil
}

// PersonName trims both parts of a name and requires each to be non-blank.
func PersonName(first, last string) (string, string, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		field := "first_name"
		if first != "" {
			field = "last_name"
		}
		return "", "", fail(field, "First name and last name are required.")
	}
	return first, last, nil
}

// OptionalText returns nil for blank input so that absence is stored as NULL.
func OptionalText(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}

// NormalizePhone keeps only the ASCII digits of raw and requires exactly ten.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() != phoneDigits {
		return "", fail("phone", "Phone must be exactly 10 digits.")
	}
	return b.String(), nil
}

// OptionalEmail accepts blank input (returned as nil) or an address with a
// non-empty local part and a dot somewhere after the character following '@'
// that is not the final character. Nothing else is checked.
func OptionalEmail(raw string) (*string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return nil, nil
	}

	at := strings.IndexByte(email, '@')
	dot := strings.LastIndexByte(email, '.')
	if at <= 0 || dot <= at+1 || dot == len(email)-1 {
		return nil, fail("email", "Enter a valid email or leave it blank.")
	}
	return &email, nil
}

// ParseDOB requires a real ISO date between 1900-01-01 and the local date of now.
func ParseDOB(text string, now time.Time) (string, error) {
	text = strings.TrimSpace(text)
	if !dateShape.MatchString(text) {
		return "", fail("dob", "DOB must be in YYYY-MM-DD format (e.g., 2000-01-31).")
	}
	dob, err := time.Parse(DateLayout, text)
	if err != nil {
		return "", fail("dob", "DOB must be in YYYY-MM-DD format (e.g., 2000-01-31).")
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if dob.After(today) {
		return "", fail("dob", "DOB cannot be in the future.")
	}
	if dob.Before(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		return "", fail("dob", "DOB must be 1900-01-01 or later.")
	}

	return dob.Format(DateLayout), nil
}

// ParseAppointmentDateTime requires "YYYY-MM-DD HH:MM" naming a real calendar
// date and time of day that is not before the current minute. The text is a
// wall-clock time with no zone: it is compared against now's wall clock and
// stored as typed, so daylight saving gaps never shift it. The result is
// canonical, so parsing it again yields the same string.
func ParseAppointmentDateTime(text string, now time.Time) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fail("appointment_datetime", "Enter appointment date and time.")
	}
	if !dateTimeShape.MatchString(text) {
		return "", fail("appointment_datetime", "Invalid date/time. Use YYYY-MM-DD HH:MM (e.g., 2026-01-10 14:30).")
	}
	dt, err := time.Parse(DateTimeLayout, text)
	if err != nil {
		return "", fail("appointment_datetime", "Invalid date/time. Use YYYY-MM-DD HH:MM (e.g., 2026-01-10 14:30).")
	}
	if dt.Before(wallClockMinute(now)) {
		return "", fail("appointment_datetime", "Appointment time cannot be in the past.")
	}
	return dt.Format(DateTimeLayout), nil
}

// wallClockMinute re-reads now's local date and time as UTC, truncated to
// the minute precision appointment times are entered with.
func wallClockMinute(now time.Time) time.Time {
	y, mo, d := now.Date()
	return time.Date(y, mo, d, now.Hour(), now.Minute(), 0, 0, time.UTC)
}

// ParseDateFilter validates an optional calendar date used to filter
// appointment lists. Blank input means no filter.
func ParseDateFilter(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if !dateShape.MatchString(text) {
		return "", fail("date", "Invalid date. Use YYYY-MM-DD (e.g., 2026-01-10).")
	}
	if _, err := time.Parse(DateLayout, text); err != nil {
		return "", fail("date", "Invalid date. Use YYYY-MM-DD (e.g., 2026-01-10).")
	}
	return text, nil
}

func Gender(raw string) (patient.Gender, error) {
	g := patient.Gender(strings.TrimSpace(raw))
	if !g.IsValid() {
		return "", fail("gender", "Gender must be one of M, F, O or N/A.")
	}
	return g, nil
}

// DoctorStatus defaults blank input to ACTIVE.
func DoctorStatus(raw string) (doctor.Status, error) {
	s := doctor.Status(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return doctor.StatusActive, nil
	}
	if !s.IsValid() {
		return "", fail("status", "Status must be ACTIVE or INACTIVE.")
	}
	return s, nil
}

func AppointmentStatus(raw string) (appointment.Status, error) {
	s := appointment.Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fail("status", "Status must be BOOKED, COMPLETED or CANCELLED.")
	}
	return s, nil
}

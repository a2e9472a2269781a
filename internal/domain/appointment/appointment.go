package appointment

import (
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
)

// Status has no enforced transition graph: any status may be set from any
// other, including BOOKED again after a cancellation.
type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PatientID int64 `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  int64 `gorm:"column:doctor_id;not null;index" json:"doctor_id"`

	// Datetime is stored as "YYYY-MM-DD HH:MM" so that lexical order is
	// chronological and the first ten characters are the calendar date.
	Datetime string  `gorm:"column:appointment_datetime;type:varchar(16);not null;index" json:"appointment_datetime"`
	Reason   *string `gorm:"column:reason;type:text" json:"reason"`
	Status   Status  `gorm:"column:status;type:varchar(10);not null;default:'BOOKED'" json:"status"`

	Patient *patient.Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor  *doctor.Doctor   `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}

// Date returns the calendar date part of the appointment datetime.
func (a *Appointment) Date() string {
	if len(a.Datetime) < 10 {
		return a.Datetime
	}
	return a.Datetime[:10]
}

type BookCommand struct {
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Datetime  string `json:"appointment_datetime"`
	Reason    string `json:"reason"`
}

// Listing is an appointment joined with the display names of its patient and doctor.
type Listing struct {
	ID          int64   `json:"id"`
	Datetime    string  `json:"appointment_datetime"`
	PatientID   int64   `json:"patient_id"`
	PatientName string  `json:"patient_name"`
	DoctorID    int64   `json:"doctor_id"`
	DoctorName  string  `json:"doctor_name"`
	Reason      *string `json:"reason"`
	Status      Status  `json:"status"`
}

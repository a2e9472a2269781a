package doctor

import "strings"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

type Doctor struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string  `gorm:"column:name;type:varchar(200);not null;index" json:"name"`
	Specialization string  `gorm:"column:specialization;type:varchar(200);not null" json:"specialization"`
	Phone          string  `gorm:"column:phone;type:varchar(10);not null" json:"phone"`
	Email          *string `gorm:"column:email;type:varchar(255)" json:"email"`
	Status         Status  `gorm:"column:status;type:varchar(10);not null;default:'ACTIVE';index" json:"status"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) IsActive() bool {
	return d.Status == StatusActive
}

// Label is how the doctor is shown in pickers.
func (d *Doctor) Label() string {
	return strings.TrimSpace(d.Name)
}

// Fields is raw collaborator input for create and update. Every field is
// validated and normalized before it reaches storage.
type Fields struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Status         string `json:"status"`
}

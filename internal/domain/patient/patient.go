package patient

import "strings"

type Gender string

const (
	GenderMale          Gender = "M"
	GenderFemale        Gender = "F"
	GenderOther         Gender = "O"
	GenderNotApplicable Gender = "N/A"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderNotApplicable:
		return true
	}
	return false
}

type Patient struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName  string  `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Gender    Gender  `gorm:"column:gender;type:varchar(3);not null" json:"gender"`
	DOB       string  `gorm:"column:dob;type:varchar(10);not null" json:"dob"` // YYYY-MM-DD
	Phone     string  `gorm:"column:phone;type:varchar(10);not null" json:"phone"`
	Email     *string `gorm:"column:email;type:varchar(255)" json:"email"`
	Address   *string `gorm:"column:address;type:text" json:"address"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Fields is raw collaborator input for create and update.
type Fields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

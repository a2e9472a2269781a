package doctor

import "github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"

var ErrDoctorNotFound = &domain.NotFoundError{Resource: "doctor"}

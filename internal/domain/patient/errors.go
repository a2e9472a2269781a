package patient

import "github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"

var ErrPatientNotFound = &domain.NotFoundError{Resource: "patient"}

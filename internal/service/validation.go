package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

func validationError(err error, message string) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func conflictError(message string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrConflict, message)
}

// failedOn reports whether validation failed on field with one of the given tags.
func failedOn(err error, field string, tags ...string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() != field {
			continue
		}
		for _, tag := range tags {
			if fe.Tag() == tag {
				return true
			}
		}
	}
	return false
}

// failedRequired reports whether any field is missing.
func failedRequired(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func inDomain(email, domain string) bool {
	return strings.HasSuffix(email, "@"+domain)
}

func domainMessage(domain string) string {
	return "Must use a @" + domain + " email address"
}

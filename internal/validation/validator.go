// Package validation holds request-boundary checks. The scoring engine
// assumes inputs in contract; everything rejected here never reaches it.
package validation

import (
	"fmt"
	"net/mail"

	"studytrack/internal/domain"
	"studytrack/internal/dto"
)

// ValidateSubmitAttempt checks a submitted quiz session before scoring.
// Negative or zero response times and inconsistent payloads are rejected at
// this boundary.
func ValidateSubmitAttempt(req *dto.SubmitAttemptRequest) error {
	var errs domain.ValidationErrors

	if req.SubjectID == "" {
		errs = append(errs, domain.NewMissingFieldError("subject_id"))
	}
	if req.TopicID == "" {
		errs = append(errs, domain.NewMissingFieldError("topic_id"))
	}
	if len(req.Responses) == 0 {
		errs = append(errs, domain.NewMissingFieldError("responses"))
	}

	for i, r := range req.Responses {
		if r.Question == "" {
			errs = append(errs, domain.NewMissingFieldError(fmt.Sprintf("responses[%d].question", i)))
		}
		if r.TimeTaken <= 0 {
			errs = append(errs, domain.NewOutOfRangeError(fmt.Sprintf("responses[%d].time_taken", i), "a positive number of seconds"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRegister checks a registration payload.
func ValidateRegister(req *dto.RegisterRequest) error {
	var errs domain.ValidationErrors

	if req.Email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, domain.NewInvalidFormatError("email", req.Email))
	}
	if req.Name == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	}
	if len(req.Password) < 8 {
		errs = append(errs, domain.NewOutOfRangeError("password", "at least 8 characters"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateLogin checks a login payload.
func ValidateLogin(req *dto.LoginRequest) error {
	var errs domain.ValidationErrors

	if req.Email == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

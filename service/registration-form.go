package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var validate = app_error.NewValidator()

// RegistrationForm is what the public registration dialog submits.
type RegistrationForm struct {
	Name            string                     `json:"name" validate:"required,max=200"`
	Institution     string                     `json:"institution" validate:"required,max=200"`
	Level           repository.EducationLevel  `json:"level" validate:"required,oneof=School College University"`
	Class           int                        `json:"class" validate:"required,gt=0"`
	IdAtInstitution string                     `json:"id_at_institution" validate:"required,max=100"`
	Email           string                     `json:"email" validate:"omitempty,email,max=254"`
	Phone           string                     `json:"phone" validate:"omitempty,max=32"`
	Note            string                     `json:"note" validate:"omitempty,max=2000"`
	TransactionId   string                     `json:"transaction_id" validate:"omitempty,max=100"`
	PaymentProvider repository.PaymentProvider `json:"payment_provider" validate:"omitempty,oneof=BKash"`
	Competitions    []uuid.UUID                `json:"competitions" validate:"required,min=1,dive,required"`
}

func (f *RegistrationForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Institution = strings.TrimSpace(f.Institution)
	f.Level = repository.EducationLevel(strings.TrimSpace(string(f.Level)))
	f.IdAtInstitution = strings.TrimSpace(f.IdAtInstitution)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Note = strings.TrimSpace(f.Note)
	f.TransactionId = strings.TrimSpace(f.TransactionId)
	f.PaymentProvider = repository.PaymentProvider(strings.TrimSpace(string(f.PaymentProvider)))
}

// validateForm checks everything that does not depend on the competition catalog.
func validateForm(form *RegistrationForm) *app_error.ValidationError {
	validationErr := app_error.NewValidationError()
	if err := validate.Struct(form); err != nil {
		validationErr = app_error.FromBindingError(err)
	}
	if min, max, ok := form.Level.ClassRange(); ok && form.Class > 0 && !form.Level.IsValidClass(form.Class) {
		validationErr.Add("class", fmt.Sprintf("must be between %d and %d for %s", min, max, form.Level))
	}
	return validationErr
}

// validatePayment enforces the payment fields once the total fee is known.
func validatePayment(form *RegistrationForm, paymentRequired bool, validationErr *app_error.ValidationError) {
	if !paymentRequired {
		return
	}
	if form.TransactionId == "" {
		validationErr.Add("transaction_id", "is required when the selected competitions have a fee")
	}
	if form.PaymentProvider == "" {
		validationErr.Add("payment_provider", "is required when the selected competitions have a fee")
	}
}

func (f *RegistrationForm) toParticipant(paymentRequired bool) *repository.Participant {
	participant := &repository.Participant{
		Name:            f.Name,
		Institution:     f.Institution,
		Class:           f.Class,
		IdAtInstitution: f.IdAtInstitution,
		Email:           optional(f.Email),
		Phone:           optional(f.Phone),
		Note:            optional(f.Note),
	}
	if paymentRequired {
		provider := f.PaymentProvider
		participant.TransactionId = optional(f.TransactionId)
		participant.PaymentProvider = &provider
	}
	return participant
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

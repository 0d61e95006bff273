// Package forms validates user submissions before anything is sent upstream.
// Validation failures stay local, the backend never sees an invalid form.
package forms

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/ocn-community/volunteer-portal/internal/apperr"
	"github.com/ocn-community/volunteer-portal/internal/dates"
)

var phoneDigits = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ApplicationForm is a volunteer application submission
type ApplicationForm struct {
	EventID                    string `json:"eventId" validate:"required"`
	FirstName                  string `json:"firstName" validate:"required"`
	LastName                   string `json:"lastName" validate:"required"`
	Email                      string `json:"email" validate:"required,email"`
	Address                    string `json:"address" validate:"required"`
	PhoneNumber                string `json:"phoneNumber" validate:"required,phonedigits"`
	SpokenLanguage             string `json:"spokenLanguage" validate:"required"`
	WrittenLanguage            string `json:"writtenLanguage" validate:"required"`
	VolunteerExperience        string `json:"volunteerExperience" validate:"required"`
	ReferralSource             string `json:"referralSource"`
	ReferralContactPhoneNumber string `json:"referralContactPhoneNumber" validate:"omitempty,phonedigits"`
	SkillsAndExpertise         string `json:"skillsAndExpertise"`
	MotivationToVolunteer      string `json:"motivationToVolunteer"`
}

// EntryForm is a working-hours submission or edit
type EntryForm struct {
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	Hours     float64 `json:"hours" validate:"omitempty,gt=0"`
	Status    string  `json:"status" validate:"omitempty,oneof=pending verified rejected"`
}

// EventForm is an event creation or edit
type EventForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ReleaseDate string `json:"releaseDate" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	Deadline    string `json:"deadline" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Status      string `json:"status" validate:"required,oneof=active paused closed"`
}

// PasswordForm sets the volunteer's password
type PasswordForm struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Validator wraps the shared validator instance
type Validator struct {
	validate *validator.Validate
}

// New creates the portal's form validator
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return phoneDigits.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate checks a form, returning a ValidationFailed error keyed by field
func (v *Validator) Validate(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Wrap(apperr.ValidationFailed, apperr.ValidationFailed.DefaultMessage(), err)
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperr.Validation(fields)
}

// ValidateEntry checks an entry form including the cross-field time rule
func (v *Validator) ValidateEntry(form EntryForm) error {
	if err := v.Validate(form); err != nil {
		return err
	}

	start := dates.ParseTimestamp(form.StartTime)
	end := dates.ParseTimestamp(form.EndTime)
	if start == 0 || end == 0 {
		return apperr.Validation(map[string]string{"StartTime": "times must be valid dates"})
	}
	if end <= start {
		return apperr.Validation(map[string]string{"EndTime": "end time must be after start time"})
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "phonedigits":
		return "must be a phone number of 7 to 15 digits"
	case "min":
		return "too short"
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return "not a valid choice"
	case "gt":
		return "must be greater than zero"
	case "url":
		return "must be a valid URL"
	default:
		return "invalid value"
	}
}

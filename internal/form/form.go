// Package form turns raw text from the window's input fields into values
// the storage layer accepts.
//
// Validation happens entirely on the UI goroutine, before any background
// work is dispatched: a *ValidationError means storage was never
// contacted.
package form

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-db-manager/internal/types"
)

// Input is the raw text of the four student fields.
type Input struct {
	FirstName string
	LastName  string
	Age       string
	Email     string
}

// ValidationError is a local, pre-flight failure.
//
// Status is the short line written to the status log; Message is the
// longer text shown in the dialog.
type ValidationError struct {
	Status  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// The validation failures the window can report.
var (
	ErrMissingFields = &ValidationError{
		Status:  "Error: Please fill all fields.",
		Message: "Please fill all fields.",
	}
	ErrInvalidAge = &ValidationError{
		Status:  "Error: Age must be a valid number (1-150).",
		Message: "Age must be a valid number between 1 and 150.",
	}
	ErrMissingID = &ValidationError{
		Status:  "Error: Please enter ID to search.",
		Message: "Please enter a student ID.",
	}
	ErrInvalidID = &ValidationError{
		Status:  "Error: ID must be a number.",
		Message: "Student ID must be a number.",
	}
)

// validate is safe for concurrent use and caches struct metadata, so a
// single instance serves every call.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseStudent trims every field and checks the add-student rules:
// all four fields are required, and age must be an integer in [1,150].
// Email format and name content are not checked.
func ParseStudent(in Input) (types.Student, error) {
	student := types.Student{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
	}
	ageText := strings.TrimSpace(in.Age)

	if ageText == "" {
		return types.Student{}, ErrMissingFields
	}

	age, err := strconv.Atoi(ageText)
	if err != nil {
		// Missing text fields outrank a bad age, the same precedence the
		// struct rules give below.
		if student.FirstName == "" || student.LastName == "" || student.Email == "" {
			return types.Student{}, ErrMissingFields
		}
		return types.Student{}, ErrInvalidAge
	}
	student.Age = age

	if err := validate.Struct(student); err != nil {
		return types.Student{}, translate(err)
	}

	return student, nil
}

// ParseID reads the search box: required, and must be an integer.
func ParseID(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrMissingID
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}

// translate maps validator field errors onto the window's messages.
// A "required" failure anywhere wins over an age range failure.
func translate(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	for _, e := range errs {
		// "required" tag: a text field was empty after trimming
		if e.ActualTag() == "required" {
			return ErrMissingFields
		}
	}

	// Only the Age field carries other rules (min / max).
	return ErrInvalidAge
}

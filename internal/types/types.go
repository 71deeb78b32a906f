// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: the
// form, storage, controller, and gui packages can all import types
// without depending on each other.
package types

// Student represents one row of the students table.
//
// ID is assigned by the database on insert; it is zero for a candidate
// that has not been stored yet and never changes afterwards.
//
// The validate:"..." tags are checked by go-playground/validator before a
// candidate is handed to storage. Email deliberately carries no format
// rule, and names are only required to be non-empty.
type Student struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Age       int    `json:"age"        validate:"min=1,max=150"`
	Email     string `json:"email"      validate:"required"`
}

// FullName joins the first and last name with a single space.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

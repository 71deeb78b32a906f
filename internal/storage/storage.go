// Package storage defines the Storage interface, the contract the
// presentation layer uses to reach the students table.
//
// The controller depends only on this interface, never on a concrete
// driver. The MySQL and SQLite backends both satisfy it through
// sqlstore.Store, and controller tests substitute an in-memory fake.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/student-db-manager/internal/types"
)

// ErrStudentNotFound is returned by GetStudentByID when no row has the
// requested id. It is a normal, empty result rather than a failure:
// callers check for it with errors.Is and show an empty table.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the record access contract.
type Storage interface {
	// AddStudent inserts a new student and returns the identifier the
	// database assigned to it. The candidate's ID field is ignored.
	AddStudent(ctx context.Context, student types.Student) (int64, error)

	// GetStudents returns every stored student in whatever order the
	// database produces them. Returns an empty slice (not nil) when the
	// table is empty.
	GetStudents(ctx context.Context) ([]types.Student, error)

	// GetStudentByID fetches a single student by primary key, or
	// ErrStudentNotFound.
	GetStudentByID(ctx context.Context, id int64) (types.Student, error)
}

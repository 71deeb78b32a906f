// Package sqlstore implements storage.Storage on top of database/sql.
//
// The three statements use only ? placeholders and plain column types,
// so the same code serves both the MySQL and SQLite drivers. The
// driver-specific packages (storage/mysql, storage/sqlite) only open the
// *sql.DB and hand it to New.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-db-manager/internal/storage"
	"github.com/aanand-mishra/student-db-manager/internal/types"
)

const (
	insertStudent = "INSERT INTO students (first_name, last_name, age, email) VALUES (?, ?, ?, ?)"

	// Explicit column list, never SELECT *: Scan depends on the order.
	// No ORDER BY: rows come back in whatever order the engine chooses.
	selectStudents    = "SELECT id, first_name, last_name, age, email FROM students"
	selectStudentByID = "SELECT id, first_name, last_name, age, email FROM students WHERE id = ?"
)

// Store is the database/sql implementation of storage.Storage.
// It holds a *sql.DB, which is a connection pool safe for concurrent use
// by any number of background tasks.
type Store struct {
	db *sql.DB
}

var _ storage.Storage = (*Store)(nil)

// New wraps an already opened pool. The Store takes ownership of db and
// closes it in Close.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// AddStudent inserts one row and returns the auto-generated primary key.
//
// The values travel separately from the SQL text (prepared statement with
// ? placeholders), so names like "O'Brien" need no escaping and can never
// be interpreted as SQL.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) AddStudent(ctx context.Context, student types.Student) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, insertStudent)
	if err != nil {
		return 0, fmt.Errorf("AddStudent: prepare: %w", err)
	}
	defer stmt.Close()

	// Argument order matches the column list: first_name, last_name, age, email.
	result, err := stmt.ExecContext(ctx,
		student.FirstName, student.LastName, student.Age, student.Email)
	if err != nil {
		return 0, fmt.Errorf("AddStudent: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("AddStudent: last insert id: %w", err)
	}

	return id, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudents returns a full snapshot of the table.
//
// The rows are read completely before returning; nothing is streamed to
// the caller. Always close rows so the connection goes back to the pool.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) GetStudents(ctx context.Context) ([]types.Student, error) {
	rows, err := s.db.QueryContext(ctx, selectStudents)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	// rows.Err() reports failures that happened while iterating, which
	// are separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// GetStudentByID fetches exactly one row matched by primary key.
// A missing row is reported as storage.ErrStudentNotFound.
func (s *Store) GetStudentByID(ctx context.Context, id int64) (types.Student, error) {
	var student types.Student

	err := scanStudent(s.db.QueryRowContext(ctx, selectStudentByID, id), &student)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("GetStudentByID %d: %w", id, storage.ErrStudentNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner, student *types.Student) error {
	return row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Age,
		&student.Email,
	)
}

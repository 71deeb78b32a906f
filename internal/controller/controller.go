// Package controller connects the window's four actions to the storage
// layer.
//
// THREADING MODEL:
// ────────────────
// Every exported method is called on the UI goroutine (from a button
// callback). Validation runs right there. If it passes, the storage call
// is handed to a dispatch.Dispatcher, which runs it on its own goroutine
// and posts the completion back to the UI goroutine. Every View method is
// therefore only ever called from the UI goroutine, and so is every read
// or write of the controller's own fields.
//
// Each click starts one independent task. Nothing is debounced or
// cancelled: two quick clicks on "View All Students" run two queries.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aanand-mishra/student-db-manager/internal/dispatch"
	"github.com/aanand-mishra/student-db-manager/internal/form"
	"github.com/aanand-mishra/student-db-manager/internal/logger"
	"github.com/aanand-mishra/student-db-manager/internal/storage"
	"github.com/aanand-mishra/student-db-manager/internal/types"
)

// MessageKind selects the dialog style.
type MessageKind int

const (
	Info MessageKind = iota
	Warning
	Error
)

// View is everything the controller needs from the window.
type View interface {
	// SetBusy shows (with message) or hides the busy indicator.
	SetBusy(busy bool, message string)
	// ShowStudents replaces the table rows and the record count.
	ShowStudents(students []types.Student)
	// AppendStatus adds one line to the status log.
	AppendStatus(line string)
	// ShowMessage pops up a dialog.
	ShowMessage(kind MessageKind, title, text string)
	// ClearInputs empties the four student fields and the search box.
	ClearInputs()
}

// Controller implements the Add, View All, Search and Clear actions.
type Controller struct {
	storage    storage.Storage
	view       View
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger

	// inflight counts dispatched tasks whose completion has not run yet.
	// Touched only on the UI goroutine.
	inflight int
}

// New wires a controller. view must be ready to receive calls.
func New(store storage.Storage, view View, dispatcher *dispatch.Dispatcher, log zerolog.Logger) *Controller {
	return &Controller{
		storage:    store,
		view:       view,
		dispatcher: dispatcher,
		log:        logger.Component(log, "controller"),
	}
}

// Busy reports whether any background task is still in flight.
func (c *Controller) Busy() bool {
	return c.inflight > 0
}

// ─────────────────────────────────────────────────────────────────────────────
// AddStudent validates the four fields and, if they pass, inserts the
// student in the background.
//
// On success the inputs are cleared. The table is NOT refreshed; the user
// clicks "View All Students" to see the new row.
// ─────────────────────────────────────────────────────────────────────────────
func (c *Controller) AddStudent(in form.Input) {
	candidate, err := form.ParseStudent(in)
	if err != nil {
		c.rejectInput(err)
		return
	}

	c.log.Debug().
		Str("first_name", candidate.FirstName).
		Str("last_name", candidate.LastName).
		Msg("adding student")

	c.begin("Adding student...")
	dispatch.Go(c.dispatcher,
		func(ctx context.Context) (int64, error) {
			return c.storage.AddStudent(ctx, candidate)
		},
		func(id int64, err error) {
			c.end()
			if err != nil {
				c.storageFailed("adding student", err)
				return
			}

			c.log.Info().Int64("id", id).Msg("student added")
			c.view.AppendStatus("Student added successfully: " + candidate.FullName())
			c.view.ClearInputs()
			c.view.ShowMessage(Info, "Success", "Student added successfully!")
		},
	)
}

// ViewAll loads every student into the table.
func (c *Controller) ViewAll() {
	c.log.Debug().Msg("loading students")

	c.begin("Loading students...")
	dispatch.Go(c.dispatcher, c.storage.GetStudents,
		func(students []types.Student, err error) {
			c.end()
			if err != nil {
				c.storageFailed("loading students", err)
				return
			}

			c.log.Info().Int("count", len(students)).Msg("students loaded")
			c.view.ShowStudents(students)
			c.view.AppendStatus(fmt.Sprintf("Loaded %d student(s).", len(students)))
		},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search looks one student up by the id typed in the search box.
//
// "Not found" is an empty result, not a failure: the table is emptied,
// the count drops to 0, and an informational dialog says so.
// ─────────────────────────────────────────────────────────────────────────────
func (c *Controller) Search(idText string) {
	id, err := form.ParseID(idText)
	if err != nil {
		c.rejectInput(err)
		return
	}

	c.log.Debug().Int64("id", id).Msg("searching student")

	type lookup struct {
		student types.Student
		found   bool
	}

	c.begin("Searching...")
	dispatch.Go(c.dispatcher,
		func(ctx context.Context) (lookup, error) {
			student, err := c.storage.GetStudentByID(ctx, id)
			if errors.Is(err, storage.ErrStudentNotFound) {
				return lookup{}, nil
			}
			if err != nil {
				return lookup{}, err
			}
			return lookup{student: student, found: true}, nil
		},
		func(res lookup, err error) {
			c.end()
			if err != nil {
				c.storageFailed("searching student", err)
				return
			}

			if !res.found {
				c.log.Info().Int64("id", id).Msg("student not found")
				c.view.ShowStudents(nil)
				c.view.AppendStatus(fmt.Sprintf("No student found with ID %d.", id))
				c.view.ShowMessage(Info, "Not Found", fmt.Sprintf("No student found with ID: %d", id))
				return
			}

			c.log.Info().Int64("id", id).Msg("student found")
			c.view.ShowStudents([]types.Student{res.student})
			c.view.AppendStatus(fmt.Sprintf("Student found with ID %d.", id))
		},
	)
}

// Clear empties every input field. It never touches storage.
func (c *Controller) Clear() {
	c.view.ClearInputs()
}

func (c *Controller) begin(message string) {
	c.inflight++
	c.view.SetBusy(true, message)
}

func (c *Controller) end() {
	c.inflight--
	if c.inflight == 0 {
		c.view.SetBusy(false, "")
	}
}

// rejectInput reports a validation failure. Storage is never contacted.
func (c *Controller) rejectInput(err error) {
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		verr = &form.ValidationError{Status: "Error: " + err.Error(), Message: err.Error()}
	}

	c.log.Debug().Str("reason", verr.Message).Msg("input rejected")
	c.view.AppendStatus(verr.Status)
	c.view.ShowMessage(Warning, "Input Error", verr.Message)
}

// storageFailed reports a database error for action. The process keeps
// running and the window is ready for another attempt.
func (c *Controller) storageFailed(action string, err error) {
	c.log.Error().Err(err).Str("action", action).Msg("storage operation failed")
	c.view.AppendStatus(fmt.Sprintf("Error %s: %s", action, err))
	c.view.ShowMessage(Error, "Database Error", fmt.Sprintf("Error %s: %s", action, err))
}

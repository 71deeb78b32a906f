// Package gui builds the Student Database Manager window.
//
// Window implements controller.View. Its methods mutate widgets directly
// and must be called on the Fyne UI goroutine; background work reaches
// them only through closures posted with fyne.Do.
package gui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/aanand-mishra/student-db-manager/internal/controller"
	"github.com/aanand-mishra/student-db-manager/internal/form"
	"github.com/aanand-mishra/student-db-manager/internal/gui/components"
	"github.com/aanand-mishra/student-db-manager/internal/logger"
	"github.com/aanand-mishra/student-db-manager/internal/types"
)

const (
	AppID    = "io.github.aanandmishra.studentdbmanager"
	AppTitle = "Student Database Manager"
	Banner   = "Student Database Management System"
)

var bannerColor = color.NRGBA{R: 63, G: 81, B: 181, A: 255}

// Actions are the user operations behind the buttons.
type Actions interface {
	AddStudent(in form.Input)
	ViewAll()
	Search(idText string)
	Clear()
}

// Window owns every widget of the main window.
type Window struct {
	window fyne.Window
	log    zerolog.Logger

	studentForm *components.StudentForm
	searchBar   *components.SearchBar
	records     *components.RecordsTable
	statusLog   *components.StatusLog
	busy        *components.BusyIndicator

	content fyne.CanvasObject
}

var _ controller.View = (*Window)(nil)

func New(window fyne.Window, log zerolog.Logger) *Window {
	w := &Window{
		window: window,
		log:    logger.Component(log, "gui"),
	}

	w.setupComponents()
	w.setupLayout()

	return w
}

func (w *Window) setupComponents() {
	w.studentForm = components.NewStudentForm()
	w.records = components.NewRecordsTable()
	w.searchBar = components.NewSearchBar(w.records.CountLabel)
	w.busy = components.NewBusyIndicator()
	w.statusLog = components.NewStatusLog(w.busy)
}

func (w *Window) setupLayout() {
	title := canvas.NewText(Banner, color.White)
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	banner := container.NewStack(
		canvas.NewRectangle(bannerColor),
		container.NewPadded(title),
	)

	top := container.NewVBox(
		banner,
		w.studentForm.GetContainer(),
		w.searchBar.GetContainer(),
	)

	w.content = container.NewPadded(container.NewBorder(
		top,
		w.statusLog.GetContainer(),
		nil, nil,
		w.records.GetContainer(),
	))
}

// Bind routes the buttons to actions.
func (w *Window) Bind(actions Actions) {
	w.studentForm.SetAddHandler(func(in form.Input) {
		w.log.Debug().Msg("add clicked")
		actions.AddStudent(in)
	})
	w.studentForm.SetClearHandler(actions.Clear)
	w.searchBar.SetSearchHandler(func(idText string) {
		w.log.Debug().Str("id", idText).Msg("search clicked")
		actions.Search(idText)
	})
	w.searchBar.SetViewAllHandler(func() {
		w.log.Debug().Msg("view all clicked")
		actions.ViewAll()
	})
}

// Content is the root canvas object for the window.
func (w *Window) Content() fyne.CanvasObject {
	return w.content
}

func (w *Window) GetWindow() fyne.Window {
	return w.window
}

// Show installs the content and shows the window.
func (w *Window) Show() {
	w.window.SetContent(w.content)
	w.window.Show()
}

// ─── controller.View ────────────────────────────────────────────────────────

func (w *Window) SetBusy(busy bool, message string) {
	if busy {
		w.busy.Show(message)
		return
	}
	w.busy.Hide()
}

func (w *Window) ShowStudents(students []types.Student) {
	w.records.SetStudents(students)
}

func (w *Window) AppendStatus(line string) {
	w.statusLog.Append(line)
}

func (w *Window) ShowMessage(kind controller.MessageKind, title, text string) {
	switch kind {
	case controller.Error:
		dialog.ShowError(errors.New(text), w.window)
	default:
		dialog.ShowInformation(title, text, w.window)
	}
}

func (w *Window) ClearInputs() {
	w.studentForm.Clear()
	w.searchBar.Clear()
}

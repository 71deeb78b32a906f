package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/aanand-mishra/student-db-manager/internal/form"
)

// StudentForm holds the four student fields and the Add / Clear buttons.
type StudentForm struct {
	container *fyne.Container

	FirstName   *widget.Entry
	LastName    *widget.Entry
	Age         *widget.Entry
	Email       *widget.Entry
	AddButton   *widget.Button
	ClearButton *widget.Button

	addHandler   func(form.Input)
	clearHandler func()
}

func NewStudentForm() *StudentForm {
	f := &StudentForm{}
	f.setupForm()
	return f
}

func (f *StudentForm) setupForm() {
	f.FirstName = newEntry("Enter student's first name")
	f.LastName = newEntry("Enter student's last name")
	f.Age = newEntry("Enter student's age (numeric)")
	f.Email = newEntry("Enter student's email address")

	f.AddButton = widget.NewButton("Add Student", f.onAdd)
	f.AddButton.Importance = widget.HighImportance
	f.ClearButton = widget.NewButton("Clear Fields", f.onClear)

	// Two label/entry pairs per row: First Name | Last Name, Age | Email
	fields := container.NewGridWithColumns(2,
		container.New(layout.NewFormLayout(),
			boldLabel("First Name:"), f.FirstName,
			boldLabel("Age:"), f.Age,
		),
		container.New(layout.NewFormLayout(),
			boldLabel("Last Name:"), f.LastName,
			boldLabel("Email:"), f.Email,
		),
	)

	buttons := container.NewCenter(container.NewHBox(f.AddButton, f.ClearButton))

	f.container = container.NewVBox(
		widget.NewCard("Student Information", "", fields),
		buttons,
	)
}

func (f *StudentForm) GetContainer() *fyne.Container {
	return f.container
}

// Input returns the raw field text, untrimmed.
func (f *StudentForm) Input() form.Input {
	return form.Input{
		FirstName: f.FirstName.Text,
		LastName:  f.LastName.Text,
		Age:       f.Age.Text,
		Email:     f.Email.Text,
	}
}

func (f *StudentForm) Clear() {
	f.FirstName.SetText("")
	f.LastName.SetText("")
	f.Age.SetText("")
	f.Email.SetText("")
}

func (f *StudentForm) SetAddHandler(handler func(form.Input)) {
	f.addHandler = handler
}

func (f *StudentForm) SetClearHandler(handler func()) {
	f.clearHandler = handler
}

func (f *StudentForm) onAdd() {
	if f.addHandler != nil {
		f.addHandler(f.Input())
	}
}

func (f *StudentForm) onClear() {
	if f.clearHandler != nil {
		f.clearHandler()
	}
}

func newEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

package components

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/aanand-mishra/student-db-manager/internal/types"
)

// RecordColumns are the table headers, in display order.
var RecordColumns = []string{"ID", "First Name", "Last Name", "Age", "Email"}

var recordColumnWidths = []float32{60, 180, 180, 60, 300}

// RecordsTable is the read-only student table plus its record count.
type RecordsTable struct {
	container *fyne.Container
	rows      []types.Student

	Table      *widget.Table
	CountLabel *widget.Label
}

func NewRecordsTable() *RecordsTable {
	r := &RecordsTable{}

	r.Table = widget.NewTable(
		func() (int, int) { return len(r.rows), len(RecordColumns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(r.Cell(id.Row, id.Col))
		},
	)
	r.Table.ShowHeaderRow = true
	r.Table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	r.Table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		cell.(*widget.Label).SetText(RecordColumns[id.Col])
	}
	// Cells are display only; drop any selection straight away.
	r.Table.OnSelected = func(id widget.TableCellID) {
		r.Table.Unselect(id)
	}
	for col, width := range recordColumnWidths {
		r.Table.SetColumnWidth(col, width)
	}

	r.CountLabel = boldLabel("")
	r.setCount()

	r.container = container.NewStack(widget.NewCard("Student Records", "", r.Table))
	return r
}

func (r *RecordsTable) GetContainer() *fyne.Container {
	return r.container
}

// SetStudents replaces every row and updates the count.
func (r *RecordsTable) SetStudents(students []types.Student) {
	r.rows = append(r.rows[:0:0], students...)
	r.setCount()
	r.Table.Refresh()
}

// Len is the number of rows displayed.
func (r *RecordsTable) Len() int {
	return len(r.rows)
}

// Cell returns the text displayed at row, col.
func (r *RecordsTable) Cell(row, col int) string {
	if row < 0 || row >= len(r.rows) {
		return ""
	}
	s := r.rows[row]
	switch col {
	case 0:
		return strconv.FormatInt(s.ID, 10)
	case 1:
		return s.FirstName
	case 2:
		return s.LastName
	case 3:
		return strconv.Itoa(s.Age)
	case 4:
		return s.Email
	}
	return ""
}

func (r *RecordsTable) setCount() {
	r.CountLabel.SetText(fmt.Sprintf("Total Records: %d", len(r.rows)))
}

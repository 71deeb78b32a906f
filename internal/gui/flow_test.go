package gui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-db-manager/internal/config"
	"github.com/aanand-mishra/student-db-manager/internal/controller"
	"github.com/aanand-mishra/student-db-manager/internal/dispatch"
	"github.com/aanand-mishra/student-db-manager/internal/storage/sqlite"
)

// TestWindow_AddViewSearch drives the real controller and a SQLite store
// through the buttons. The queue stands in for fyne.Do: completions run
// only when the test drains them.
func TestWindow_AddViewSearch(t *testing.T) {
	fw := test.NewTempApp(t).NewWindow(AppTitle)
	t.Cleanup(fw.Close)

	store, err := sqlite.New(config.Database{Path: filepath.Join(t.TempDir(), "students.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	queue := dispatch.NewQueue(8)
	w := New(fw, zerolog.Nop())
	w.Bind(controller.New(store, w, dispatch.New(context.Background(), queue.Post), zerolog.Nop()))
	w.Show()

	settle := func() {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.True(t, queue.Next(ctx), "background task never completed")
	}

	// Add
	w.studentForm.FirstName.SetText("Grace")
	w.studentForm.LastName.SetText("Hopper")
	w.studentForm.Age.SetText("85")
	w.studentForm.Email.SetText("grace@example.com")
	test.Tap(w.studentForm.AddButton)

	assert.True(t, w.busy.Visible())
	assert.Equal(t, "Adding student...", w.busy.Message.Text)
	settle()
	assert.False(t, w.busy.Visible())
	assert.Empty(t, w.studentForm.FirstName.Text, "inputs cleared after a successful add")

	// View all
	test.Tap(w.searchBar.ViewAllButton)
	settle()
	require.Equal(t, 1, w.records.Len())
	assert.Equal(t, "Grace", w.records.Cell(0, 1))
	assert.Equal(t, "Total Records: 1", w.records.CountLabel.Text)
	id := w.records.Cell(0, 0)

	// Search for the stored id
	w.searchBar.ID.SetText(id)
	test.Tap(w.searchBar.SearchButton)
	settle()
	assert.Equal(t, 1, w.records.Len())
	assert.Equal(t, "Total Records: 1", w.records.CountLabel.Text)

	// Search for an id that was never inserted
	w.searchBar.ID.SetText("9999")
	test.Tap(w.searchBar.SearchButton)
	settle()
	assert.Equal(t, 0, w.records.Len())
	assert.Equal(t, "Total Records: 0", w.records.CountLabel.Text)

	// A rejected add never dispatches
	w.studentForm.FirstName.SetText("Alan")
	w.studentForm.LastName.SetText("Turing")
	w.studentForm.Age.SetText("151")
	w.studentForm.Email.SetText("alan@example.com")
	test.Tap(w.studentForm.AddButton)
	assert.False(t, w.busy.Visible())
	assert.Equal(t, 0, queue.Len())

	lines := w.statusLog.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Student added successfully: Grace Hopper")
	assert.Contains(t, lines[1], "Loaded 1 student(s).")
	assert.Contains(t, lines[2], "Student found with ID "+id+".")
	assert.Contains(t, lines[3], "No student found with ID 9999.")
	assert.Contains(t, lines[4], "Error: Age must be a valid number (1-150).")
}

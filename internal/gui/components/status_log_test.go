package components

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLog_DropsOldestLines(t *testing.T) {
	test.NewTempApp(t)

	log := NewStatusLog(NewBusyIndicator())
	log.SetClock(func() time.Time { return time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC) })

	for i := 0; i < maxStatusLines+5; i++ {
		log.Append(fmt.Sprintf("line %d", i))
	}

	lines := log.Lines()
	require.Len(t, lines, maxStatusLines)
	assert.Equal(t, "[23:59:59] line 5", lines[0])
	assert.Equal(t, fmt.Sprintf("[23:59:59] line %d", maxStatusLines+4), lines[len(lines)-1])
}

func TestRecordsTable_CellOutOfRange(t *testing.T) {
	test.NewTempApp(t)

	r := NewRecordsTable()
	assert.Equal(t, "", r.Cell(0, 0))
	assert.Equal(t, "", r.Cell(-1, 2))
}

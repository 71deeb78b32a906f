package components

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// maxStatusLines bounds the log; the oldest lines are dropped first.
const maxStatusLines = 1000

// StatusLog is the scrolling, timestamped activity log under the table.
type StatusLog struct {
	container *fyne.Container
	lines     []string
	now       func() time.Time

	Text   *widget.Label
	Scroll *container.Scroll
}

func NewStatusLog(busy *BusyIndicator) *StatusLog {
	l := &StatusLog{now: time.Now}

	l.Text = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	l.Text.Wrapping = fyne.TextWrapWord
	l.Scroll = container.NewVScroll(l.Text)
	l.Scroll.SetMinSize(fyne.NewSize(0, 110))

	l.container = container.NewVBox(widget.NewCard("Status Log", "",
		container.NewBorder(nil, busy.GetContainer(), nil, nil, l.Scroll)))
	return l
}

func (l *StatusLog) GetContainer() *fyne.Container {
	return l.container
}

// Append adds "[HH:MM:SS] msg" and scrolls to it.
func (l *StatusLog) Append(msg string) {
	l.lines = append(l.lines, "["+l.now().Format(time.TimeOnly)+"] "+msg)
	if over := len(l.lines) - maxStatusLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}

	l.Text.SetText(strings.Join(l.lines, "\n"))
	l.Scroll.ScrollToBottom()
}

// Lines returns a copy of the log.
func (l *StatusLog) Lines() []string {
	return append([]string(nil), l.lines...)
}

// SetClock replaces the time source.
func (l *StatusLog) SetClock(now func() time.Time) {
	l.now = now
}

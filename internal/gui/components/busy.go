package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BusyIndicator is an infinite progress bar with a caption. Hidden while
// idle.
type BusyIndicator struct {
	container *fyne.Container

	Bar     *widget.ProgressBarInfinite
	Message *widget.Label
}

func NewBusyIndicator() *BusyIndicator {
	b := &BusyIndicator{
		Bar:     widget.NewProgressBarInfinite(),
		Message: widget.NewLabel(""),
	}
	b.container = container.NewBorder(nil, nil, b.Message, nil, b.Bar)
	b.container.Hide()
	return b
}

func (b *BusyIndicator) GetContainer() *fyne.Container {
	return b.container
}

func (b *BusyIndicator) Show(message string) {
	b.Message.SetText(message)
	b.container.Show()
	b.Bar.Start()
}

func (b *BusyIndicator) Hide() {
	b.Bar.Stop()
	b.Message.SetText("")
	b.container.Hide()
}

func (b *BusyIndicator) Visible() bool {
	return b.container.Visible()
}

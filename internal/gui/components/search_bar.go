package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the id search box, the Search and View All buttons,
// and the record count of whatever the table currently shows.
type SearchBar struct {
	container *fyne.Container

	ID            *widget.Entry
	SearchButton  *widget.Button
	ViewAllButton *widget.Button

	searchHandler  func(string)
	viewAllHandler func()
}

func NewSearchBar(recordCount *widget.Label) *SearchBar {
	s := &SearchBar{}

	s.ID = newEntry("Enter student ID to search")
	s.ID.OnSubmitted = func(string) { s.onSearch() }

	s.SearchButton = widget.NewButton("Search", s.onSearch)
	s.ViewAllButton = widget.NewButton("View All Students", s.onViewAll)

	row := container.NewBorder(nil, nil,
		boldLabel("Student ID:"),
		container.NewHBox(s.SearchButton, s.ViewAllButton, widget.NewSeparator(), recordCount),
		s.ID,
	)

	s.container = container.NewVBox(widget.NewCard("Search & View", "", row))
	return s
}

func (s *SearchBar) GetContainer() *fyne.Container {
	return s.container
}

func (s *SearchBar) Clear() {
	s.ID.SetText("")
}

func (s *SearchBar) SetSearchHandler(handler func(string)) {
	s.searchHandler = handler
}

func (s *SearchBar) SetViewAllHandler(handler func()) {
	s.viewAllHandler = handler
}

func (s *SearchBar) onSearch() {
	if s.searchHandler != nil {
		s.searchHandler(s.ID.Text)
	}
}

func (s *SearchBar) onViewAll() {
	if s.viewAllHandler != nil {
		s.viewAllHandler()
	}
}

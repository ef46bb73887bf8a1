package domain

import "fmt"

const (
	// OpenViewCommand is the host command that opens an annotation's view file.
	OpenViewCommand = "routelens.openView"

	routeIcon = "🌐"
	viewIcon  = "👁️"
)

// Annotation is the label attached to an action definition line.
type Annotation struct {
	// Line is the zero-based line of the action definition.
	Line  int    `json:"line"`
	Title string `json:"title"`
	// Command is empty unless a view file was found.
	Command  string `json:"command,omitempty"`
	ViewPath string `json:"viewPath,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
	Route    Route  `json:"route"`
}

// NewAnnotation builds the annotation for route on line.
// viewPath is empty when the action has no view.
func NewAnnotation(line int, route Route, viewPath string) Annotation {
	a := Annotation{
		Line:  line,
		Title: fmt.Sprintf("%s %s | %s | %s", routeIcon, route.URL, route.Pattern, route.Verb),
		Route: route,
	}
	if viewPath != "" {
		a.Title += " " + viewIcon
		a.Command = OpenViewCommand
		a.ViewPath = viewPath
		a.Tooltip = "navigate to view: " + route.Handler()
	}
	return a
}

// HasView reports whether the annotation navigates somewhere.
func (a Annotation) HasView() bool {
	return a.ViewPath != ""
}

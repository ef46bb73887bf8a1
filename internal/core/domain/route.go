// Package domain contains the core types of routelens: routes, documents and annotations.
package domain

import (
	"regexp"
	"strings"
)

// Route is one entry of the application's route table.
// Field names follow the dump column order; see ParseRoutes.
type Route struct {
	Verb       string `json:"verb"`
	URL        string `json:"url"`
	Pattern    string `json:"pattern"`
	Controller string `json:"controller"`
	Action     string `json:"action"`
}

var columnSeparator = regexp.MustCompile(`\s+`)

// ParseRoutes converts a whitespace-delimited route table into routes, in input order.
//
// A line with five columns is read as name, verb, url, pattern and controller#action,
// with the name dropped. A line with four columns has no verb: the first column is
// dropped and Verb is left empty. Any other line is skipped.
//
// Leading indentation counts as an empty first column, so an indented table keeps
// its column positions.
func ParseRoutes(raw string) []Route {
	var routes []Route
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}

		cols := columnSeparator.Split(line, -1)
		switch len(cols) {
		case 5:
			controller, action := splitHandler(cols[4])
			routes = append(routes, Route{
				Verb:       cols[1],
				URL:        cols[2],
				Pattern:    cols[3],
				Controller: controller,
				Action:     action,
			})
		case 4:
			controller, action := splitHandler(cols[3])
			routes = append(routes, Route{
				URL:        cols[1],
				Pattern:    cols[2],
				Controller: controller,
				Action:     action,
			})
		}
	}
	return routes
}

func splitHandler(token string) (controller, action string) {
	controller, action, _ = strings.Cut(token, "#")
	return controller, action
}

// FindRouteForAction returns the first route whose controller and action
// match the given ones, ignoring case.
func FindRouteForAction(routes []Route, controller, action string) (Route, bool) {
	for _, r := range routes {
		if strings.EqualFold(r.Controller, controller) && strings.EqualFold(r.Action, action) {
			return r, true
		}
	}
	return Route{}, false
}

// Handler returns the controller#action form of the route.
func (r Route) Handler() string {
	return r.Controller + "#" + r.Action
}

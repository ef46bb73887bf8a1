package domain

import "time"

// DefaultDebounceWindow is the default window for coalescing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Settings holds the workspace-level configuration of routelens.
type Settings struct {
	// DumpPath is the route dump location, relative to the workspace root.
	DumpPath string
	// RoutesCommand is the argv that prints the route table.
	RoutesCommand []string
	// RoutesFilter keeps only dump lines containing it. Empty keeps every line.
	RoutesFilter string
	// ViewsDir is the views directory, relative to the workspace root.
	ViewsDir string
	// ViewSuffixes lists view file suffixes in lookup order.
	ViewSuffixes []string
	// Debounce is the window used to coalesce file events in watch mode.
	Debounce time.Duration
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		DumpPath:      DefaultDumpPath(),
		RoutesCommand: []string{"rails", "routes"},
		RoutesFilter:  "/",
		ViewsDir:      DefaultViewsDir(),
		ViewSuffixes:  DefaultViewSuffixes(),
		Debounce:      DefaultDebounceWindow,
	}
}

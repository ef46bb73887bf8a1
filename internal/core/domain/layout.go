package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = ".routelens.yaml"

	// RoutesFileSuffix identifies the routing definition file.
	RoutesFileSuffix = "routes.rb"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDumpPath returns the route dump location relative to the workspace root.
func DefaultDumpPath() string {
	return filepath.Join("tmp", "routes_file.txt")
}

// DefaultViewsDir returns the views directory relative to the workspace root.
func DefaultViewsDir() string {
	return filepath.Join("app", "views")
}

// DefaultViewSuffixes returns the view file suffixes in lookup order.
func DefaultViewSuffixes() []string {
	return []string{".html.erb", ".json.jbuilder"}
}

// IsRoutesFile reports whether path is the routing definition file.
func IsRoutesFile(path string) bool {
	return strings.HasSuffix(path, RoutesFileSuffix)
}

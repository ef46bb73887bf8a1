package domain

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"unique"
)

// DocumentID identifies a document by its location.
// It wraps an interned file URI so comparisons and map lookups stay cheap
// for documents that are annotated repeatedly.
type DocumentID struct {
	h unique.Handle[string]
}

// NewDocumentID derives the identity of the document at path.
// The path is made absolute, cleaned and rendered as a file URI.
func NewDocumentID(path string) DocumentID {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Clean(path))}
	return DocumentID{h: unique.Make(u.String())}
}

// String returns the URI form of the identity.
func (id DocumentID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the identity was never set.
func (id DocumentID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DocumentID) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// Document is a source file handed to the resolver by the host.
type Document struct {
	ID        DocumentID
	Path      string
	Workspace string
	Text      string
}

// NewDocument builds a Document for the file at path inside workspace.
func NewDocument(workspace, path, text string) Document {
	return Document{
		ID:        NewDocumentID(path),
		Path:      path,
		Workspace: workspace,
		Text:      text,
	}
}

// ControllerFileSuffix is the file name suffix of controller sources.
const ControllerFileSuffix = "_controller.rb"

var (
	controllerPath   = regexp.MustCompile(`app/controllers/(.*?)_controller\.rb`)
	actionDefinition = regexp.MustCompile(`def\s+(\w+)`)
)

// IsControllerFile reports whether path follows the controller naming convention.
func IsControllerFile(path string) bool {
	return strings.HasSuffix(path, ControllerFileSuffix)
}

// ControllerName extracts the controller name, including any namespace
// (admin/users), from a controller file path.
func ControllerName(path string) (string, bool) {
	m := controllerPath.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ActionName returns the action defined on line, if the line holds a method definition.
func ActionName(line string) (string, bool) {
	m := actionDefinition.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

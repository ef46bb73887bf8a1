package domain

import "go.trai.ch/zerr"

var (
	// ErrNotControllerPath is returned when a controller name cannot be derived from a document path.
	// Callers filter documents by IsControllerFile first, so this indicates a programming error.
	ErrNotControllerPath = zerr.New("path does not name a controller file")

	// ErrRouteDumpMissing is returned when the route dump file does not exist.
	ErrRouteDumpMissing = zerr.New("route dump not found")

	// ErrRouteDumpReadFailed is returned when the route dump cannot be read.
	ErrRouteDumpReadFailed = zerr.New("failed to read route dump")

	// ErrRouteDumpWriteFailed is returned when the regenerated route dump cannot be written.
	ErrRouteDumpWriteFailed = zerr.New("failed to write route dump")

	// ErrRouteCommandFailed is returned when the routes command exits unsuccessfully.
	ErrRouteCommandFailed = zerr.New("routes command failed")

	// ErrViewLookupFailed is returned when checking for a view file fails for a reason other than absence.
	ErrViewLookupFailed = zerr.New("failed to look up view file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrDocumentReadFailed is returned when a document cannot be loaded from disk.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrFingerprintFailed is returned when a document fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint file")

	// ErrNoAnnotationOnLine is returned when no annotation exists on the requested line.
	ErrNoAnnotationOnLine = zerr.New("no annotation on line")

	// ErrInvalidLine is returned when a line argument is not a positive number.
	ErrInvalidLine = zerr.New("line must be a positive number")

	// ErrNoViewForAnnotation is returned when an annotation has no navigation target.
	ErrNoViewForAnnotation = zerr.New("annotation has no view to open")

	// ErrOpenViewFailed is returned when the navigator cannot open a view file.
	ErrOpenViewFailed = zerr.New("failed to open view")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start watcher")
)

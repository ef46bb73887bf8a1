package ports

// Fingerprinter computes content fingerprints used to skip redundant invalidations.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable digest of the file content at path.
	Fingerprint(path string) (string, error)
}

// ChangeDetector remembers file fingerprints to tell real edits from no-op writes.
type ChangeDetector interface {
	// Changed reports whether the content at path differs from the last
	// observed content, and records the new fingerprint. A path seen for the
	// first time counts as changed.
	Changed(path string) (bool, error)
	// Forget drops the recorded fingerprint of path.
	Forget(path string)
}

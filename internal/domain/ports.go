package domain

// EventParser decodes raw text into a Record. Implementations fail with a
// *ParseError for malformed or mis-shaped input and never partially decode.
type EventParser interface {
	Parse(raw []byte) (Record, error)
}

// RuleLoader loads the rule configuration for a scan. An empty path means
// "use the project default lookup".
type RuleLoader interface {
	Load(path string) (RuleConfig, error)
}

// ScanHistory records completed scans for a working directory.
type ScanHistory interface {
	Save(dir string, entry ScanEntry) error
	Load(dir string) ([]ScanEntry, error)
}

// GitInfo reports version-control metadata for a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

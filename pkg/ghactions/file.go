package ghactions

import (
	"os"
	"stalepr/pkg/serrors"
)

// OpenAppend opens the sink file at path for appending, creating it when the
// runner has not done so yet. Existing content is preserved.
func OpenAppend(path string) (*os.File, error) {
	if path == "" {
		return nil, serrors.With(serrors.ErrMissingSink, "sink path is empty")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644) //nolint: gosec
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not open sink %s", path)
	}

	return f, nil
}

// AppendFile is a sink file opened on first write. A run that never writes
// to it neither needs the path nor touches the file.
type AppendFile struct {
	// name is the environment variable the path came from, used in errors.
	name string
	path string
	f    *os.File
}

// NewAppendFile returns an AppendFile for path, read from variable name.
func NewAppendFile(name, path string) *AppendFile {
	return &AppendFile{name: name, path: path}
}

// Write appends p, opening the file first if needed.
func (a *AppendFile) Write(p []byte) (int, error) {
	if a.f == nil {
		if a.path == "" {
			return 0, serrors.With(serrors.ErrMissingSink, "%s is not set", a.name)
		}
		f, err := OpenAppend(a.path)
		if err != nil {
			return 0, err
		}
		a.f = f
	}

	return a.f.Write(p)
}

// Opened reports whether the file has been opened by a write.
func (a *AppendFile) Opened() bool { return a.f != nil }

// Close closes the file when it was opened.
func (a *AppendFile) Close() error {
	if a.f == nil {
		return nil
	}

	return a.f.Close()
}

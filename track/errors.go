package track

import "fmt"

// ParseError marks malformed GPX input. A load that fails to parse is
// aborted entirely; no partial document is returned.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse GPX: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError marks an unreadable track file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read track file '%s': %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

package source

import "fmt"

// UnsupportedFileError reports a playlist file whose extension is not a
// supported playlist format. It aborts resolution of the input list.
type UnsupportedFileError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unknown playlist type %q: %s", e.Ext, e.Path)
}

package ffmpeg

import "fmt"

// CommandError reports a missing or unusable encoder binary. It aborts a
// run before any planning or execution happens.
type CommandError struct {
	Binary  string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Binary, e.Message)
}

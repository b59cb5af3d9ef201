package plan

import (
	"fmt"
	"strings"
)

// Status is the processing outcome of a work unit. The planner assigns
// INIT through READY and the SKIPPED dispositions; the FAILED and
// COMPLETED values are assigned later by the executor.
type Status string

const (
	StatusInit                      Status = "INIT"
	StatusReady                     Status = "READY"
	StatusSkippedNameCollision      Status = "SKIPPED_NAME_COLLISION"
	StatusSkippedTargetPathExists   Status = "SKIPPED_TARGETPATH_EXISTS"
	StatusSkippedTargetPathNewer    Status = "SKIPPED_TARGETPATH_NEWER"
	StatusSkippedTargetEqualsSource Status = "SKIPPED_TARGETPATH_EQ_SOURCEPATH"
	StatusSkippedGenerateTargetPath Status = "SKIPPED_GENERATE_TARGETPATH"
	StatusFailedAborted             Status = "FAILED_ABORTED"
	StatusFailedFFmpeg              Status = "FAILED_FFMPEG"
	StatusFailedIO                  Status = "FAILED_IO"
	StatusCompleted                 Status = "COMPLETED"
)

// IsFailed reports whether the status is one of the failure outcomes.
func (s Status) IsFailed() bool {
	return strings.HasPrefix(string(s), "FAILED")
}

// IsSkipped reports whether the planner excluded the unit from execution.
func (s Status) IsSkipped() bool {
	return strings.HasPrefix(string(s), "SKIPPED")
}

// IsCompleted reports whether the unit finished successfully.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// OverwriteMode decides what happens when a target path already exists.
type OverwriteMode string

const (
	OverwriteNever   OverwriteMode = "never"
	OverwriteAlways  OverwriteMode = "always"
	OverwriteIfOlder OverwriteMode = "if-older"
)

// ParseOverwriteMode converts a configuration value into an OverwriteMode.
func ParseOverwriteMode(value string) (OverwriteMode, error) {
	switch OverwriteMode(strings.ToLower(strings.TrimSpace(value))) {
	case OverwriteNever:
		return OverwriteNever, nil
	case OverwriteAlways:
		return OverwriteAlways, nil
	case OverwriteIfOlder:
		return OverwriteIfOlder, nil
	}
	return "", fmt.Errorf("unsupported overwrite mode %q", value)
}

package ffmpeg

import (
	"context"
	"os/exec"
	"regexp"
)

// DefaultBinary is the encoder command resolved from PATH when the
// configuration does not name one.
const DefaultBinary = "ffmpeg"

var commandContext = exec.CommandContext

var versionPattern = regexp.MustCompile(`^ffmpeg version (\S+)`)

// CheckVersion verifies the encoder binary is present in PATH and returns
// the version it reports. Any failure comes back as a CommandError.
func CheckVersion(ctx context.Context, binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", &CommandError{Binary: binary, Message: "missing command in system PATH"}
	}

	output, err := commandContext(ctx, path, "-nostdin", "-version").Output()
	if err != nil {
		return "", &CommandError{Binary: path, Message: "version probe failed"}
	}

	match := versionPattern.FindSubmatch(output)
	if match == nil {
		return "", &CommandError{Binary: path, Message: "unable to determine version"}
	}
	return string(match[1]), nil
}

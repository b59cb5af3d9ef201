package preflight

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"

	"tonearm/internal/config"
	"tonearm/internal/ffmpeg"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check a transcoding run depends on: the encoder
// and probe binaries and write access to the destination root. A failed
// result means the run would be doomed, so callers should stop before
// planning.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckEncoder(ctx, "FFmpeg", cfg.Transcode.FFmpegBinary),
		CheckBinary("FFprobe", cfg.Transcode.FFprobeBinary),
		CheckDirectoryAccess("Destination directory", cfg.Paths.DestinationDir),
	}
}

// Failed returns the names of the checks that did not pass.
func Failed(results []Result) []string {
	var names []string
	for _, result := range results {
		if !result.Passed {
			names = append(names, result.Name)
		}
	}
	return names
}

// CheckEncoder verifies the encoder binary exists and reports a usable
// version string.
func CheckEncoder(ctx context.Context, name, binary string) Result {
	version, err := ffmpeg.CheckVersion(ctx, binary)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("version %s", version)}
}

// CheckBinary verifies a command is resolvable in PATH.
func CheckBinary(name, command string) Result {
	if command == "" {
		return Result{Name: name, Detail: "command not configured"}
	}
	if _, err := exec.LookPath(command); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", command)}
	}
	return Result{Name: name, Passed: true, Detail: command}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable. A missing destination is fine since the run creates
// it, so the check walks up to the nearest existing parent instead.
func CheckDirectoryAccess(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			parent := filepath.Dir(path)
			if parent != path {
				return CheckDirectoryAccess(name, parent)
			}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/gofrs/flock"

	"tonearm/internal/fileutil"
	"tonearm/internal/logging"
	"tonearm/internal/plan"
)

const lockFileName = ".tonearm.lock"

// Runner executes the READY units of a plan with bounded parallelism, one
// encoder process per unit. Units are independent and order-insensitive;
// each worker only ever touches its own unit.
type Runner struct {
	binary  string
	workers int
	logger  *slog.Logger
}

// NewRunner builds a runner. An empty binary falls back to DefaultBinary
// and workers below one falls back to the CPU count.
func NewRunner(binary string, workers int, logger *slog.Logger) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		binary:  binary,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "transcode"),
	}
}

// Run processes the plan's READY units in place and returns the updated
// plan. The destination root is locked for the duration so two runs cannot
// write into the same tree at once; the lock file is removed afterwards.
func (r *Runner) Run(ctx context.Context, destDir string, units []plan.WorkUnit) ([]plan.WorkUnit, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination root: %w", err)
	}

	lockPath := filepath.Join(destDir, lockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire destination lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("destination %q is locked by another run", destDir)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				units[i] = r.runUnit(ctx, units[i])
			}
		}()
	}

	for i := range units {
		if units[i].Status != plan.StatusReady {
			continue
		}
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return units, ctx.Err()
}

func (r *Runner) runUnit(ctx context.Context, unit plan.WorkUnit) plan.WorkUnit {
	if ctx.Err() != nil {
		unit.Status = plan.StatusFailedAborted
		return unit
	}

	if err := os.MkdirAll(filepath.Dir(unit.TargetPath), 0o755); err != nil {
		unit.Status = plan.StatusFailedIO
		r.logger.Error("could not create target directory",
			logging.String(logging.FieldTarget, unit.TargetPath), logging.Error(err))
		return unit
	}

	if r.shouldCopy(unit) {
		return r.copyUnit(unit)
	}
	return r.transcodeUnit(ctx, unit)
}

// shouldCopy reports whether the unit bypasses the encoder: either its
// spec is explicit copy mode, or the source is already in the target
// format and force-transcode is off.
func (r *Runner) shouldCopy(unit plan.WorkUnit) bool {
	spec := unit.Source.Spec
	if spec.Codec.IsCopy() {
		return true
	}
	if spec.ForceTranscode {
		return false
	}
	ext, ok := spec.Codec.Extension()
	return ok && ext == unit.Source.Filetype()
}

func (r *Runner) copyUnit(unit plan.WorkUnit) plan.WorkUnit {
	r.logger.Info("copying",
		logging.String(logging.FieldSource, unit.Source.Path),
		logging.String(logging.FieldTarget, unit.TargetPath))

	if err := fileutil.CopyFileVerified(unit.Source.Path, unit.TargetPath); err != nil {
		unit.Status = plan.StatusFailedIO
		r.logger.Error("copy failed",
			logging.String(logging.FieldSource, unit.Source.Path), logging.Error(err))
		return unit
	}
	unit.Status = plan.StatusCompleted
	return unit
}

func (r *Runner) transcodeUnit(ctx context.Context, unit plan.WorkUnit) plan.WorkUnit {
	args, err := BuildArgs(unit.Source.Path, unit.TargetPath, unit.Source.Spec)
	if err != nil {
		unit.Status = plan.StatusFailedFFmpeg
		r.logger.Error("could not build encoder arguments",
			logging.String(logging.FieldSource, unit.Source.Path), logging.Error(err))
		return unit
	}

	r.logger.Info("transcoding",
		logging.String(logging.FieldSource, unit.Source.Path),
		logging.String(logging.FieldTarget, unit.TargetPath),
		logging.String("codec", string(unit.Source.Spec.Codec)))

	cmd := commandContext(ctx, r.binary, args...) //nolint:gosec
	if err := cmd.Run(); err != nil {
		_ = os.Remove(unit.TargetPath)
		if ctx.Err() != nil {
			unit.Status = plan.StatusFailedAborted
		} else {
			unit.Status = plan.StatusFailedFFmpeg
			r.logger.Error("encoder failed",
				logging.String(logging.FieldSource, unit.Source.Path), logging.Error(err))
		}
		return unit
	}

	unit.Status = plan.StatusCompleted
	return unit
}

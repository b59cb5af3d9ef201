package plan

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tonearm/internal/logging"
	"tonearm/internal/naming"
	"tonearm/internal/source"
	"tonearm/internal/tags"
)

// WorkUnit pairs a source with its planned target path and status.
type WorkUnit struct {
	Source     source.AudioSource
	Status     Status
	TargetPath string
}

func (u WorkUnit) String() string {
	return fmt.Sprintf("WorkUnit{%s, status: %s, targetpath: %s}", u.Source.Describe(), u.Status, u.TargetPath)
}

// Planner turns a resolved source list into work units. Planning is
// strictly sequential so that repeated runs over unchanged input produce
// identical plans; the collision map is built along the way and must not
// be shared with concurrent work.
type Planner struct {
	destDir          string
	template         string
	playlistTemplate string
	overwrite        OverwriteMode
	tags             tags.Reader
	logger           *slog.Logger
}

// NewPlanner constructs a planner for one destination root.
func NewPlanner(destDir, template, playlistTemplate string, overwrite OverwriteMode, reader tags.Reader, logger *slog.Logger) *Planner {
	return &Planner{
		destDir:          destDir,
		template:         template,
		playlistTemplate: playlistTemplate,
		overwrite:        overwrite,
		tags:             reader,
		logger:           logging.NewComponentLogger(logger, "plan"),
	}
}

// Plan produces one work unit per source, in source order. Units that
// cannot execute get a terminal SKIPPED status and a warning log entry;
// the rest come out READY.
func (p *Planner) Plan(ctx context.Context, sources []source.AudioSource) []WorkUnit {
	units := make([]WorkUnit, 0, len(sources))
	claimed := make(map[string]source.AudioSource, len(sources))
	for _, src := range sources {
		units = append(units, p.planUnit(ctx, src, claimed))
	}
	return units
}

// planUnit decides one source's disposition. The checks run in a fixed
// precedence order: target generation, self-target, collision against
// earlier claims, then filesystem existence under the overwrite mode.
// Collision detection must come before the existence check so that two
// new sources competing for the same not-yet-existing target are flagged
// against each other.
func (p *Planner) planUnit(ctx context.Context, src source.AudioSource, claimed map[string]source.AudioSource) WorkUnit {
	unit := WorkUnit{Source: src, Status: StatusInit}

	tmpl := p.template
	if src.Playlist != nil {
		tmpl = p.playlistTemplate
	}

	target := naming.TargetPath(src, p.tags.Read(ctx, src.Path), tmpl, p.destDir, p.logger)
	if target == "" {
		unit.Status = StatusSkippedGenerateTargetPath
		p.logger.Warn("could not generate a target path, skipping",
			logging.String(logging.FieldSource, src.Path))
		return unit
	}
	unit.TargetPath = target

	if src.Path == target {
		unit.Status = StatusSkippedTargetEqualsSource
		p.logger.Warn("source has itself as target, skipping",
			logging.String(logging.FieldSource, src.Path))
		return unit
	}

	if claimant, ok := claimed[target]; ok {
		unit.Status = StatusSkippedNameCollision
		p.logger.Warn("naming collision, first source wins",
			logging.String("first", claimant.Describe()),
			logging.String("second", src.Describe()),
			logging.String(logging.FieldTarget, target))
		return unit
	}
	claimed[target] = src

	if info, err := os.Stat(target); err == nil {
		switch p.overwrite {
		case OverwriteNever:
			unit.Status = StatusSkippedTargetPathExists
			p.logger.Warn("target path already exists and overwrite is off, skipping",
				logging.String(logging.FieldSource, src.Path),
				logging.String(logging.FieldTarget, target))
			return unit
		case OverwriteIfOlder:
			srcInfo, err := os.Stat(src.Path)
			if err != nil || !info.ModTime().Before(srcInfo.ModTime()) {
				unit.Status = StatusSkippedTargetPathNewer
				p.logger.Warn("target path already exists and is newer, skipping",
					logging.String(logging.FieldSource, src.Path),
					logging.String(logging.FieldTarget, target))
				return unit
			}
		}
	}

	unit.Status = StatusReady
	return unit
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tonearm/internal/config"
	"tonearm/internal/ffmpeg"
	"tonearm/internal/logging"
	"tonearm/internal/plan"
	"tonearm/internal/preflight"
	"tonearm/internal/source"
	"tonearm/internal/tags"
)

type transcodeOptions struct {
	dest             string
	spec             source.TranscodeSpec
	copyExtensions   []string
	template         string
	playlistTemplate string
	overwrite        plan.OverwriteMode
	workers          int
	dryRun           bool
}

func newTranscodeCommand(ctx *commandContext) *cobra.Command {
	var (
		destFlag             string
		codecFlag            string
		qualityFlag          string
		bitrateFlag          string
		templateFlag         string
		playlistTemplateFlag string
		overwriteFlag        string
		copyExtFlag          []string
		workersFlag          int
		forceFlag            bool
		dryRunFlag           bool
	)

	cmd := &cobra.Command{
		Use:   "transcode [inputs...]",
		Short: "Transcode audio files, directories, and playlists",
		Long:  "Resolves the inputs into an ordered list of audio files, plans one target\npath per file from the naming templates, and runs the encoder on every unit\nthat survives planning.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			opts, err := mergeTranscodeOptions(cfg, cmd, transcodeFlags{
				dest:             destFlag,
				codec:            codecFlag,
				quality:          qualityFlag,
				bitrate:          bitrateFlag,
				template:         templateFlag,
				playlistTemplate: playlistTemplateFlag,
				overwrite:        overwriteFlag,
				copyExtensions:   copyExtFlag,
				workers:          workersFlag,
				force:            forceFlag,
				dryRun:           dryRunFlag,
			})
			if err != nil {
				return err
			}

			return runTranscode(cmd, ctx, cfg, args, opts)
		},
	}

	cmd.Flags().StringVarP(&destFlag, "dest", "d", "", "Destination directory for transcoded files")
	cmd.Flags().StringVar(&codecFlag, "codec", "", "Target codec (mp3, aac, fdkaac, vorbis, copy)")
	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", "", "Codec quality setting (VBR)")
	cmd.Flags().StringVarP(&bitrateFlag, "bitrate", "b", "", "Codec bitrate in kbit/s (CBR)")
	cmd.Flags().BoolVar(&forceFlag, "force-transcode", false, "Transcode even when the source is already in the target format")
	cmd.Flags().StringSliceVar(&copyExtFlag, "copy-ext", nil, "File extensions to copy instead of transcode")
	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Naming template for standalone files")
	cmd.Flags().StringVar(&playlistTemplateFlag, "playlist-template", "", "Naming template for playlist-sourced files")
	cmd.Flags().StringVarP(&overwriteFlag, "overwrite", "o", "", "Overwrite mode (never, always, if-older)")
	cmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "Parallel encoder processes (0 = CPU count)")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Plan and print work units without executing")

	return cmd
}

type transcodeFlags struct {
	dest             string
	codec            string
	quality          string
	bitrate          string
	template         string
	playlistTemplate string
	overwrite        string
	copyExtensions   []string
	workers          int
	force            bool
	dryRun           bool
}

// mergeTranscodeOptions layers command line flags over the configuration
// file values and validates the result.
func mergeTranscodeOptions(cfg *config.Config, cmd *cobra.Command, flags transcodeFlags) (transcodeOptions, error) {
	pick := func(flag, configured string) string {
		if strings.TrimSpace(flag) != "" {
			return strings.TrimSpace(flag)
		}
		return configured
	}

	dest := pick(flags.dest, cfg.Paths.DestinationDir)
	if dest == "" {
		return transcodeOptions{}, errors.New("no destination directory (set --dest or paths.destination_dir)")
	}
	dest, err := config.ExpandPath(dest)
	if err != nil {
		return transcodeOptions{}, err
	}

	codec, err := source.ParseCodec(pick(flags.codec, cfg.Transcode.Codec))
	if err != nil {
		return transcodeOptions{}, err
	}

	overwrite, err := plan.ParseOverwriteMode(pick(flags.overwrite, cfg.Transcode.Overwrite))
	if err != nil {
		return transcodeOptions{}, err
	}

	force := cfg.Transcode.ForceTranscode
	if cmd.Flags().Changed("force-transcode") {
		force = flags.force
	}

	copyExts := cfg.Transcode.CopyExtensions
	if cmd.Flags().Changed("copy-ext") {
		copyExts = flags.copyExtensions
	}
	for i := range copyExts {
		copyExts[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(copyExts[i]), "."))
	}

	workers := cfg.Transcode.Workers
	if cmd.Flags().Changed("workers") {
		workers = flags.workers
	}

	return transcodeOptions{
		dest: dest,
		spec: source.TranscodeSpec{
			Codec:          codec,
			ForceTranscode: force,
			Quality:        pick(flags.quality, cfg.Transcode.Quality),
			Bitrate:        pick(flags.bitrate, cfg.Transcode.Bitrate),
		},
		copyExtensions:   copyExts,
		template:         pick(flags.template, cfg.Naming.Template),
		playlistTemplate: pick(flags.playlistTemplate, cfg.Naming.PlaylistTemplate),
		overwrite:        overwrite,
		workers:          workers,
		dryRun:           flags.dryRun,
	}, nil
}

func runTranscode(cmd *cobra.Command, cmdCtx *commandContext, cfg *config.Config, inputs []string, opts transcodeOptions) error {
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if !opts.dryRun {
		results := preflight.RunAll(runCtx, cfg)
		printPreflight(out, results)
		if failed := preflight.Failed(results); len(failed) > 0 {
			return fmt.Errorf("preflight failed: %s", strings.Join(failed, ", "))
		}
	}

	sources, err := source.NewResolver(logger).Resolve(inputs, opts.spec, opts.copyExtensions)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.New("no audio files found in the given inputs")
	}
	logger.Info("resolved sources", logging.Int("count", len(sources)))

	reader := tags.NewFFprobeReader(cfg.Transcode.FFprobeBinary, logger)
	planner := plan.NewPlanner(opts.dest, opts.template, opts.playlistTemplate, opts.overwrite, reader, logger)
	units := planner.Plan(runCtx, sources)

	fmt.Fprintln(out, renderPlanTable(units))

	if opts.dryRun {
		fmt.Fprintln(out, summarizeUnits(units))
		return nil
	}

	runner := ffmpeg.NewRunner(cfg.Transcode.FFmpegBinary, opts.workers, logger)
	units, err = runner.Run(runCtx, opts.dest, units)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintln(out, summarizeUnits(units))

	if failed := countStatus(units, plan.Status.IsFailed); failed > 0 {
		return fmt.Errorf("%d work units failed", failed)
	}
	return nil
}

func printPreflight(out io.Writer, results []preflight.Result) {
	colorize := shouldColorize(out)
	for _, result := range results {
		label := "FAIL"
		color := ansiRed
		if result.Passed {
			label = "OK"
			color = ansiGreen
		}
		line := fmt.Sprintf("  %-24s [%s] %s", result.Name+":", label, result.Detail)
		if colorize {
			line = color + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}
}

func renderPlanTable(units []plan.WorkUnit) string {
	rows := make([][]string, 0, len(units))
	for _, unit := range units {
		rows = append(rows, []string{string(unit.Status), unit.Source.Describe(), unit.TargetPath})
	}
	return renderTable([]string{"Status", "Source", "Target"}, rows)
}

func summarizeUnits(units []plan.WorkUnit) string {
	ready := countStatus(units, func(s plan.Status) bool { return s == plan.StatusReady })
	completed := countStatus(units, plan.Status.IsCompleted)
	skipped := countStatus(units, plan.Status.IsSkipped)
	failed := countStatus(units, plan.Status.IsFailed)
	return fmt.Sprintf("%d units: %d ready, %d completed, %d skipped, %d failed",
		len(units), ready, completed, skipped, failed)
}

func countStatus(units []plan.WorkUnit, match func(plan.Status) bool) int {
	count := 0
	for _, unit := range units {
		if match(unit.Status) {
			count++
		}
	}
	return count
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tonearm/internal/playlist"
	"tonearm/internal/source"
)

func newPlaylistCommand(ctx *commandContext) *cobra.Command {
	playlistCmd := &cobra.Command{
		Use:   "playlist",
		Short: "Playlist utilities",
	}

	playlistCmd.AddCommand(newPlaylistWriteCommand(ctx))

	return playlistCmd
}

func newPlaylistWriteCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var forceUTF8 bool

	cmd := &cobra.Command{
		Use:   "write [inputs...]",
		Short: "Write a playlist of the audio files found in the inputs",
		Long:  "Resolves the inputs the same way transcoding does (files, directories, and\nexisting playlists, in deterministic order) and writes the result as an M3U\nor PLS playlist. The format follows the output file extension.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			output := strings.TrimSpace(outputFlag)
			if output == "" {
				return errors.New("no output playlist (set --output)")
			}

			sources, err := source.NewResolver(logger).Resolve(args, source.TranscodeSpec{Codec: source.CodecCopy}, nil)
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(sources))
			for _, src := range sources {
				paths = append(paths, src.Path)
			}
			if len(paths) == 0 {
				return errors.New("no audio files found in the given inputs")
			}

			switch {
			case source.IsPLSPlaylist(output):
				err = playlist.WritePLS(output, paths)
			case source.IsM3UPlaylist(output):
				utf8 := forceUTF8 || strings.HasSuffix(strings.ToLower(output), ".m3u8")
				err = playlist.WriteM3U(output, paths, utf8)
			default:
				return fmt.Errorf("unsupported playlist format %q (use .m3u, .m3u8, or .pls)", output)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(paths), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "O", "", "Playlist file to write")
	cmd.Flags().BoolVar(&forceUTF8, "force-utf8", false, "Write M3U playlists as UTF-8 instead of Latin-1")
	return cmd
}

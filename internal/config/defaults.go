package config

const (
	defaultDestinationDir = "~/transcoded"
	defaultCodec          = "mp3"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultOverwrite      = "never"
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"

	// Default templates for naming of transcoded files.
	defaultTemplate         = "<albumartist_or_artist>< - +album+>< disc +discnumber+>/<track+. ><title>"
	defaultPlaylistTemplate = "<playlist_name>/<playlist_filenumber>. <title> - <artist>"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DestinationDir: defaultDestinationDir,
		},
		Transcode: Transcode{
			Codec:         defaultCodec,
			Workers:       0, // 0 selects runtime.NumCPU at execution time
			Overwrite:     defaultOverwrite,
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Naming: Naming{
			Template:         defaultTemplate,
			PlaylistTemplate: defaultPlaylistTemplate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

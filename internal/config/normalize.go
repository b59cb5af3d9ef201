package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTranscode()
	c.normalizeNaming()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DestinationDir) == "" {
		c.Paths.DestinationDir = defaultDestinationDir
	}
	if c.Paths.DestinationDir, err = expandPath(c.Paths.DestinationDir); err != nil {
		return fmt.Errorf("paths.destination_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscode() {
	c.Transcode.Codec = strings.ToLower(strings.TrimSpace(c.Transcode.Codec))
	if c.Transcode.Codec == "" {
		c.Transcode.Codec = defaultCodec
	}
	c.Transcode.Overwrite = strings.ToLower(strings.TrimSpace(c.Transcode.Overwrite))
	if c.Transcode.Overwrite == "" {
		c.Transcode.Overwrite = defaultOverwrite
	}
	if strings.TrimSpace(c.Transcode.FFmpegBinary) == "" {
		c.Transcode.FFmpegBinary = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Transcode.FFprobeBinary) == "" {
		c.Transcode.FFprobeBinary = defaultFFprobeBinary
	}
	normalized := make([]string, 0, len(c.Transcode.CopyExtensions))
	for _, ext := range c.Transcode.CopyExtensions {
		ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if ext != "" {
			normalized = append(normalized, ext)
		}
	}
	c.Transcode.CopyExtensions = normalized
}

func (c *Config) normalizeNaming() {
	if strings.TrimSpace(c.Naming.Template) == "" {
		c.Naming.Template = defaultTemplate
	}
	if strings.TrimSpace(c.Naming.PlaylistTemplate) == "" {
		c.Naming.PlaylistTemplate = defaultPlaylistTemplate
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

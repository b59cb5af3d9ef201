package config

import (
	"errors"
	"fmt"
)

var validCodecs = map[string]struct{}{
	"mp3":    {},
	"aac":    {},
	"fdkaac": {},
	"vorbis": {},
	"copy":   {},
}

var validOverwrites = map[string]struct{}{
	"never":    {},
	"always":   {},
	"if-older": {},
}

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscode(); err != nil {
		return err
	}
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranscode() error {
	if _, ok := validCodecs[c.Transcode.Codec]; !ok {
		return fmt.Errorf("transcode.codec: unsupported codec %q (mp3, aac, fdkaac, vorbis, copy)", c.Transcode.Codec)
	}
	if _, ok := validOverwrites[c.Transcode.Overwrite]; !ok {
		return fmt.Errorf("transcode.overwrite: unsupported mode %q (never, always, if-older)", c.Transcode.Overwrite)
	}
	if c.Transcode.Workers < 0 {
		return errors.New("transcode.workers must be zero or positive")
	}
	return nil
}

func (c *Config) validateNaming() error {
	if c.Naming.Template == "" {
		return errors.New("naming.template must be set")
	}
	if c.Naming.PlaylistTemplate == "" {
		return errors.New("naming.playlist_template must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q (console, json)", c.Logging.Format)
	}
	return nil
}

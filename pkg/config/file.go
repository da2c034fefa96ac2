package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"stegano/pkg/cipher"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort = "8080"
)

// File holds the settings that can be supplied through --config. Command line flags take precedence over it.
type File struct {
	LogLevel       string       `yaml:"log_level"`
	Terminator     string       `yaml:"terminator"`
	IVMode         string       `yaml:"iv_mode"`
	PngCompression string       `yaml:"png_compression"`
	Server         ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

func Default() *File {
	return &File{
		LogLevel:       "info",
		Terminator:     string(DefaultTerminator),
		IVMode:         string(cipher.ZeroIV),
		PngCompression: "default",
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}

// LoadFile reads a YAML config file on top of the defaults. An empty path returns the defaults.
func LoadFile(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *File) Validate() error {
	var errs []error

	if _, err := f.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseTerminator(f.Terminator); err != nil {
		errs = append(errs, err)
	}
	if _, err := cipher.ParseIVMode(f.IVMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParsePngCompression(f.PngCompression); err != nil {
		errs = append(errs, err)
	}
	if f.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}

	return errors.Join(errs...)
}

func (f *File) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", f.LogLevel, err)
	}
	return level, nil
}

func (f *File) EncodeConfig() (ImageEncodeConfig, error) {
	terminator, err := ParseTerminator(f.Terminator)
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	ivMode, err := cipher.ParseIVMode(f.IVMode)
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	compression, err := ParsePngCompression(f.PngCompression)
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	return ImageEncodeConfig{
		Terminator:          terminator,
		IVMode:              ivMode,
		PngCompressionLevel: compression,
	}, nil
}

func (f *File) DecodeConfig() (ImageDecodeConfig, error) {
	terminator, err := ParseTerminator(f.Terminator)
	if err != nil {
		return ImageDecodeConfig{}, err
	}
	ivMode, err := cipher.ParseIVMode(f.IVMode)
	if err != nil {
		return ImageDecodeConfig{}, err
	}
	return ImageDecodeConfig{
		Terminator: terminator,
		IVMode:     ivMode,
	}, nil
}

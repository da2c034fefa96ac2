package config

import (
	"fmt"
	"image/png"
	"stegano/internal/bits"
	"stegano/pkg/cipher"
)

const (
	// DefaultTerminator marks the end of the hidden ciphertext
	DefaultTerminator = byte('~')
	// DefaultCiphertextAlignment is the granularity at which a terminator can end the ciphertext
	DefaultCiphertextAlignment = cipher.BlockSize
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ImageEncodeConfig struct {
	Terminator          byte
	IVMode              cipher.IVMode
	PngCompressionLevel png.CompressionLevel
	RandomSource        bits.RandomSource
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	if c.Terminator == 0 {
		c.Terminator = DefaultTerminator
	}
	if c.IVMode == "" {
		c.IVMode = cipher.ZeroIV
	}
	if c.RandomSource == nil {
		c.RandomSource = bits.NewRandomSource()
	}
}

type ImageDecodeConfig struct {
	Terminator byte
	IVMode     cipher.IVMode
	// CiphertextAlignment restricts where a terminator is accepted to message lengths that are a multiple of it.
	// 1 accepts a terminator anywhere.
	CiphertextAlignment int
}

func (c *ImageDecodeConfig) PopulateUnsetConfigVars() {
	if c.Terminator == 0 {
		c.Terminator = DefaultTerminator
	}
	if c.IVMode == "" {
		c.IVMode = cipher.ZeroIV
	}
	if c.CiphertextAlignment < 1 {
		c.CiphertextAlignment = DefaultCiphertextAlignment
	}
}

// ParsePngCompression maps default, none, fast and best to their png.CompressionLevel.
func ParsePngCompression(name string) (png.CompressionLevel, error) {
	if name == "" {
		return png.DefaultCompression, nil
	}
	level, found := pngCompressionMapping[name]
	if !found {
		return 0, fmt.Errorf("unknown png compression %q, options are default, none, fast, best", name)
	}
	return level, nil
}

// ParseTerminator accepts a single ASCII character.
func ParseTerminator(s string) (byte, error) {
	if len(s) != 1 || !bits.IsSingleByte(s) || s[0] == 0 {
		return 0, fmt.Errorf("terminator must be a single non-NUL ASCII character, got %q", s)
	}
	return s[0], nil
}

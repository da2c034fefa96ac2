package model

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	PayloadBits         int           `json:"payload_bits"`
	CapacityBits        int           `json:"capacity_bits"`
}

type DecodeStats struct {
	DataDecoding  time.Duration `json:"data_decoding"`
	DecodedBytes  int           `json:"decoded_bytes"`
	PixelsVisited int           `json:"pixels_visited"`
}

// Capacity describes how much an image can hide.
type Capacity struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	CapacityBits int `json:"capacity_bits"`
	// MaxMessageBytes is -1 when the image cannot even hide an empty message
	MaxMessageBytes int `json:"max_message_bytes"`
}

func (c Capacity) Human() string {
	if c.MaxMessageBytes < 0 {
		return fmt.Sprintf("%dx%d image holds %s bits, too small to hide any message", c.Width, c.Height, humanize.Comma(int64(c.CapacityBits)))
	}
	return fmt.Sprintf("%dx%d image holds %s bits, up to %s of message (%s characters)", c.Width, c.Height,
		humanize.Comma(int64(c.CapacityBits)), humanize.Bytes(uint64(c.MaxMessageBytes)), humanize.Comma(int64(c.MaxMessageBytes)))
}

type HumanizedEncodeStats struct {
	EncodeStats
	SetupHuman               string `json:"setup_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	PayloadHuman             string `json:"payload_human"`
	CapacityHuman            string `json:"capacity_human"`
}

type HumanizedDecodeStats struct {
	DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	DecodedHuman      string `json:"decoded_human"`
}

func (s EncodeStats) Humanize() HumanizedEncodeStats {
	return HumanizedEncodeStats{
		EncodeStats:              s,
		SetupHuman:               s.Setup.String(),
		DataEncodingHuman:        s.DataEncoding.String(),
		OutputImageEncodingHuman: s.OutputImageEncoding.String(),
		PayloadHuman:             humanize.Bytes(uint64(s.PayloadBits / 8)),
		CapacityHuman:            humanize.Bytes(uint64(s.CapacityBits / 8)),
	}
}

func (s DecodeStats) Humanize() HumanizedDecodeStats {
	return HumanizedDecodeStats{
		DecodeStats:       s,
		DataDecodingHuman: s.DataDecoding.String(),
		DecodedHuman:      humanize.Bytes(uint64(s.DecodedBytes)),
	}
}

package model

import (
	"strings"
	"testing"
	"time"
)

func TestCapacityHuman(t *testing.T) {
	testCases := []struct {
		capacity Capacity
		contains []string
	}{
		{Capacity{Width: 100, Height: 100, CapacityBits: 30000, MaxMessageBytes: 3727}, []string{"100x100", "30,000 bits", "3.7 kB", "3,727 characters"}},
		{Capacity{Width: 2, Height: 2, CapacityBits: 12, MaxMessageBytes: -1}, []string{"2x2", "12 bits", "too small"}},
	}
	for _, tc := range testCases {
		human := tc.capacity.Human()
		for _, expected := range tc.contains {
			if !strings.Contains(human, expected) {
				t.Errorf("Expected %q to contain %q", human, expected)
			}
		}
	}
}

func TestHumanizeStats(t *testing.T) {
	encodeStats := EncodeStats{Setup: 1500 * time.Millisecond, PayloadBits: 8 * 2048, CapacityBits: 30000}.Humanize()
	if encodeStats.SetupHuman != "1.5s" || encodeStats.PayloadHuman != "2.0 kB" || encodeStats.CapacityHuman != "3.8 kB" {
		t.Errorf("Unexpected humanized encode stats %+v", encodeStats)
	}

	decodeStats := DecodeStats{DataDecoding: 20 * time.Millisecond, DecodedBytes: 30}.Humanize()
	if decodeStats.DataDecodingHuman != "20ms" || decodeStats.DecodedHuman != "30 B" {
		t.Errorf("Unexpected humanized decode stats %+v", decodeStats)
	}
}

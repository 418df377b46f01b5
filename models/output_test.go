package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConcatOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input1   string
		input2   string
		expected string
	}{
		{"same directory", "video.mp4", "clip.mp4", "video_concat_clip.mp4"},
		{"different directories", filepath.Join("a", "video.mp4"), filepath.Join("b", "clip.mkv"), filepath.Join("a", "video_concat_clip.mp4")},
		{"extension case preserved", "VIDEO.MP4", "clip.mp4", "VIDEO_concat_clip.MP4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConcatOutputPath(tt.input1, tt.input2)
			if got != tt.expected {
				t.Errorf("ConcatOutputPath(%q, %q) = %s; want %s", tt.input1, tt.input2, got, tt.expected)
			}
		})
	}
}

func TestConvertOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   string
		expected string
	}{
		{"simple", "video.mp4", "avi", "video.avi"},
		{"with directory", filepath.Join("media", "video.mp4"), "mkv", filepath.Join("media", "video.mkv")},
		{"dotted format", "video.mp4", ".webm", "video.webm"},
		{"uppercase format", "video.mp4", "AVI", "video.avi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertOutputPath(tt.input, tt.format)
			if got != tt.expected {
				t.Errorf("ConvertOutputPath(%q, %q) = %s; want %s", tt.input, tt.format, got, tt.expected)
			}
		})
	}
}

func TestStripAudioOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "video.mp4", "video_silent.mp4"},
		{"with directory", filepath.Join("media", "video.mkv"), filepath.Join("media", "video_silent.mkv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripAudioOutputPath(tt.input)
			if got != tt.expected {
				t.Errorf("StripAudioOutputPath(%q) = %s; want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitOutputPaths(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedPart1 string
		expectedPart2 string
	}{
		{"audio", "song.mp3", "song_part1.mp3", "song_part2.mp3"},
		{"video with directory", filepath.Join("media", "video.mp4"), filepath.Join("media", "video_part1.mp4"), filepath.Join("media", "video_part2.mp4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part1, part2 := SplitOutputPaths(tt.input)
			if part1 != tt.expectedPart1 {
				t.Errorf("SplitOutputPaths(%q) part1 = %s; want %s", tt.input, part1, tt.expectedPart1)
			}
			if part2 != tt.expectedPart2 {
				t.Errorf("SplitOutputPaths(%q) part2 = %s; want %s", tt.input, part2, tt.expectedPart2)
			}
		})
	}
}

func TestNewOutputPlan(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "existing.mp4")
	if err := os.WriteFile(existing, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	missing := filepath.Join(tmpDir, "missing.mp4")

	plan := NewOutputPlan(existing, missing)

	if len(plan.Targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(plan.Targets))
	}
	if !plan.Targets[0].Existed {
		t.Errorf("Target %s should be marked as pre-existing", existing)
	}
	if plan.Targets[1].Existed {
		t.Errorf("Target %s should not be marked as pre-existing", missing)
	}
	if plan.Targets[0].Path != existing || plan.Targets[1].Path != missing {
		t.Error("Targets should preserve path order")
	}
}

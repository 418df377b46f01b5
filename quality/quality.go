// Package quality resolves the high/medium/low quality presets and the
// codec selections into concrete encoder parameters. The tables live in
// one embedded YAML document so every operation shares a single source
// of truth.
package quality

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// presets are the preset names, in the order user messages list them.
var presets = []string{"high", "medium", "low"}

// codecPair is one video/audio encoder pairing.
type codecPair struct {
	Video string `yaml:"video"`
	Audio string `yaml:"audio"`
}

// table is the full parameter table parsed from presets.yaml.
type table struct {
	VideoCRF     map[string]int       `yaml:"video_crf"`
	AudioBitrate map[string]string    `yaml:"audio_bitrate"`
	AudioCodecs  map[string]string    `yaml:"audio_codecs"`
	FormatCodecs map[string]codecPair `yaml:"format_codecs"`
}

// Validate checks that every preset is present in both preset maps and
// that CRF values stay in the x264 range.
func (t *table) Validate() error {
	var errors []string

	for _, p := range presets {
		crf, ok := t.VideoCRF[p]
		if !ok {
			errors = append(errors, fmt.Sprintf("video_crf is missing preset %q", p))
		} else if crf < 0 || crf > 51 {
			errors = append(errors, fmt.Sprintf("video_crf[%s] must be between 0 and 51", p))
		}
		if t.AudioBitrate[p] == "" {
			errors = append(errors, fmt.Sprintf("audio_bitrate is missing preset %q", p))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("preset table validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// Resolver answers preset and codec lookups from the embedded table.
type Resolver struct {
	table table
}

// NewResolver parses and validates the embedded preset table.
func NewResolver() (*Resolver, error) {
	var t table
	if err := yaml.Unmarshal(presetsYAML, &t); err != nil {
		return nil, fmt.Errorf("failed to parse preset table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{table: t}, nil
}

// VideoCRF returns the x264 CRF for a preset. Preset names are
// case-sensitive; anything but the exact names fails.
func (r *Resolver) VideoCRF(preset string) (int, error) {
	crf, ok := r.table.VideoCRF[preset]
	if !ok {
		return 0, invalidPresetError(preset)
	}
	return crf, nil
}

// AudioBitrate returns the audio bitrate (e.g. "128k") for a preset.
// Preset names are case-sensitive.
func (r *Resolver) AudioBitrate(preset string) (string, error) {
	bitrate, ok := r.table.AudioBitrate[preset]
	if !ok {
		return "", invalidPresetError(preset)
	}
	return bitrate, nil
}

// AudioCodec returns the audio encoder for an output extension. The
// extension may arrive with or without a leading dot and in any case;
// unknown extensions fall back to aac.
func (r *Resolver) AudioCodec(ext string) string {
	key := normalizeKey(ext)
	if codec, ok := r.table.AudioCodecs[key]; ok {
		return codec
	}
	return "aac"
}

// FormatCodecs returns the video/audio encoder pair for a container
// format. Unknown formats fall back to libx264/aac.
func (r *Resolver) FormatCodecs(format string) (video, audio string) {
	key := normalizeKey(format)
	if pair, ok := r.table.FormatCodecs[key]; ok {
		return pair.Video, pair.Audio
	}
	return "libx264", "aac"
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
}

func invalidPresetError(preset string) error {
	return fmt.Errorf("invalid quality preset: %q (use high, medium, or low)", preset)
}

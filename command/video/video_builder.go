// Package video builds FFmpeg commands for video encoding: container
// conversion, audio stripping, and trimmed part encodes.
package video

import (
	"fmt"
	"strings"

	"avtool/internal/timeutil"
)

// Builder assembles the argument list for one video encode.
//
// Defaults: libx264, no CRF flag (the encoder default applies), audio
// stream copied. Use the chained setters to adjust, then BuildArgs.
type Builder struct {
	inputPath  string
	outputPath string

	// Encoding settings
	codec      string
	audioCodec string
	crf        int
	preset     string

	// Audio track handling
	disableAudio bool

	// Time range (post-input seek for frame accuracy)
	trimStart float64
	trimEnd   float64
	trimmed   bool

	// Advanced options
	extraArgs []string
}

// NewBuilder creates a video encoding command builder.
func NewBuilder(inputPath, outputPath string) *Builder {
	return &Builder{
		inputPath:  inputPath,
		outputPath: outputPath,
		codec:      "libx264",
		crf:        -1,
		extraArgs:  []string{},
	}
}

// SetCodec sets the video codec (e.g., "libx264", "libvpx", "mpeg4").
func (b *Builder) SetCodec(codec string) *Builder {
	b.codec = codec
	return b
}

// SetAudioCodec re-encodes the audio track with the given codec instead
// of copying it.
func (b *Builder) SetAudioCodec(codec string) *Builder {
	b.audioCodec = codec
	return b
}

// SetCRF sets the Constant Rate Factor (0-51, lower is better quality).
// Out-of-range values leave the flag out.
func (b *Builder) SetCRF(crf int) *Builder {
	b.crf = crf
	return b
}

// SetPreset sets the encoder preset (ultrafast ... veryslow). Empty
// leaves the encoder default.
func (b *Builder) SetPreset(preset string) *Builder {
	b.preset = preset
	return b
}

// DisableAudio drops the audio track from the output entirely.
func (b *Builder) DisableAudio() *Builder {
	b.disableAudio = true
	return b
}

// SetTrim restricts the encode to [start, end) seconds of the input.
// The seek arguments go after -i so cuts are frame accurate.
func (b *Builder) SetTrim(start, end float64) *Builder {
	b.trimStart = start
	b.trimEnd = end
	b.trimmed = true
	return b
}

// AddExtraArgs adds custom ffmpeg arguments before the output path.
func (b *Builder) AddExtraArgs(args ...string) *Builder {
	b.extraArgs = append(b.extraArgs, args...)
	return b
}

// BuildArgs constructs the ffmpeg arguments for the encode.
func (b *Builder) BuildArgs() []string {
	args := []string{"-i", b.inputPath}

	if b.trimmed {
		args = append(args,
			"-ss", timeutil.FormatSeconds(b.trimStart),
			"-to", timeutil.FormatSeconds(b.trimEnd),
		)
	}

	args = append(args, "-c:v", b.codec)

	if b.crf >= 0 && b.crf <= 51 {
		args = append(args, "-crf", fmt.Sprintf("%d", b.crf))
	}

	if b.preset != "" {
		args = append(args, "-preset", b.preset)
	}

	switch {
	case b.disableAudio:
		args = append(args, "-an")
	case b.audioCodec != "":
		args = append(args, "-c:a", b.audioCodec)
	default:
		// Keep the audio stream untouched
		args = append(args, "-c:a", "copy")
	}

	args = append(args, b.extraArgs...)

	// Overwrite output
	args = append(args, "-y", b.outputPath)

	return args
}

// String returns the command that would be executed without running it.
func (b *Builder) String() string {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " ")
}

// InputPath returns the input file path.
func (b *Builder) InputPath() string {
	return b.inputPath
}

// OutputPath returns the output file path.
func (b *Builder) OutputPath() string {
	return b.outputPath
}

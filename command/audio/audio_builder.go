// Package audio builds FFmpeg commands for audio-only encoding: split
// part encodes and any other output without a video stream.
package audio

import (
	"strings"

	"avtool/internal/timeutil"
)

// Builder assembles the argument list for one audio encode.
//
// Defaults: aac at 128k. The output never carries a video stream; -vn
// also drops embedded cover art.
type Builder struct {
	inputPath  string
	outputPath string

	// Encoding settings
	codec   string
	bitrate string

	// Time range (post-input seek for sample accuracy)
	trimStart float64
	trimEnd   float64
	trimmed   bool

	// Advanced options
	extraArgs []string
}

// NewBuilder creates an audio encoding command builder.
func NewBuilder(inputPath, outputPath string) *Builder {
	return &Builder{
		inputPath:  inputPath,
		outputPath: outputPath,
		codec:      "aac",
		bitrate:    "128k",
		extraArgs:  []string{},
	}
}

// SetCodec sets the audio codec (e.g., "aac", "libmp3lame", "flac").
func (b *Builder) SetCodec(codec string) *Builder {
	b.codec = codec
	return b
}

// SetBitrate sets the audio bitrate (e.g., "192k", "128k"). Empty
// leaves the flag out, which some codecs (pcm, flac) require.
func (b *Builder) SetBitrate(bitrate string) *Builder {
	b.bitrate = bitrate
	return b
}

// SetTrim restricts the encode to [start, end) seconds of the input.
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

	// No video stream in the output
	args = append(args, "-vn", "-c:a", b.codec)

	if b.bitrate != "" {
		args = append(args, "-b:a", b.bitrate)
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

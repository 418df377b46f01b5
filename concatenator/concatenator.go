// Package concatenator builds FFmpeg concat-demuxer commands that join
// media files back to back in list order.
package concatenator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Builder assembles a concat command over an ordered list of inputs.
//
// The concat demuxer reads inputs from a list file rather than from -i
// flags, so CreateListFile must be called before BuildArgs. Without
// codecs set the streams are copied as-is, which only works when every
// input shares the same codecs; SetCodecs switches to a re-encode that
// tolerates mismatched inputs.
type Builder struct {
	inputPaths []string
	outputPath string
	videoCodec string
	audioCodec string
	crf        int
	listPath   string
}

// NewBuilder creates a concat command builder for the given inputs.
// Inputs are joined in the order given.
func NewBuilder(inputPaths []string, outputPath string) *Builder {
	return &Builder{
		inputPaths: inputPaths,
		outputPath: outputPath,
		crf:        -1,
	}
}

// SetCodecs switches from stream copy to a re-encode with the given
// video and audio codecs.
func (b *Builder) SetCodecs(videoCodec, audioCodec string) *Builder {
	b.videoCodec = videoCodec
	b.audioCodec = audioCodec
	return b
}

// SetCRF sets the Constant Rate Factor for re-encodes (0-51).
func (b *Builder) SetCRF(crf int) *Builder {
	b.crf = crf
	return b
}

// CreateListFile writes the demuxer list to a temporary file and
// returns its path. The caller is responsible for removing the file
// once the command has run.
//
// Format: file '/path/to/input.mp4'
//
//	file '/path/to/next.mp4'
func (b *Builder) CreateListFile() (string, error) {
	if len(b.inputPaths) == 0 {
		return "", fmt.Errorf("no input files to concatenate")
	}

	tmpFile, err := os.CreateTemp("", "concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmpFile.Close()

	for _, path := range b.inputPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			os.Remove(tmpFile.Name())
			return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}

		// Escape single quotes in path (replace ' with '\'' for the demuxer)
		escapedPath := strings.ReplaceAll(absPath, "'", "'\\''")

		line := fmt.Sprintf("file '%s'\n", escapedPath)
		if _, err := tmpFile.WriteString(line); err != nil {
			os.Remove(tmpFile.Name())
			return "", fmt.Errorf("failed to write to concat file: %w", err)
		}
	}

	b.listPath = tmpFile.Name()
	return b.listPath, nil
}

// ListPath returns the path of the list file created by CreateListFile,
// or an empty string if it has not been created yet.
func (b *Builder) ListPath() string {
	return b.listPath
}

// BuildArgs constructs the complete ffmpeg argument list.
func (b *Builder) BuildArgs() []string {
	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", b.listPath,
	}

	if b.videoCodec != "" {
		args = append(args, "-c:v", b.videoCodec)
		if b.crf >= 0 && b.crf <= 51 {
			args = append(args, "-crf", strconv.Itoa(b.crf))
		}
		if b.audioCodec != "" {
			args = append(args, "-c:a", b.audioCodec)
		}
	} else {
		args = append(args, "-c", "copy")
	}

	args = append(args, "-y", b.outputPath)
	return args
}

// String returns the full command for logging.
func (b *Builder) String() string {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " ")
}

// InputPath returns the first input file.
func (b *Builder) InputPath() string {
	if len(b.inputPaths) == 0 {
		return ""
	}
	return b.inputPaths[0]
}

// OutputPath returns the output file path.
func (b *Builder) OutputPath() string {
	return b.outputPath
}

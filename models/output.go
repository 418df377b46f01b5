package models

import (
	"os"
	"path/filepath"
	"strings"
)

// Output path derivation. Every derived path stays in the input's
// directory and keeps the input extension's original case; only the
// base name changes.

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ConcatOutputPath derives the output path for concatenating two
// videos: "<stem1>_concat_<stem2>" with the first input's extension,
// in the first input's directory.
//
// Example:
//
//	ConcatOutputPath("a/video.mp4", "b/clip.mkv") // "a/video_concat_clip.mp4"
func ConcatOutputPath(input1, input2 string) string {
	name := stem(input1) + "_concat_" + stem(input2) + filepath.Ext(input1)
	return filepath.Join(filepath.Dir(input1), name)
}

// ConvertOutputPath derives the output path for a container
// conversion: the input's stem with the target format as extension.
// The format may arrive with or without a leading dot and in any case.
//
// Example:
//
//	ConvertOutputPath("video.mp4", "avi") // "video.avi"
func ConvertOutputPath(input, format string) string {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	return filepath.Join(filepath.Dir(input), stem(input)+"."+f)
}

// StripAudioOutputPath derives the output path for removing a video's
// audio track: "<stem>_silent" with the input's extension.
//
// Example:
//
//	StripAudioOutputPath("video.mp4") // "video_silent.mp4"
func StripAudioOutputPath(input string) string {
	name := stem(input) + "_silent" + filepath.Ext(input)
	return filepath.Join(filepath.Dir(input), name)
}

// SplitOutputPaths derives the two output paths for a split:
// "<stem>_part1" and "<stem>_part2" with the input's extension.
//
// Example:
//
//	SplitOutputPaths("song.mp3") // "song_part1.mp3", "song_part2.mp3"
func SplitOutputPaths(input string) (string, string) {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	part1 := filepath.Join(dir, stem(input)+"_part1"+ext)
	part2 := filepath.Join(dir, stem(input)+"_part2"+ext)
	return part1, part2
}

// Target is one planned output file.
type Target struct {
	Path    string `json:"path"`
	Existed bool   `json:"existed"`
}

// OutputPlan records the output targets of an operation and whether
// each already existed when the plan was made. Existing targets get
// overwritten by the engine; callers warn about them up front.
type OutputPlan struct {
	Targets []Target `json:"targets"`
}

// NewOutputPlan stats each path and records its pre-existence.
func NewOutputPlan(paths ...string) OutputPlan {
	targets := make([]Target, 0, len(paths))
	for _, p := range paths {
		_, err := os.Stat(p)
		targets = append(targets, Target{Path: p, Existed: err == nil})
	}
	return OutputPlan{Targets: targets}
}

// Package media defines the supported media kinds, their extension
// allow-lists, and input path validation.
package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the media kind an operation works on.
type Kind int

const (
	Video Kind = iota
	Audio
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k == Audio {
		return "audio"
	}
	return "video"
}

// videoFormats and audioFormats are the canonical allow-lists. The
// extension sets below are derived from them so the user-facing format
// list and the membership checks can never drift apart.
var (
	videoFormats = []string{"mp4", "avi", "mov", "mkv", "flv", "wmv", "webm", "m4v"}
	audioFormats = []string{"m4a", "mp3", "wav", "aac", "flac", "ogg"}

	videoExtensions = extensionSet(videoFormats)
	audioExtensions = extensionSet(audioFormats)
)

func extensionSet(formats []string) map[string]struct{} {
	set := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		set["."+f] = struct{}{}
	}
	return set
}

// File is a validated input file.
type File struct {
	Path string
	Kind Kind
	Ext  string // lowercase, with leading dot
}

// ValidateFile checks that path names a readable, regular file whose
// extension matches the kind's allow-list. Checks run in a fixed order
// and the first failure is returned:
//
//  1. non-empty path
//  2. file exists
//  3. path is a regular file
//  4. file is readable
//  5. extension is allowed for the kind (case-insensitive)
func ValidateFile(path string, kind Kind) (File, error) {
	if strings.TrimSpace(path) == "" {
		return File{}, errors.New("input file path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, fmt.Errorf("input file does not exist: %s", path)
		}
		return File{}, fmt.Errorf("input file is not readable: %s", path)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("path is not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("input file is not readable: %s", path)
	}
	f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if kind == Audio {
		if _, ok := audioExtensions[ext]; !ok {
			return File{}, fmt.Errorf("file does not appear to be an audio file: %s", path)
		}
	} else {
		if _, ok := videoExtensions[ext]; !ok {
			return File{}, fmt.Errorf("file does not appear to be a video file: %s", path)
		}
	}

	return File{Path: path, Kind: kind, Ext: ext}, nil
}

// IsVideoExtension reports whether ext (with leading dot, any case) is
// a supported video container extension.
func IsVideoExtension(ext string) bool {
	_, ok := videoExtensions[strings.ToLower(ext)]
	return ok
}

// IsAudioExtension reports whether ext (with leading dot, any case) is
// a supported audio extension.
func IsAudioExtension(ext string) bool {
	_, ok := audioExtensions[strings.ToLower(ext)]
	return ok
}

// NormalizeFormat canonicalizes a target container format name: trims
// whitespace, strips one leading dot, and lowercases. The result must
// be a supported video format.
func NormalizeFormat(format string) (string, error) {
	f := strings.TrimSpace(format)
	f = strings.TrimPrefix(f, ".")
	if f == "" {
		return "", errors.New("output format is empty")
	}
	f = strings.ToLower(f)
	if _, ok := videoExtensions["."+f]; !ok {
		return "", fmt.Errorf("unsupported output format: %s (supported: %s)",
			f, strings.Join(videoFormats, ", "))
	}
	return f, nil
}

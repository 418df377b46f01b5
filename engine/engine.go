// Package engine defines the contract between the operation
// orchestrator and the media engine that does the real work. The
// ffmpeg package provides the production implementation; tests supply
// fakes.
package engine

import "context"

// EncodeOptions selects the encoder parameters for one output file.
//
// A non-empty VideoCodec selects the video encode path (CRF, optional
// audio track handling); an empty VideoCodec selects the audio-only
// path (codec plus bitrate).
type EncodeOptions struct {
	VideoCodec   string // "" for audio-only encodes
	AudioCodec   string
	CRF          int    // -1 leaves the CRF flag out
	AudioBitrate string // "" leaves the bitrate flag out
	DisableAudio bool   // drop the audio track entirely
}

// Progress is one progress update streamed during an encode.
type Progress struct {
	Seconds float64 // position within the output
	Total   float64 // expected output duration, 0 when unknown
	Speed   float64 // encode speed relative to realtime
	Bitrate string
}

// ProgressFunc receives progress updates. Implementations must be fast;
// they run on the engine's parsing goroutine.
type ProgressFunc func(Progress)

// Session is an open handle on one source file.
//
// Sessions returned by Trim are derived views over the same source;
// closing the original does not invalidate them. Close is idempotent;
// Trim and Encode fail on a closed session.
type Session interface {
	// Path returns the source file the session was opened on.
	Path() string

	// Duration reports the source duration in seconds. ok is false
	// when the engine cannot determine a positive duration.
	Duration() (seconds float64, ok bool)

	// HasAudioTrack reports whether the source carries at least one
	// audio stream.
	HasAudioTrack() bool

	// Trim derives a session restricted to [start, end) seconds of the
	// source. start must be non-negative and end greater than start.
	Trim(start, end float64) (Session, error)

	// Encode writes the session's content to outputPath with the given
	// options, overwriting any existing file.
	Encode(ctx context.Context, outputPath string, opts EncodeOptions) error

	// Close releases the session.
	Close() error
}

// Engine opens sessions and performs the multi-input operations that
// do not fit a single session.
type Engine interface {
	// Open probes path and returns a session on it. It fails when the
	// engine binaries are unavailable or the file cannot be probed.
	Open(ctx context.Context, path string) (Session, error)

	// Concat joins two sessions back to back into outputPath.
	Concat(ctx context.Context, first, second Session, outputPath string, opts EncodeOptions) error
}

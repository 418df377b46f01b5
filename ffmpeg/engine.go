// Package ffmpeg implements the engine contract by shelling out to the
// ffmpeg and ffprobe binaries.
package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"avtool/command"
	"avtool/command/audio"
	"avtool/command/video"
	"avtool/concatenator"
	"avtool/engine"
	"avtool/ffprobe"
)

// commandContext and lookPath allow tests to stub process execution
// and binary discovery.
var (
	commandContext = exec.CommandContext
	lookPath       = exec.LookPath
)

var (
	_ engine.Engine  = (*Engine)(nil)
	_ engine.Session = (*session)(nil)
)

// Engine runs media operations through the ffmpeg command line.
type Engine struct {
	binary   string
	verbose  io.Writer
	progress engine.ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithBinary overrides the ffmpeg binary name or path.
func WithBinary(binary string) Option {
	return func(e *Engine) {
		e.binary = binary
	}
}

// WithVerbose echoes each command line to w before running it.
func WithVerbose(w io.Writer) Option {
	return func(e *Engine) {
		e.verbose = w
	}
}

// WithProgress registers a callback for encode progress updates.
// When set, encodes run with -progress output instead of capturing
// stderr wholesale.
func WithProgress(fn engine.ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// New creates an Engine, verifying that ffmpeg and ffprobe are
// installed.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(eng)
	}

	if _, err := lookPath(eng.binary); err != nil {
		return nil, fmt.Errorf("ffmpeg not available: %w", err)
	}
	if _, err := lookPath("ffprobe"); err != nil {
		return nil, fmt.Errorf("ffprobe not available: %w", err)
	}

	return eng, nil
}

// Open probes path and returns a session over it.
func (e *Engine) Open(ctx context.Context, path string) (engine.Session, error) {
	info, err := ffprobe.Probe(ctx, path)
	if err != nil {
		return nil, err
	}
	return &session{eng: e, path: path, info: info}, nil
}

// Concat joins two sessions back to back into outputPath. With a video
// codec set in opts the inputs are re-encoded, which tolerates
// mismatched source codecs; without one the streams are copied.
func (e *Engine) Concat(ctx context.Context, first, second engine.Session, outputPath string, opts engine.EncodeOptions) error {
	builder := concatenator.NewBuilder([]string{first.Path(), second.Path()}, outputPath)
	if opts.VideoCodec != "" {
		builder.SetCodecs(opts.VideoCodec, opts.AudioCodec)
		if opts.CRF >= 0 {
			builder.SetCRF(opts.CRF)
		}
	}

	listPath, err := builder.CreateListFile()
	if err != nil {
		return err
	}
	defer os.Remove(listPath)

	var total float64
	if d1, ok := first.Duration(); ok {
		if d2, ok := second.Duration(); ok {
			total = d1 + d2
		}
	}

	if err := e.run(ctx, builder, total); err != nil {
		return err
	}
	return verifyOutput(outputPath)
}

// run executes cmd, streaming progress when a callback is registered.
func (e *Engine) run(ctx context.Context, cmd command.Command, total float64) error {
	args := cmd.BuildArgs()
	if e.progress != nil {
		args = append([]string{"-progress", "pipe:2", "-nostats"}, args...)
	}

	if e.verbose != nil {
		fmt.Fprintf(e.verbose, "%s %s\n", e.binary, strings.Join(args, " "))
	}

	proc := commandContext(ctx, e.binary, args...)

	if e.progress == nil {
		output, err := proc.CombinedOutput()
		if err != nil {
			return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, strings.TrimSpace(string(output)))
		}
		return nil
	}

	stderr, err := proc.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to attach to ffmpeg output: %w", err)
	}
	if err := proc.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	parser := NewProgressParser()
	tailCh := make(chan []string, 1)
	go func() {
		tail, _ := parser.StreamProgress(stderr, total, e.progress)
		tailCh <- tail
	}()

	// Drain stderr before reaping the process
	tail := <-tailCh
	if err := proc.Wait(); err != nil {
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, strings.Join(tail, "\n"))
	}

	if total > 0 {
		e.progress(engine.Progress{Seconds: total, Total: total})
	}
	return nil
}

// verifyOutput confirms the output file was actually written.
func verifyOutput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("output file not created: %w", err)
	}
	return nil
}

// session is a probed media file, optionally restricted to a time
// range by Trim.
type session struct {
	eng     *Engine
	path    string
	info    *ffprobe.ProbeResult
	start   float64
	end     float64
	trimmed bool
	closed  bool
}

// Path returns the source file path.
func (s *session) Path() string {
	return s.path
}

// Duration reports the container duration when the probe carried one.
func (s *session) Duration() (float64, bool) {
	d, err := s.info.GetDuration()
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// HasAudioTrack reports whether the probe found an audio stream.
func (s *session) HasAudioTrack() bool {
	return s.info.HasAudio()
}

// Trim returns a derived session restricted to [start, end) seconds.
// The receiver is left unchanged.
func (s *session) Trim(start, end float64) (engine.Session, error) {
	if s.closed {
		return nil, fmt.Errorf("session closed: %s", s.path)
	}
	if start < 0 || end <= start {
		return nil, fmt.Errorf("invalid trim range [%v, %v]", start, end)
	}

	derived := *s
	derived.start = start
	derived.end = end
	derived.trimmed = true
	return &derived, nil
}

// Encode renders the session to outputPath. A video codec in opts
// selects the video pipeline; otherwise the audio pipeline is used.
func (s *session) Encode(ctx context.Context, outputPath string, opts engine.EncodeOptions) error {
	if s.closed {
		return fmt.Errorf("session closed: %s", s.path)
	}

	var cmd command.Command
	if opts.VideoCodec != "" {
		builder := video.NewBuilder(s.path, outputPath).SetCodec(opts.VideoCodec)
		if opts.CRF >= 0 {
			builder.SetCRF(opts.CRF)
		}
		if opts.DisableAudio {
			builder.DisableAudio()
		} else if opts.AudioCodec != "" {
			builder.SetAudioCodec(opts.AudioCodec)
		}
		if s.trimmed {
			builder.SetTrim(s.start, s.end)
		}
		cmd = builder
	} else {
		builder := audio.NewBuilder(s.path, outputPath)
		if opts.AudioCodec != "" {
			builder.SetCodec(opts.AudioCodec)
		}
		builder.SetBitrate(opts.AudioBitrate)
		if s.trimmed {
			builder.SetTrim(s.start, s.end)
		}
		cmd = builder
	}

	if err := s.eng.run(ctx, cmd, s.encodeSpan()); err != nil {
		return err
	}
	return verifyOutput(outputPath)
}

// Close marks the session closed. Close is idempotent.
func (s *session) Close() error {
	s.closed = true
	return nil
}

// encodeSpan reports the expected output duration in seconds, or zero
// when the source duration is unknown.
func (s *session) encodeSpan() float64 {
	if s.trimmed {
		return s.end - s.start
	}
	if d, ok := s.Duration(); ok {
		return d
	}
	return 0
}

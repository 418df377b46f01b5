package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvert_Success(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30.53

	o, console := newTestOrchestrator(t, eng)
	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "mkv"})

	if !res.Success {
		t.Fatalf("Convert() failed: %s", res.Message)
	}

	if len(eng.encodes) != 1 {
		t.Fatalf("Got %d encodes; want 1", len(eng.encodes))
	}
	enc := eng.encodes[0]

	wantOutput := filepath.Join(tmpDir, "video.mkv")
	if enc.output != wantOutput {
		t.Errorf("Output = %s; want %s", enc.output, wantOutput)
	}
	if enc.opts.VideoCodec != "libx264" || enc.opts.AudioCodec != "aac" {
		t.Errorf("Codecs = %s/%s; want libx264/aac", enc.opts.VideoCodec, enc.opts.AudioCodec)
	}
	if enc.opts.CRF != -1 {
		t.Errorf("CRF = %d; want -1 (unset)", enc.opts.CRF)
	}
	if enc.trimmed {
		t.Error("Convert should not trim")
	}

	if !hasLine(console.infos, "Video duration: 30.53 seconds") {
		t.Errorf("Missing duration line: %v", console.infos)
	}
	if !hasLine(console.infos, "Converting to: mkv") {
		t.Errorf("Missing converting line: %v", console.infos)
	}
	if !hasLine(console.successes, "Successfully converted video") {
		t.Errorf("Missing success line: %v", console.successes)
	}
	eng.assertAllClosed(t)
}

func TestConvert_FormatCodecs(t *testing.T) {
	tests := []struct {
		format    string
		wantVideo string
		wantAudio string
	}{
		{"mp4", "libx264", "aac"},
		{"mov", "libx264", "aac"},
		{"webm", "libvpx", "libvorbis"},
		{"avi", "mpeg4", "libmp3lame"},
		{"mkv", "libx264", "aac"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			tmpDir := t.TempDir()
			input := writeMedia(t, tmpDir, "video.flv")

			eng := newFakeEngine()
			eng.durations[input] = 30

			o, _ := newTestOrchestrator(t, eng)
			res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: tt.format})
			if !res.Success {
				t.Fatalf("Convert() failed: %s", res.Message)
			}

			enc := eng.encodes[0]
			if enc.opts.VideoCodec != tt.wantVideo || enc.opts.AudioCodec != tt.wantAudio {
				t.Errorf("Codecs = %s/%s; want %s/%s", enc.opts.VideoCodec, enc.opts.AudioCodec, tt.wantVideo, tt.wantAudio)
			}
		})
	}
}

func TestConvert_UnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "gif"})
	if res.Success {
		t.Fatal("Convert() to gif should fail")
	}
	want := "unsupported output format: gif (supported: mp4, avi, mov, mkv, flv, wmv, webm, m4v)"
	if res.Message != want {
		t.Errorf("Message = %q; want %q", res.Message, want)
	}
	if eng.openCount() != 0 {
		t.Errorf("Opened %d sessions; want 0", eng.openCount())
	}
}

func TestConvert_OutputOverrideExtensionWins(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30

	o, console := newTestOrchestrator(t, eng)
	override := filepath.Join(tmpDir, "movie.webm")
	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "mp4", Output: override})

	if !res.Success {
		t.Fatalf("Convert() failed: %s", res.Message)
	}

	enc := eng.encodes[0]
	if enc.output != override {
		t.Errorf("Output = %s; want %s", enc.output, override)
	}
	if enc.opts.VideoCodec != "libvpx" || enc.opts.AudioCodec != "libvorbis" {
		t.Errorf("Codecs = %s/%s; want libvpx/libvorbis from override extension", enc.opts.VideoCodec, enc.opts.AudioCodec)
	}
	if !hasLine(console.infos, "Converting to: webm") {
		t.Errorf("Missing converting line: %v", console.infos)
	}
}

func TestConvert_OutputOverrideBadExtension(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.Convert(context.Background(), ConvertRequest{
		Input:  input,
		Format: "mkv",
		Output: filepath.Join(tmpDir, "movie.txt"),
	})
	if res.Success {
		t.Fatal("Convert() with .txt override should fail")
	}
	if !strings.HasPrefix(res.Message, "output filename: unsupported output format: txt") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestConvert_OutputOverrideNoExtension(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30

	o, _ := newTestOrchestrator(t, eng)
	override := filepath.Join(tmpDir, "renamed")
	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "webm", Output: override})

	if !res.Success {
		t.Fatalf("Convert() failed: %s", res.Message)
	}
	enc := eng.encodes[0]
	if enc.output != override {
		t.Errorf("Output = %s; want %s", enc.output, override)
	}
	if enc.opts.VideoCodec != "libvpx" {
		t.Errorf("VideoCodec = %s; want libvpx from -f format", enc.opts.VideoCodec)
	}
}

func TestConvert_SameFormatCollision(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	// mp4 -> mp4 derives the input path itself
	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "mp4"})
	if res.Success {
		t.Fatal("Convert() onto itself should fail")
	}
	if res.Message != "input and output files are the same: "+input {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestConvert_UnknownDuration(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "mkv"})
	if res.Success {
		t.Fatal("Convert() with unknown duration should fail")
	}
	if res.Message != "unable to determine video duration: "+input {
		t.Errorf("Message = %q", res.Message)
	}
	if len(eng.encodes) != 0 {
		t.Errorf("Got %d encodes; want 0", len(eng.encodes))
	}
	eng.assertAllClosed(t)
}

func TestConvert_EncodeFailure(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30
	eng.encodeErrs[filepath.Join(tmpDir, "video.mkv")] = errors.New("ffmpeg command failed: exit status 1 (output: )")

	o, _ := newTestOrchestrator(t, eng)
	res := o.Convert(context.Background(), ConvertRequest{Input: input, Format: "mkv"})

	if res.Success {
		t.Fatal("Convert() with encode failure should fail")
	}
	if !strings.HasPrefix(res.Message, "error converting video: ffmpeg command failed") {
		t.Errorf("Message = %q", res.Message)
	}
	eng.assertAllClosed(t)
}

func TestConvert_InputValidation(t *testing.T) {
	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.Convert(context.Background(), ConvertRequest{Input: "", Format: "mkv"})
	if res.Success {
		t.Fatal("Convert() with empty input should fail")
	}
	if res.Message != "input file path is empty" {
		t.Errorf("Message = %q", res.Message)
	}
}

package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripAudio_Success(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30
	eng.hasAudio[input] = true

	o, console := newTestOrchestrator(t, eng)
	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Quality: "medium"})

	if !res.Success {
		t.Fatalf("StripAudio() failed: %s", res.Message)
	}

	if len(eng.encodes) != 1 {
		t.Fatalf("Got %d encodes; want 1", len(eng.encodes))
	}
	enc := eng.encodes[0]

	wantOutput := filepath.Join(tmpDir, "video_silent.mp4")
	if enc.output != wantOutput {
		t.Errorf("Output = %s; want %s", enc.output, wantOutput)
	}
	if !enc.opts.DisableAudio {
		t.Error("DisableAudio not set")
	}
	if enc.opts.VideoCodec != "libx264" || enc.opts.CRF != 23 {
		t.Errorf("Opts = %+v; want libx264 CRF 23", enc.opts)
	}

	if !hasLine(console.infos, "Removing audio track...") {
		t.Errorf("Missing removing line: %v", console.infos)
	}
	if len(console.warnings) != 0 {
		t.Errorf("Warnings = %v; want none", console.warnings)
	}
	if !hasLine(console.successes, "Successfully removed audio from video") {
		t.Errorf("Missing success line: %v", console.successes)
	}
	eng.assertAllClosed(t)
}

func TestStripAudio_AlreadySilent(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30
	eng.hasAudio[input] = false

	o, console := newTestOrchestrator(t, eng)
	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Quality: "medium"})

	if !res.Success {
		t.Fatalf("StripAudio() failed: %s", res.Message)
	}
	if !hasLine(console.warnings, "Video has no audio track (already silent)") {
		t.Errorf("Warnings = %v; want silent warning", console.warnings)
	}
	if len(eng.encodes) != 1 {
		t.Errorf("Got %d encodes; want 1 (silent source still encodes)", len(eng.encodes))
	}
}

func TestStripAudio_OutputOverride(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30
	eng.hasAudio[input] = true

	o, _ := newTestOrchestrator(t, eng)
	override := filepath.Join(tmpDir, "silent.mkv")
	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Output: override, Quality: "medium"})

	if !res.Success {
		t.Fatalf("StripAudio() failed: %s", res.Message)
	}
	if eng.encodes[0].output != override {
		t.Errorf("Output = %s; want %s", eng.encodes[0].output, override)
	}
}

func TestStripAudio_BadOutputExtension(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.StripAudio(context.Background(), StripAudioRequest{
		Input:   input,
		Output:  filepath.Join(tmpDir, "silent.mp3"),
		Quality: "medium",
	})
	if res.Success {
		t.Fatal("StripAudio() with audio output extension should fail")
	}
	if res.Message != "unsupported output file extension: mp3" {
		t.Errorf("Message = %q", res.Message)
	}
	if eng.openCount() != 0 {
		t.Errorf("Opened %d sessions; want 0", eng.openCount())
	}
}

func TestStripAudio_InvalidQuality(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Quality: "ultra"})
	if res.Success {
		t.Fatal("StripAudio() with bad quality should fail")
	}
	if res.Message != `invalid quality preset: "ultra" (use high, medium, or low)` {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestStripAudio_SameAsInput(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Output: input, Quality: "medium"})
	if res.Success {
		t.Fatal("StripAudio() onto the input should fail")
	}
	if res.Message != "input and output files are the same: "+input {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestStripAudio_UnknownDuration(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	o, _ := newTestOrchestrator(t, eng)

	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Quality: "medium"})
	if res.Success {
		t.Fatal("StripAudio() with unknown duration should fail")
	}
	if res.Message != "unable to determine video duration: "+input {
		t.Errorf("Message = %q", res.Message)
	}
	eng.assertAllClosed(t)
}

func TestStripAudio_EncodeFailure(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeMedia(t, tmpDir, "video.mp4")

	eng := newFakeEngine()
	eng.durations[input] = 30
	eng.hasAudio[input] = true
	eng.encodeErrs[filepath.Join(tmpDir, "video_silent.mp4")] = errors.New("ffmpeg command failed: exit status 1 (output: )")

	o, _ := newTestOrchestrator(t, eng)
	res := o.StripAudio(context.Background(), StripAudioRequest{Input: input, Quality: "medium"})

	if res.Success {
		t.Fatal("StripAudio() with encode failure should fail")
	}
	if !strings.HasPrefix(res.Message, "error removing audio from video: ffmpeg command failed") {
		t.Errorf("Message = %q", res.Message)
	}
	eng.assertAllClosed(t)
}

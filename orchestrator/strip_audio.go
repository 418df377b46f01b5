package orchestrator

import (
	"context"
	"path/filepath"
	"strings"

	"avtool/engine"
	"avtool/media"
	"avtool/models"
)

// StripAudioRequest describes the removal of a video's audio track.
type StripAudioRequest struct {
	Input   string
	Output  string // "" derives <input stem>_silent<ext>
	Quality string
}

// StripAudio produces a silent copy of a video. A source that already
// has no audio track is reported with a warning and encoded anyway.
func (o *Orchestrator) StripAudio(ctx context.Context, req StripAudioRequest) models.OperationResult {
	if _, err := media.ValidateFile(req.Input, media.Video); err != nil {
		return models.Failed("%v", err)
	}

	crf, err := o.resolver.VideoCRF(req.Quality)
	if err != nil {
		return models.Failed("%v", err)
	}

	outputPath := req.Output
	if outputPath == "" {
		outputPath = models.StripAudioOutputPath(req.Input)
	} else if ext := filepath.Ext(outputPath); ext != "" && !media.IsVideoExtension(ext) {
		return models.Failed("unsupported output file extension: %s", strings.TrimPrefix(ext, "."))
	}

	if samePath(outputPath, req.Input) {
		return models.Failed("input and output files are the same: %s", outputPath)
	}
	o.warnExisting(outputPath)

	o.console.Infof("Loading video: %s", req.Input)
	session, err := o.engine.Open(ctx, req.Input)
	if err != nil {
		return models.Failed("error removing audio from video: %v", err)
	}
	defer session.Close()

	duration, ok := session.Duration()
	if !ok {
		return models.Failed("unable to determine video duration: %s", req.Input)
	}
	o.console.Infof("Video duration: %.2f seconds", duration)

	if session.HasAudioTrack() {
		o.console.Infof("Removing audio track...")
	} else {
		o.console.Warnf("Video has no audio track (already silent)")
	}
	o.console.Infof("Writing silent video: %s", outputPath)

	opts := engine.EncodeOptions{
		VideoCodec:   "libx264",
		CRF:          crf,
		DisableAudio: true,
	}
	if err := session.Encode(ctx, outputPath, opts); err != nil {
		return models.Failed("error removing audio from video: %v", err)
	}

	o.console.Successf("Successfully removed audio from video")
	o.console.Infof("  Output: %s", outputPath)
	return models.Succeeded()
}

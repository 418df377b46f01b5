package orchestrator

import (
	"context"
	"errors"
	"path/filepath"

	"avtool/engine"
	"avtool/internal/timeutil"
	"avtool/media"
	"avtool/models"
)

// SplitRequest describes cutting a source into two parts at a time
// boundary.
type SplitRequest struct {
	Input    string
	Duration string // boundary: seconds, MM:SS, or HH:MM:SS
	Output1  string // "" derives <input stem>_part1<ext>
	Output2  string // "" derives <input stem>_part2<ext>
	Quality  string
}

// SplitVideo cuts a video into two parts at the requested boundary.
func (o *Orchestrator) SplitVideo(ctx context.Context, req SplitRequest) models.OperationResult {
	return o.split(ctx, req, media.Video)
}

// SplitAudio cuts an audio file into two parts at the requested
// boundary.
func (o *Orchestrator) SplitAudio(ctx context.Context, req SplitRequest) models.OperationResult {
	return o.split(ctx, req, media.Audio)
}

// split is the shared state machine behind SplitVideo and SplitAudio.
// The source is probed once for its total duration, then each part is
// encoded from its own freshly-opened session.
func (o *Orchestrator) split(ctx context.Context, req SplitRequest, kind media.Kind) models.OperationResult {
	noun, label := "video", "Video"
	if kind == media.Audio {
		noun, label = "audio", "Audio"
	}

	if _, err := media.ValidateFile(req.Input, kind); err != nil {
		return models.Failed("%v", err)
	}

	boundary, ok := timeutil.ParseDuration(req.Duration)
	if !ok {
		return models.Failed("invalid duration format: %s (use seconds, MM:SS, or HH:MM:SS)", req.Duration)
	}
	if boundary.Seconds <= 0 {
		return models.Failed("duration must be positive, got: %s", req.Duration)
	}

	crf := -1
	bitrate := ""
	if kind == media.Video {
		var err error
		if crf, err = o.resolver.VideoCRF(req.Quality); err != nil {
			return models.Failed("%v", err)
		}
	} else {
		var err error
		if bitrate, err = o.resolver.AudioBitrate(req.Quality); err != nil {
			return models.Failed("%v", err)
		}
	}

	out1, out2 := models.SplitOutputPaths(req.Input)
	if req.Output1 != "" {
		out1 = req.Output1
	}
	if req.Output2 != "" {
		out2 = req.Output2
	}
	for _, outputPath := range []string{out1, out2} {
		if samePath(outputPath, req.Input) {
			return models.Failed("input and output files are the same: %s", outputPath)
		}
	}
	o.warnExisting(out1, out2)

	o.console.Infof("Loading %s: %s", noun, req.Input)
	probe, err := o.engine.Open(ctx, req.Input)
	if err != nil {
		return models.Failed("error splitting %s: %v", noun, err)
	}
	total, ok := probe.Duration()
	probe.Close()
	if !ok {
		return models.Failed("unable to determine %s duration: %s", noun, req.Input)
	}
	o.console.Infof("%s duration: %.2f seconds", label, total)

	plan, err := models.NewSplitPlan(boundary.Seconds, total)
	if err != nil {
		if errors.Is(err, models.ErrBoundaryExceedsTotal) {
			return models.Failed("split duration (%vs) exceeds %s length (%.2fs)", boundary.Seconds, noun, total)
		}
		return models.Failed("error splitting %s: %v", noun, err)
	}
	o.console.Infof("Splitting at: %.2f seconds", plan.Boundary)

	var opts engine.EncodeOptions
	if kind == media.Video {
		opts = engine.EncodeOptions{
			VideoCodec: "libx264",
			AudioCodec: "aac",
			CRF:        crf,
		}
	} else {
		// Both parts use the codec matching part 1's output extension
		opts = engine.EncodeOptions{
			AudioCodec:   o.resolver.AudioCodec(filepath.Ext(out1)),
			AudioBitrate: bitrate,
			CRF:          -1,
		}
	}

	outputs := [2]string{out1, out2}
	for i, rng := range plan.Parts {
		o.console.Infof("Creating part %d: %s", rng.Index, outputs[i])
		if err := o.encodePart(ctx, req.Input, outputs[i], rng, opts); err != nil {
			return models.Failed("failed to create part %d: %v", rng.Index, err)
		}
		o.console.Infof("Part %d complete", rng.Index)
	}

	o.console.Successf("Successfully split %s into two parts", noun)
	o.console.Infof("  Part 1: %s", out1)
	o.console.Infof("  Part 2: %s", out2)
	return models.Succeeded()
}

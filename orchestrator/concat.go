package orchestrator

import (
	"context"

	"avtool/engine"
	"avtool/media"
	"avtool/models"
)

// ConcatRequest describes a concatenation of two videos.
type ConcatRequest struct {
	Input1  string
	Input2  string
	Output  string // "" derives <input1>_concat_<input2 stem><ext1>
	Quality string
}

// Concat joins two videos back to back. The inputs are re-encoded to a
// common codec so mismatched sources still concatenate cleanly.
func (o *Orchestrator) Concat(ctx context.Context, req ConcatRequest) models.OperationResult {
	if _, err := media.ValidateFile(req.Input1, media.Video); err != nil {
		return models.Failed("first input: %v", err)
	}
	if _, err := media.ValidateFile(req.Input2, media.Video); err != nil {
		return models.Failed("second input: %v", err)
	}

	crf, err := o.resolver.VideoCRF(req.Quality)
	if err != nil {
		return models.Failed("%v", err)
	}

	outputPath := req.Output
	if outputPath == "" {
		outputPath = models.ConcatOutputPath(req.Input1, req.Input2)
	}
	if samePath(outputPath, req.Input1) || samePath(outputPath, req.Input2) {
		return models.Failed("input and output files are the same: %s", outputPath)
	}
	o.warnExisting(outputPath)

	o.console.Infof("Loading video 1: %s", req.Input1)
	first, err := o.engine.Open(ctx, req.Input1)
	if err != nil {
		return models.Failed("error concatenating videos: %v", err)
	}
	defer first.Close()

	d1, ok := first.Duration()
	if !ok {
		return models.Failed("unable to determine duration for video 1: %s", req.Input1)
	}
	o.console.Infof("Video 1 duration: %.2f seconds", d1)

	o.console.Infof("Loading video 2: %s", req.Input2)
	second, err := o.engine.Open(ctx, req.Input2)
	if err != nil {
		return models.Failed("error concatenating videos: %v", err)
	}
	defer second.Close()

	d2, ok := second.Duration()
	if !ok {
		return models.Failed("unable to determine duration for video 2: %s", req.Input2)
	}
	o.console.Infof("Video 2 duration: %.2f seconds", d2)

	o.console.Infof("Output video duration: %.2f seconds", d1+d2)
	o.console.Infof("Concatenating videos...")

	opts := engine.EncodeOptions{
		VideoCodec: "libx264",
		AudioCodec: "aac",
		CRF:        crf,
	}
	if err := o.engine.Concat(ctx, first, second, outputPath, opts); err != nil {
		return models.Failed("error concatenating videos: %v", err)
	}

	o.console.Successf("Successfully concatenated videos")
	o.console.Infof("  Output: %s", outputPath)
	return models.Succeeded()
}

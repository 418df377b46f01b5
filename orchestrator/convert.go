package orchestrator

import (
	"context"
	"path/filepath"
	"strings"

	"avtool/engine"
	"avtool/media"
	"avtool/models"
)

// ConvertRequest describes a container format conversion.
type ConvertRequest struct {
	Input  string
	Format string // target container format, e.g. "mkv"
	Output string // "" derives <input stem>.<format>
}

// Convert rewrites a video into another container format using that
// format's default codec pair. An output override with an extension
// takes precedence over Format for codec selection.
func (o *Orchestrator) Convert(ctx context.Context, req ConvertRequest) models.OperationResult {
	if _, err := media.ValidateFile(req.Input, media.Video); err != nil {
		return models.Failed("%v", err)
	}

	format, err := media.NormalizeFormat(req.Format)
	if err != nil {
		return models.Failed("%v", err)
	}

	outputPath := req.Output
	if outputPath == "" {
		outputPath = models.ConvertOutputPath(req.Input, format)
	} else if ext := strings.TrimPrefix(filepath.Ext(outputPath), "."); ext != "" {
		format, err = media.NormalizeFormat(ext)
		if err != nil {
			return models.Failed("output filename: %v", err)
		}
	}

	if samePath(outputPath, req.Input) {
		return models.Failed("input and output files are the same: %s", outputPath)
	}
	o.warnExisting(outputPath)

	o.console.Infof("Loading video: %s", req.Input)
	session, err := o.engine.Open(ctx, req.Input)
	if err != nil {
		return models.Failed("error converting video: %v", err)
	}
	defer session.Close()

	duration, ok := session.Duration()
	if !ok {
		return models.Failed("unable to determine video duration: %s", req.Input)
	}
	o.console.Infof("Video duration: %.2f seconds", duration)
	o.console.Infof("Converting to: %s", format)
	o.console.Infof("Writing output: %s", outputPath)

	videoCodec, audioCodec := o.resolver.FormatCodecs(format)
	opts := engine.EncodeOptions{
		VideoCodec: videoCodec,
		AudioCodec: audioCodec,
		CRF:        -1,
	}
	if err := session.Encode(ctx, outputPath, opts); err != nil {
		return models.Failed("error converting video: %v", err)
	}

	o.console.Successf("Successfully converted video")
	o.console.Infof("  Output: %s", outputPath)
	return models.Succeeded()
}

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"avtool/models"
	"avtool/orchestrator"
)

// splitRun is the shared wiring for split-video and split-audio: the
// same flags, the same output-override rules, a different operation.
type splitRun func(ctx context.Context, orch *orchestrator.Orchestrator, req orchestrator.SplitRequest) models.OperationResult

func newSplitCommand(use, short string, verbose *bool, run splitRun) *cobra.Command {
	var durationFlag string
	var outputFlags []string
	var qualityFlag string

	cmd := &cobra.Command{
		Use:   use + " <input>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(outputFlags) > 2 {
				return errors.New("at most two -o/--output values are allowed (part 1 and part 2)")
			}

			orch, err := newOrchestrator(*verbose)
			if err != nil {
				return err
			}

			req := orchestrator.SplitRequest{
				Input:    args[0],
				Duration: durationFlag,
				Quality:  qualityFlag,
			}
			if len(outputFlags) > 0 {
				req.Output1 = outputFlags[0]
			}
			if len(outputFlags) > 1 {
				req.Output2 = outputFlags[1]
			}

			return resultErr(cmd.Context(), run(cmd.Context(), orch, req))
		},
	}

	cmd.Flags().StringVarP(&durationFlag, "duration", "d", "", "Boundary for the cut: seconds, MM:SS, or HH:MM:SS")
	cmd.Flags().StringArrayVarP(&outputFlags, "output", "o", nil, "Output path override, once for part 1 and optionally again for part 2")
	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", "medium", "Encode quality preset: high, medium, or low")
	cmd.MarkFlagRequired("duration")

	return cmd
}

func newSplitVideoCommand(verbose *bool) *cobra.Command {
	return newSplitCommand("split-video", "Split a video into two parts at a time boundary", verbose,
		func(ctx context.Context, orch *orchestrator.Orchestrator, req orchestrator.SplitRequest) models.OperationResult {
			return orch.SplitVideo(ctx, req)
		})
}

func newSplitAudioCommand(verbose *bool) *cobra.Command {
	return newSplitCommand("split-audio", "Split an audio file into two parts at a time boundary", verbose,
		func(ctx context.Context, orch *orchestrator.Orchestrator, req orchestrator.SplitRequest) models.OperationResult {
			return orch.SplitAudio(ctx, req)
		})
}

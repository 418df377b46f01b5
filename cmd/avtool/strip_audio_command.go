package main

import (
	"github.com/spf13/cobra"

	"avtool/orchestrator"
)

func newStripAudioCommand(verbose *bool) *cobra.Command {
	var outputFlag string
	var qualityFlag string

	cmd := &cobra.Command{
		Use:   "strip-audio <input>",
		Short: "Produce a silent copy of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(*verbose)
			if err != nil {
				return err
			}

			res := orch.StripAudio(cmd.Context(), orchestrator.StripAudioRequest{
				Input:   args[0],
				Output:  outputFlag,
				Quality: qualityFlag,
			})
			return resultErr(cmd.Context(), res)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: <input stem>_silent)")
	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", "medium", "Encode quality preset: high, medium, or low")

	return cmd
}

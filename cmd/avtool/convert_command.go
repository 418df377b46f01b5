package main

import (
	"github.com/spf13/cobra"

	"avtool/orchestrator"
)

func newConvertCommand(verbose *bool) *cobra.Command {
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a video to another container format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(*verbose)
			if err != nil {
				return err
			}

			res := orch.Convert(cmd.Context(), orchestrator.ConvertRequest{
				Input:  args[0],
				Format: formatFlag,
				Output: outputFlag,
			})
			return resultErr(cmd.Context(), res)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "mp4", "Target container format")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: <input stem>.<format>)")

	return cmd
}

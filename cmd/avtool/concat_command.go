package main

import (
	"github.com/spf13/cobra"

	"avtool/orchestrator"
)

func newConcatCommand(verbose *bool) *cobra.Command {
	var outputFlag string
	var qualityFlag string

	cmd := &cobra.Command{
		Use:   "concat <first> <second>",
		Short: "Concatenate two videos into one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(*verbose)
			if err != nil {
				return err
			}

			res := orch.Concat(cmd.Context(), orchestrator.ConcatRequest{
				Input1:  args[0],
				Input2:  args[1],
				Output:  outputFlag,
				Quality: qualityFlag,
			})
			return resultErr(cmd.Context(), res)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: <first>_concat_<second stem>)")
	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", "medium", "Encode quality preset: high, medium, or low")

	return cmd
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"avtool/ffmpeg"
	"avtool/models"
	"avtool/orchestrator"
	"avtool/quality"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "avtool",
		Short: "Audio/video container toolkit",
		Long: "avtool concatenates, converts, silences, and splits audio/video\n" +
			"container files by driving ffmpeg.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo each ffmpeg command line to stderr")

	rootCmd.AddCommand(newConcatCommand(&verbose))
	rootCmd.AddCommand(newConvertCommand(&verbose))
	rootCmd.AddCommand(newStripAudioCommand(&verbose))
	rootCmd.AddCommand(newSplitVideoCommand(&verbose))
	rootCmd.AddCommand(newSplitAudioCommand(&verbose))
	rootCmd.AddCommand(newProbeCommand())

	return rootCmd
}

// newOrchestrator wires the engine, preset table, and console for one
// command run.
func newOrchestrator(verbose bool) (*orchestrator.Orchestrator, error) {
	var opts []ffmpeg.Option
	if verbose {
		opts = append(opts, ffmpeg.WithVerbose(os.Stderr))
	}
	if renderer := newProgressRenderer(os.Stdout); renderer != nil {
		opts = append(opts, ffmpeg.WithProgress(renderer.update))
	}

	eng, err := ffmpeg.New(opts...)
	if err != nil {
		return nil, err
	}

	resolver, err := quality.NewResolver()
	if err != nil {
		return nil, err
	}

	return orchestrator.New(eng, resolver, newConsole(os.Stdout)), nil
}

// resultErr converts a failed result into the command error. Failures
// caused by an interrupt surface as the context error so main can exit
// with the interrupt code.
func resultErr(ctx context.Context, res models.OperationResult) error {
	if res.Success {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New(res.Message)
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"avtool/ffprobe"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Show container and stream details for a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			info, err := os.Stat(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("input file does not exist: %s", path)
				}
				return fmt.Errorf("input file is not readable: %s", path)
			}
			if !info.Mode().IsRegular() {
				return fmt.Errorf("path is not a file: %s", path)
			}

			result, err := ffprobe.Probe(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderFormatTable(result))
			if len(result.Streams) > 0 {
				fmt.Fprintln(out, renderStreamTable(result.Streams))
			}
			return nil
		},
	}
}

func renderFormatTable(result *ffprobe.ProbeResult) string {
	duration := "unknown"
	if d, err := result.GetDuration(); err == nil {
		duration = fmt.Sprintf("%.2fs", d)
	}

	row := []string{
		result.Format.FormatName,
		duration,
		formatSize(result.Format.Size),
		formatBitrate(result.Format.BitRate),
	}
	return renderTable(
		[]string{"Container", "Duration", "Size", "Bitrate"},
		[][]string{row},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}

func renderStreamTable(streams []ffprobe.Stream) string {
	rows := make([][]string, 0, len(streams))
	for _, s := range streams {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.CodecType,
			s.CodecName,
			streamDetails(s),
		})
	}
	return renderTable(
		[]string{"#", "Type", "Codec", "Details"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

// streamDetails summarizes the stream geometry: WxH for video, sample
// rate and channel count for audio.
func streamDetails(s ffprobe.Stream) string {
	switch s.CodecType {
	case "video":
		if s.Width > 0 && s.Height > 0 {
			return fmt.Sprintf("%dx%d", s.Width, s.Height)
		}
	case "audio":
		if s.SampleRate != "" {
			return fmt.Sprintf("%s Hz, %d ch", s.SampleRate, s.Channels)
		}
	}
	return ""
}

func formatSize(size string) string {
	bytes, err := strconv.ParseInt(size, 10, 64)
	if err != nil {
		return "unknown"
	}
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatBitrate(bitrate string) string {
	bits, err := strconv.ParseInt(bitrate, 10, 64)
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%d kb/s", bits/1000)
}

// Package command provides the core Command interface for building
// FFmpeg commands.
//
// The specialized builders (video, audio, and the concat builder)
// implement the Command interface; the ffmpeg engine executes them
// agnostically.
package command

// Command represents an FFmpeg command that can be built and previewed.
//
// Builders only assemble arguments; execution lives in the ffmpeg
// engine so process handling, progress parsing, and error wrapping stay
// in one place.
//
// Example usage:
//
//	cmd := video.NewBuilder("input.mp4", "output.mp4").
//		SetCodec("libx264").
//		SetCRF(23)
//
//	args := cmd.BuildArgs()
//	fmt.Println(cmd.String())
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a slice.
	// The returned slice is suitable for exec.Command("ffmpeg", args...).
	//
	// Example return value:
	//   ["-i", "input.mp4", "-ss", "00:00:00.00", "-to", "00:00:30.00", "-c:a", "aac", "-y", "output.m4a"]
	BuildArgs() []string

	// String returns the full command line in the format "ffmpeg <args...>"
	// without executing it. Useful for verbose output and debugging.
	String() string

	// InputPath returns the primary input file path for this command.
	InputPath() string

	// OutputPath returns the output file path for this command.
	OutputPath() string
}

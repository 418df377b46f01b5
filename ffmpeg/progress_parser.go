package ffmpeg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"avtool/engine"
)

// maxTailLines caps how much non-progress output is retained for error
// reporting.
const maxTailLines = 40

// ProgressParser extracts encode metrics from ffmpeg stderr output.
type ProgressParser struct {
	timeRegex    *regexp.Regexp
	bitrateRegex *regexp.Regexp
	speedRegex   *regexp.Regexp
}

// NewProgressParser creates a parser that understands both the default
// -stats lines and the key=value records emitted by -progress.
func NewProgressParser() *ProgressParser {
	return &ProgressParser{
		// Match "time=00:01:02.03" in stats lines and "out_time=00:01:02.030000" records
		timeRegex:    regexp.MustCompile(`(?:^|\s)(?:out_)?time=\s*([0-9:.]+)`),
		bitrateRegex: regexp.MustCompile(`(?:^|\s)bitrate=\s*([0-9.]+)`),
		// Match speed in both formats: "speed=X.Xx" alone and embedded in a stats line
		speedRegex: regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// ParseLine updates progress from a single line of ffmpeg output and
// reports whether the line carried any recognized field.
func (pp *ProgressParser) ParseLine(line string, progress *engine.Progress) bool {
	// Skip empty lines and progress markers
	line = strings.TrimSpace(line)
	if line == "" || line == "progress=continue" || line == "progress=end" {
		return false
	}

	updated := false

	// Parse current position
	if matches := pp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		if seconds, ok := pp.timeToSeconds(matches[1]); ok {
			progress.Seconds = seconds
			updated = true
		}
	}

	// Parse bitrate
	if matches := pp.bitrateRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Bitrate = matches[1] + "kbits/s"
		updated = true
	}

	// Parse speed
	if matches := pp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.Speed = speed
			updated = true
		}
	}

	return updated
}

// StreamProgress reads ffmpeg output line by line and reports each
// update through callback. It returns the non-progress lines it saw,
// which hold ffmpeg's warning and error text.
func (pp *ProgressParser) StreamProgress(reader io.Reader, total float64, callback engine.ProgressFunc) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(scanCRLines)

	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	progress := engine.Progress{Total: total}
	var tail []string

	for scanner.Scan() {
		line := scanner.Text()
		if pp.ParseLine(line, &progress) {
			if callback != nil {
				callback(progress)
			}
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			tail = append(tail, line)
			if len(tail) > maxTailLines {
				tail = tail[1:]
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return tail, fmt.Errorf("error reading ffmpeg output: %w", err)
	}

	return tail, nil
}

// timeToSeconds converts ffmpeg time format (HH:MM:SS.MS) to seconds.
func (pp *ProgressParser) timeToSeconds(timeStr string) (float64, bool) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err1 := strconv.ParseFloat(parts[0], 64)
	minutes, err2 := strconv.ParseFloat(parts[1], 64)
	seconds, err3 := strconv.ParseFloat(parts[2], 64)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}

// scanCRLines splits on both \n and \r so ffmpeg's in-place stats
// rewrites appear as separate lines.
func scanCRLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

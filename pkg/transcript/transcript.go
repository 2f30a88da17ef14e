// Package transcript provides helpers for reading broadcast caption files:
// estimating spoken duration and extracting the media identifier from the
// filename.
package transcript

import (
	"path/filepath"
	"regexp"
	"strings"
)

// WordsPerMinute is the assumed speaking rate for duration estimation.
const WordsPerMinute = 150

var (
	// SRT/VTT timecode lines: "00:01:02,500 --> 00:01:05,000"
	timecodeLine = regexp.MustCompile(`^\s*\d{2}:\d{2}:\d{2}[,.]\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}[,.]\d{3}`)

	// SRT cue numbers are bare integers on their own line
	cueNumberLine = regexp.MustCompile(`^\s*\d+\s*$`)

	// Media ids look like "AB1234" or "NEWS-2024-091": an uppercase token
	// containing at least one digit, leading the filename.
	mediaIDPattern = regexp.MustCompile(`^[A-Z][A-Z0-9-]*\d[A-Z0-9-]*$`)
)

// StripCaptionMarkup removes SRT/VTT cue numbers, timecodes, and headers,
// leaving only the spoken text.
func StripCaptionMarkup(raw string) string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "WEBVTT" {
			continue
		}
		if timecodeLine.MatchString(trimmed) || cueNumberLine.MatchString(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

// CountWords counts whitespace-separated words in the spoken text.
func CountWords(raw string) int {
	return len(strings.Fields(StripCaptionMarkup(raw)))
}

// EstimateDurationMinutes estimates the spoken duration of a transcript at
// WordsPerMinute. An empty or markup-only transcript estimates to 0, which
// the router treats as "duration unknown".
func EstimateDurationMinutes(raw string) float64 {
	words := CountWords(raw)
	if words == 0 {
		return 0
	}
	return float64(words) / WordsPerMinute
}

// ExtractMediaID pulls the media identifier from a transcript filename.
// The id is the first underscore-separated token of the base name when it
// matches the media id pattern; otherwise "".
//
//	"AB1234_morning_show.srt" -> "AB1234"
//	"interview_final.srt"     -> ""
func ExtractMediaID(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	token, _, _ := strings.Cut(base, "_")
	if mediaIDPattern.MatchString(token) {
		return token
	}
	return ""
}

// ProjectName derives the job's project name from the transcript filename:
// the base name without extension, safe for use as a directory name.
func ProjectName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "." || base == string(filepath.Separator) {
		return "untitled"
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "untitled"
	}
	return base
}

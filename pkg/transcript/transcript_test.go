package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Good evening and welcome to the program.

2
00:00:04,500 --> 00:00:08,000
Tonight we look at the harbor expansion plan.
`

func TestStripCaptionMarkup(t *testing.T) {
	got := StripCaptionMarkup(sampleSRT)
	assert.NotContains(t, got, "-->")
	assert.NotContains(t, got, "00:00:01")
	assert.Contains(t, got, "Good evening and welcome to the program.")
}

func TestStripCaptionMarkup_VTT(t *testing.T) {
	vtt := "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\nHello there.\n"
	got := StripCaptionMarkup(vtt)
	assert.Equal(t, "Hello there.", got)
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 15, CountWords(sampleSRT))
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("1\n00:00:01,000 --> 00:00:02,000\n"))
}

func TestEstimateDurationMinutes(t *testing.T) {
	// 300 words at 150 wpm is 2 minutes.
	text := strings.Repeat("word ", 300)
	assert.InDelta(t, 2.0, EstimateDurationMinutes(text), 0.01)

	// No transcript means duration unknown.
	assert.Equal(t, 0.0, EstimateDurationMinutes(""))
}

func TestExtractMediaID(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"AB1234_morning_show.srt", "AB1234"},
		{"/queue/in/NEWS-2024-091_evening.srt", "NEWS-2024-091"},
		{"interview_final.srt", ""},
		{"X9.srt", "X9"},
		{"1234_show.srt", ""}, // must start with a letter
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractMediaID(tt.filename), tt.filename)
	}
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "AB1234_morning_show", ProjectName("/in/AB1234_morning show.srt"))
	assert.Equal(t, "untitled", ProjectName(""))
}

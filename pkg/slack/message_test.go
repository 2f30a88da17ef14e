package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockTexts(blocks []goslack.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch blk := b.(type) {
		case *goslack.SectionBlock:
			if blk.Text != nil {
				sb.WriteString(blk.Text.Text)
				sb.WriteString("\n")
			}
		case *goslack.ContextBlock:
			for _, el := range blk.ContextElements.Elements {
				if txt, ok := el.(*goslack.TextBlockObject); ok {
					sb.WriteString(txt.Text)
					sb.WriteString("\n")
				}
			}
		}
	}
	return sb.String()
}

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage(42, "EP101_morning_show", "http://dash.local")
	require.Len(t, blocks, 1)

	text := blockTexts(blocks)
	assert.Contains(t, text, "EP101_morning_show")
	assert.Contains(t, text, "http://dash.local/jobs/42")
}

func TestBuildStartedMessage_NoDashboard(t *testing.T) {
	blocks := BuildStartedMessage(42, "EP101_morning_show", "")
	text := blockTexts(blocks)
	assert.NotContains(t, text, "Dashboard")
}

func TestBuildTerminalMessage_Completed(t *testing.T) {
	blocks := BuildTerminalMessage(JobFinishedInput{
		JobID:       7,
		ProjectName: "EP102_evening",
		Status:      "completed",
		TotalCost:   0.4321,
	}, "http://dash.local")

	text := blockTexts(blocks)
	assert.Contains(t, text, "Pipeline Complete")
	assert.Contains(t, text, "$0.4321")
	assert.Contains(t, text, "http://dash.local/jobs/7")
}

func TestBuildTerminalMessage_Failed(t *testing.T) {
	blocks := BuildTerminalMessage(JobFinishedInput{
		JobID:        8,
		ProjectName:  "EP103_show",
		Status:       "failed",
		FailedPhase:  "analyst",
		ErrorMessage: "escalation exhausted",
	}, "")

	text := blockTexts(blocks)
	assert.Contains(t, text, "Pipeline Failed")
	assert.Contains(t, text, "analyst")
	assert.Contains(t, text, "escalation exhausted")
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.LessOrEqual(t, len(out), maxBlockTextLength+20)
	assert.Contains(t, out, "(truncated)")

	assert.Equal(t, "short", truncateForSlack("short"))
}

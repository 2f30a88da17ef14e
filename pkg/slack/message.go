package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Pipeline Complete",
	"failed":    "Pipeline Failed",
	"cancelled": "Pipeline Cancelled",
}

func jobURL(jobID int, dashboardURL string) string {
	return fmt.Sprintf("%s/jobs/%d", dashboardURL, jobID)
}

// BuildStartedMessage creates Block Kit blocks for a job start notification.
func BuildStartedMessage(jobID int, projectName, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":arrows_counterclockwise: *%s* started processing.", projectName)
	if dashboardURL != "" {
		text += fmt.Sprintf("\n<%s|View in Dashboard>", jobURL(jobID, dashboardURL))
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// JobFinishedInput contains data for a terminal job notification.
type JobFinishedInput struct {
	JobID        int
	ProjectName  string
	Status       string // completed, failed, cancelled
	TotalCost    float64
	FailedPhase  string
	ErrorMessage string
}

// BuildTerminalMessage creates Block Kit blocks for a terminal job
// notification.
func BuildTerminalMessage(input JobFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Pipeline " + input.Status
	}

	header := fmt.Sprintf("%s *%s* — %s", emoji, label, input.ProjectName)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	var detail string
	switch input.Status {
	case "completed":
		detail = fmt.Sprintf("Total cost: $%.4f", input.TotalCost)
	case "failed":
		if input.FailedPhase != "" {
			detail = fmt.Sprintf("Failed phase: `%s`", input.FailedPhase)
		}
		if input.ErrorMessage != "" {
			if detail != "" {
				detail += "\n"
			}
			detail += truncateForSlack(input.ErrorMessage)
		}
	}
	if detail != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, detail, false, false),
			nil, nil,
		))
	}

	if dashboardURL != "" {
		link := fmt.Sprintf("<%s|View in Dashboard>", jobURL(input.JobID, dashboardURL))
		blocks = append(blocks, goslack.NewContextBlock("",
			goslack.NewTextBlockObject(goslack.MarkdownType, link, false, false),
		))
	}

	return blocks
}

// truncateForSlack keeps text inside Slack's block size limit.
func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n_(truncated)_"
}

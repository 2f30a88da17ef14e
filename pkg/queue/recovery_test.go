package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardigan-project/cardigan/pkg/queue"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     queue.Action
	}{
		{
			name:     "plain token",
			response: "The call timed out twice.\nACTION: RETRY\n",
			want:     queue.ActionRetry,
		},
		{
			name:     "bold markdown",
			response: "My analysis follows.\n\n**ACTION: ESCALATE**\n",
			want:     queue.ActionEscalate,
		},
		{
			name:     "emphasis around verb",
			response: "ACTION: *FIX*",
			want:     queue.ActionFix,
		},
		{
			name:     "lowercase verb",
			response: "action: fail",
			want:     queue.ActionFail,
		},
		{
			name:     "first explicit token wins",
			response: "ACTION: RETRY\nOn reflection, ACTION: FAIL",
			want:     queue.ActionRetry,
		},
		{
			name:     "unknown verb",
			response: "ACTION: PUNT",
			want:     queue.ActionFail,
		},
		{
			name:     "missing token",
			response: "I am not sure what to do here.",
			want:     queue.ActionFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queue.ParseAction(tt.response))
		})
	}
}

func TestExtractCorrectedArtifact(t *testing.T) {
	t.Run("fenced block", func(t *testing.T) {
		response := "Diagnosis here.\nACTION: FIX\n```markdown\n# Corrected notes\n\nBody.\n```\n"
		assert.Equal(t, "# Corrected notes\n\nBody.", queue.ExtractCorrectedArtifact(response))
	})

	t.Run("text after action line", func(t *testing.T) {
		response := "ACTION: FIX\nCorrected output without a fence.\n"
		assert.Equal(t, "Corrected output without a fence.", queue.ExtractCorrectedArtifact(response))
	})

	t.Run("nothing to extract", func(t *testing.T) {
		assert.Empty(t, queue.ExtractCorrectedArtifact("ACTION: FIX"))
		assert.Empty(t, queue.ExtractCorrectedArtifact("no action here"))
	})
}

package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/pkg/llm"
)

// buildPhaseMessages assembles the chat for a phase call: the agent's
// system prompt, then a user message with show metadata (when available),
// the prior phases' outputs in completion order, and the transcript.
func buildPhaseMessages(systemPrompt string, run *jobRun) []llm.Message {
	var b strings.Builder

	if ctx := run.record.PromptContext(); ctx != "" {
		b.WriteString("## Show metadata\n\n")
		b.WriteString(ctx)
		b.WriteString("\n")
	}

	for _, name := range run.order {
		fmt.Fprintf(&b, "## %s output\n\n%s\n\n", name, run.outputs[name])
	}

	b.WriteString("## Transcript\n\n")
	b.WriteString(run.text)

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// buildRecoveryMessages assembles the manager's recovery analysis prompt:
// the failure context plus the response contract the analyzer parses.
func buildRecoveryMessages(systemPrompt string, run *jobRun, ph *ent.JobPhase, failedTier int, failErr error) []llm.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "The %q phase of job %d failed and needs your decision.\n\n", ph.Name, run.job.ID)
	fmt.Fprintf(&b, "Error class: %s\n", errorClass(failErr))
	fmt.Fprintf(&b, "Error: %s\n", failErr.Error())
	fmt.Fprintf(&b, "Tier history: started on tier %d (%s), failed on tier %d (%s) after %d attempts\n\n",
		ph.TierIndex, ph.TierLabel,
		failedTier, run.snap.Routing.TierLabel(failedTier),
		ph.Attempts)

	if len(run.order) > 0 {
		b.WriteString("Outputs from the phases that succeeded:\n\n")
		for _, name := range run.order {
			fmt.Fprintf(&b, "## %s output\n\n%s\n\n", name, run.outputs[name])
		}
	}

	b.WriteString("Respond with exactly one line of the form \"ACTION: <verb>\" where <verb> is one of:\n")
	b.WriteString("- RETRY: run the phase again at the same tier\n")
	b.WriteString("- ESCALATE: run the phase again one tier higher\n")
	b.WriteString("- FIX: you supply the corrected phase output yourself; include it in a fenced code block\n")
	b.WriteString("- FAIL: the job cannot be salvaged\n")
	b.WriteString("Explain your reasoning before the ACTION line.\n")

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// errorClass names an LLM error family for the recovery prompt.
func errorClass(err error) string {
	switch {
	case llm.IsContextTooLarge(err):
		return "context_too_large"
	case llm.IsSafety(err):
		return string(llm.SafetyKindOf(err))
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case llm.IsTransient(err):
		return "transient"
	case llm.IsPermanent(err):
		return "permanent"
	default:
		return "unknown"
	}
}

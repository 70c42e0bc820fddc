package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
)

// summarize condenses a transcript via the configured provider. Any
// failure, timeout or blank reply falls back to a deterministic
// truncation of the input: consolidation is never blocked by summarizer
// unavailability.
func (e *Engine) summarize(ctx context.Context, transcript string) string {
	if e.ai == nil {
		return truncate(transcript, summaryTargetChars)
	}

	system := fmt.Sprintf(
		"You condense conversation transcripts into long-term memory summaries. "+
			"Reply with only the summary, at most %d characters, no preamble.",
		summaryTargetChars)

	var reply core.Message
	err := e.retrier.Do(ctx, func() error {
		var chatErr error
		reply, chatErr = e.ai.Chat(ctx, []core.Message{
			{Role: core.RoleSystem, Content: system},
			{Role: core.RoleUser, Content: transcript},
		})
		return chatErr
	})

	summary := strings.TrimSpace(reply.Content)
	if err != nil || summary == "" {
		log.FromCtx(ctx).Warn().
			Err(err).
			Msg("summarizer unavailable, falling back to truncation")
		return truncate(transcript, summaryTargetChars)
	}
	return summary
}

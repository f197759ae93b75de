// Package genai wraps the upstream text-generation service behind a
// small interface so the orchestrator and tests never depend on the
// concrete SDK client.
package genai

import (
	"context"
	"fmt"
)

// TaskGenerator turns a free-text topic into a short ordered list of
// learning-task titles, or fails with a classified *Error.
type TaskGenerator interface {
	GenerateTasks(ctx context.Context, topic string) ([]string, error)
}

const promptTemplate = `Generate exactly 5 actionable, specific learning tasks for "%s".
Each task should be:
- Practical and achievable for a beginner to intermediate learner
- Specific with clear outcomes
- Progressive in difficulty (from basic to more advanced)
- Focused on hands-on learning and practice
- Between 5-15 words long

Return only the task titles, one per line, without numbers, bullet points, or extra formatting.`

func buildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, topic)
}

// pkg/ai/client.go

package ai

import (
	"disha/pkg/plan/types"
)

type Client interface {
	// GeneratePlan returns the raw markdown plan for the request. The prompt
	// mandates the planmd section headers; the response is returned unmodified.
	GeneratePlan(req types.GenerateRequest, notesCtx string) (string, error)

	// SummarizeNotes condenses a note document into short revision points.
	SummarizeNotes(title, text string) (string, error)

	// GenerateQuiz asks the model for a JSON quiz paper.
	GenerateQuiz(subject, topic string, numQuestions int, difficulty string) (string, error)
}

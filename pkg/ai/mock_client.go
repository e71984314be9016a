// pkg/ai/mock_client.go

package ai

import (
	"fmt"
	"strings"

	"disha/pkg/plan/types"
	"disha/pkg/planmd"
)

// mockClient produces deterministic, contract-honoring output so the whole
// pipeline runs without an LLM endpoint configured.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlan(req types.GenerateRequest, notesCtx string) (string, error) {
	topics := splitTopics(req.Topics, req.NumDays)

	var b strings.Builder
	b.WriteString(planmd.MarkerOverview + "\n\n")
	fmt.Fprintf(&b, "A %d-day %s plan for the %s exam (mock). Each day builds on the previous one; finish a day fully before moving on.\n\n", req.NumDays, req.Subject, req.Exam)

	b.WriteString(planmd.MarkerTopics + "\n\n")
	fmt.Fprintf(&b, "Work through %s in the listed order, alternating theory and practice. Revise the previous day's weak areas each morning.\n\n", req.Subject)

	b.WriteString(planmd.MarkerDaily + "\n\n")
	for d := 1; d <= req.NumDays; d++ {
		fmt.Fprintf(&b, "### Day %d: %s\n", d, topics[d-1])
		fmt.Fprintf(&b, "- 2h concept study: %s\n- 1h solved examples\n- 30m previous-year questions\n- 30m recap notes\n\n", topics[d-1])
	}

	b.WriteString(planmd.MarkerResources + "\n\n")
	fmt.Fprintf(&b, "- Standard %s textbook for %s\n- Free previous-year papers\n- One full mock test every 7 days\n", req.Subject, req.Exam)
	return b.String(), nil
}

func (m *mockClient) SummarizeNotes(title, text string) (string, error) {
	n := len(strings.Fields(text))
	return fmt.Sprintf("**%s** (mock summary)\n\n- %d words condensed\n\n**Quick Revision**\n- revise this note before mocks\n", title, n), nil
}

func (m *mockClient) GenerateQuiz(subject, topic string, numQuestions int, difficulty string) (string, error) {
	var qs []string
	for i := 1; i <= numQuestions; i++ {
		qs = append(qs, fmt.Sprintf(
			`{"question":"Sample %s question %d on %s?","options":["A","B","C","D"],"answerIndex":0,"explanation":"mock"}`,
			subject, i, topic))
	}
	return `{"questions":[` + strings.Join(qs, ",") + `]}`, nil
}

func splitTopics(topics string, n int) []string {
	parts := []string{}
	for _, t := range strings.Split(topics, ",") {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		parts = []string{"Core concepts"}
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = parts[i%len(parts)]
	}
	return out
}

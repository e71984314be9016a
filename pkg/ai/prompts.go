package ai

import (
	"fmt"
	"strings"

	"disha/pkg/plan/types"
	"disha/pkg/planmd"
)

// renderPlanPrompt builds the single fixed generation prompt. The section
// headers listed here are the same literal strings the parser cuts on; keep
// them in sync through the planmd constants only.
func renderPlanPrompt(req types.GenerateRequest, notesCtx string) string {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "intermediate"
	}
	var dayHeaders strings.Builder
	for d := 1; d <= req.NumDays; d++ {
		fmt.Fprintf(&dayHeaders, "### Day %d\n", d)
	}

	p := fmt.Sprintf(`You are an expert mentor for Indian competitive exams. Create a complete %d-day study plan for the subject "%s" targeting the %s exam at %s level.

Topics to cover: %s

Respond in Markdown using EXACTLY these section headers, in this order, and nothing else at the top level:

%s
A short motivating overview of the plan and how the days build on each other.

%s
Subject-wise and topic-wise strategy: what to study in which order and why.

%s
One "### Day N" subheader for EVERY day from 1 to %d, each followed by that day's full schedule. Use exactly these subheaders:
%s
%s
Recommended books, free resources, and a mock-test schedule for the %s exam.`,
		req.NumDays, req.Subject, req.Exam, difficulty,
		req.Topics,
		planmd.MarkerOverview,
		planmd.MarkerTopics,
		planmd.MarkerDaily, req.NumDays, dayHeaders.String(),
		planmd.MarkerResources, req.Exam,
	)

	if notesCtx != "" {
		p += "\n\nREFERENCE NOTES (use where relevant, do not copy at length):\n" + notesCtx
	}
	return p
}

func renderNotesSummaryPrompt(title, text string) string {
	return fmt.Sprintf(`Summarize the following study notes titled %q into concise Markdown revision points for an Indian competitive-exam student.
- Keep formulas, dates and definitions exact.
- Group points under short bold headings.
- End with a "Quick Revision" list of at most 5 one-line takeaways.

NOTES:
%s`, title, text)
}

func renderQuizPrompt(subject, topic string, numQuestions int, difficulty string) string {
	if difficulty == "" {
		difficulty = "intermediate"
	}
	return fmt.Sprintf(`Create a %d-question multiple-choice quiz on %q (topic: %q) at %s level for Indian competitive-exam preparation.
Reply ONLY valid JSON: {"questions":[{"question":"...","options":["...","...","...","..."],"answerIndex":0,"explanation":"..."}, ...]}`,
		numQuestions, subject, topic, difficulty)
}

package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"disha/pkg/plan/types"
	"disha/pkg/planmd"
)

func TestPlanPromptCarriesHeaderContract(t *testing.T) {
	req := types.GenerateRequest{Subject: "Polity", Exam: "UPSC", NumDays: 5, Topics: "Constitution, Parliament"}
	p := renderPlanPrompt(req, "")

	assert.Contains(t, p, planmd.MarkerOverview)
	assert.Contains(t, p, planmd.MarkerTopics)
	assert.Contains(t, p, planmd.MarkerDaily)
	assert.Contains(t, p, planmd.MarkerResources)
	for d := 1; d <= 5; d++ {
		assert.Contains(t, p, fmt.Sprintf("### Day %d\n", d))
	}
	assert.NotContains(t, p, "REFERENCE NOTES")

	withNotes := renderPlanPrompt(req, "some context")
	assert.Contains(t, withNotes, "REFERENCE NOTES")
}

func TestMockGeneratePlanHonorsContract(t *testing.T) {
	req := types.GenerateRequest{Subject: "Maths", Exam: "JEE", NumDays: 4, Topics: "Algebra, Trig"}
	raw, err := NewMock().GeneratePlan(req, "")
	assert.NoError(t, err)

	s, blocks, err := planmd.ParseDocument(raw)
	assert.NoError(t, err)
	assert.NotEmpty(t, s.Overview)
	assert.NotEmpty(t, s.Topics)
	assert.NotEmpty(t, s.Resources)
	assert.Len(t, blocks, 4)

	days := planmd.ExtractDays(blocks)
	assert.Equal(t, "Day 1: Algebra", days[0].Title)
	assert.Equal(t, 4, days[3].DayNumber)
}

package planmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSectionsRoundTrip(t *testing.T) {
	overview := "Start slow, build momentum."
	topics := "Algebra first, then trigonometry."
	resources := "- NCERT\n- Previous year papers"

	s, err := ParseSections(Assemble(overview, topics, resources))
	assert.NoError(t, err)
	assert.Equal(t, overview, s.Overview)
	assert.Equal(t, topics, s.Topics)
	assert.Equal(t, resources, s.Resources)
}

func TestParseSectionsMissingMarkers(t *testing.T) {
	// no topics marker at all
	_, err := ParseSections("just some text")
	var mm *MissingMarkerError
	assert.True(t, errors.As(err, &mm))
	assert.Equal(t, MarkerTopics, mm.Marker)

	// topics marker present, resources marker absent: must fail loudly, not
	// degrade into an empty resources section
	_, err = ParseSections("intro\n" + MarkerTopics + "\ntopic stuff")
	mm = nil
	assert.True(t, errors.As(err, &mm))
	assert.Equal(t, MarkerResources, mm.Marker)
}

func TestParseDocument(t *testing.T) {
	raw := strings.Join([]string{
		MarkerOverview, "A 3-day plan.",
		MarkerTopics, "Order: algebra, trig, calculus.",
		MarkerDaily,
		"### Day 1: Algebra", "- solve equations",
		"### Day 2: Trig", "- identities",
		"### Day 3: Calculus", "- limits",
		MarkerResources, "- NCERT",
	}, "\n")

	s, blocks, err := ParseDocument(raw)
	assert.NoError(t, err)
	assert.Contains(t, s.Overview, "A 3-day plan.")
	assert.Equal(t, "Order: algebra, trig, calculus.", s.Topics)
	assert.Equal(t, "- NCERT", s.Resources)
	assert.Len(t, blocks, 3)

	_, _, err = ParseDocument(strings.ReplaceAll(raw, MarkerDaily, "## daily"))
	var mm *MissingMarkerError
	assert.True(t, errors.As(err, &mm))
	assert.Equal(t, MarkerDaily, mm.Marker)
}

func TestExtractDaysDeterminism(t *testing.T) {
	blocks := []string{
		"Day 1: Algebra\n- 2h practice",
		"Day 2: Trig\n- identities drill",
		"Day 3: Calculus\n- limits intro",
	}
	days := ExtractDays(blocks)
	assert.Len(t, days, 3)
	for i, d := range days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.False(t, d.IsCompleted)
		assert.Nil(t, d.CompletedAt)
		assert.Equal(t, blocks[i], d.Content)
	}
	assert.Equal(t, "Day 1: Algebra", days[0].Title)
	assert.Equal(t, "Day 2: Trig", days[1].Title)
	assert.Equal(t, "Day 3: Calculus", days[2].Title)
}

func TestExtractDaysTitleIsFirstTrimmedLine(t *testing.T) {
	days := ExtractDays([]string{"  Day 1: Polity  \nread Laxmikanth"})
	assert.Equal(t, "Day 1: Polity", days[0].Title)
}

func TestSplitDayBlocks(t *testing.T) {
	daily := "\nintro line to ignore\n"
	for d := 1; d <= 4; d++ {
		daily += fmt.Sprintf("### Day %d: Topic %d\n- work\n", d, d)
	}
	blocks := SplitDayBlocks(daily)
	assert.Len(t, blocks, 4)
	assert.Equal(t, "Day 1: Topic 1\n- work", blocks[0])
	assert.Equal(t, "Day 4: Topic 4\n- work", blocks[3])
}

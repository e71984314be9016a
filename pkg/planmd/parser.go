// Package planmd splits the markdown document returned by the generation
// collaborator into its contracted sections. The prompt template and this
// parser share the literal marker strings below; matching is plain substring
// search, never semantic markdown parsing.
package planmd

import (
	"fmt"
	"strings"

	"disha/entities"
)

const (
	MarkerOverview  = "## 1. OVERVIEW"
	MarkerTopics    = "## 2. TOPIC-WISE STUDY APPROACH"
	MarkerDaily     = "## 3. DAILY ROUTINE"
	MarkerResources = "## 4. RESOURCES AND MOCK TESTS"

	dayHeaderPrefix = "### Day "
)

type Sections struct {
	Overview  string
	Topics    string
	Resources string
}

// MissingMarkerError reports a generation that violated the header contract.
type MissingMarkerError struct {
	Marker string
}

func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("malformed generation: missing section marker %q", e.Marker)
}

// DayCountError reports a generation whose daily-routine section does not
// carry one block per requested day.
type DayCountError struct {
	Want, Got int
}

func (e *DayCountError) Error() string {
	return fmt.Sprintf("malformed generation: got %d day sections, want %d", e.Got, e.Want)
}

// ParseSections splits a general-info document (daily routine already
// removed) on the topics and resources markers. Everything before the topics
// marker is the overview, everything after the resources marker is the
// resources block, the middle is the topic approach. A missing marker is a
// contract violation, not a silent empty section.
func ParseSections(raw string) (Sections, error) {
	before, rest, ok := strings.Cut(raw, MarkerTopics)
	if !ok {
		return Sections{}, &MissingMarkerError{Marker: MarkerTopics}
	}
	topics, resources, ok := strings.Cut(rest, MarkerResources)
	if !ok {
		return Sections{}, &MissingMarkerError{Marker: MarkerResources}
	}
	return Sections{
		Overview:  strings.TrimSpace(before),
		Topics:    strings.TrimSpace(topics),
		Resources: strings.TrimSpace(resources),
	}, nil
}

// ParseDocument splits a full generated document, which additionally carries
// the daily-routine section between the topics and resources blocks. Returns
// the three sections plus the raw per-day blocks in order.
func ParseDocument(raw string) (Sections, []string, error) {
	before, rest, ok := strings.Cut(raw, MarkerTopics)
	if !ok {
		return Sections{}, nil, &MissingMarkerError{Marker: MarkerTopics}
	}
	topics, rest, ok := strings.Cut(rest, MarkerDaily)
	if !ok {
		return Sections{}, nil, &MissingMarkerError{Marker: MarkerDaily}
	}
	daily, resources, ok := strings.Cut(rest, MarkerResources)
	if !ok {
		return Sections{}, nil, &MissingMarkerError{Marker: MarkerResources}
	}
	s := Sections{
		Overview:  strings.TrimSpace(before),
		Topics:    strings.TrimSpace(topics),
		Resources: strings.TrimSpace(resources),
	}
	return s, SplitDayBlocks(daily), nil
}

// SplitDayBlocks cuts the daily-routine section into one block per
// "### Day N" subheader. The subheader prefix is stripped so each block's
// first line reads "Day N: ...".
func SplitDayBlocks(daily string) []string {
	parts := strings.Split(daily, dayHeaderPrefix)
	blocks := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 {
			// preamble before the first day header
			continue
		}
		b := strings.TrimSpace("Day " + p)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ExtractDays turns ordered day blocks into DayEntry values: dayNumber is the
// 1-based position, title is the first trimmed line, content the full block.
func ExtractDays(blocks []string) []entities.DayEntry {
	days := make([]entities.DayEntry, 0, len(blocks))
	for i, b := range blocks {
		title := strings.TrimSpace(b)
		if idx := strings.IndexByte(title, '\n'); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
		days = append(days, entities.DayEntry{
			DayNumber:   i + 1,
			Title:       title,
			Content:     b,
			IsCompleted: false,
			CompletedAt: nil,
			Version:     1,
		})
	}
	return days
}

// Assemble is the inverse of ParseSections, used when a client submits the
// general-info document it received from generation.
func Assemble(overview, topics, resources string) string {
	return overview + "\n\n" + MarkerTopics + "\n\n" + topics + "\n\n" + MarkerResources + "\n\n" + resources
}

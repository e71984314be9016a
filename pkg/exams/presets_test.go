package exams

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ExamPresets.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeCSV() failed: %v", err)
	}
	return path
}

func TestLoadFromFiles(t *testing.T) {
	path := writeCSV(t, `Exam,Subjects,DailyHours,Notes
JEE,Physics;Chemistry;Mathematics,8,focus on numericals
UPSC,Polity;History;Geography;Economy,6,
NEET,Physics;Chemistry;Biology,7.5,NCERT first
`)
	p, err := LoadFromFiles(path, "")
	assert.NoError(t, err)

	pr, ok := p.Lookup("jee")
	assert.True(t, ok)
	assert.Equal(t, "JEE", pr.Exam)
	assert.Equal(t, []string{"Physics", "Chemistry", "Mathematics"}, pr.Subjects)
	assert.Equal(t, 8.0, pr.DailyHours)

	pr, ok = p.Lookup("NEET")
	assert.True(t, ok)
	assert.Equal(t, 7.5, pr.DailyHours)

	_, ok = p.Lookup("CAT")
	assert.False(t, ok)

	assert.Equal(t, []string{"JEE", "UPSC", "NEET"}, p.Exams())
}

func TestHeaderAliases(t *testing.T) {
	// BOM, spacing and underscore variants must still resolve
	path := writeCSV(t, "\ufeffexam_name,subject_list,hours_per_day\nSSC,Quant;Reasoning;English,5\n")
	p, err := LoadFromFiles(path, "")
	assert.NoError(t, err)
	pr, ok := p.Lookup("ssc")
	assert.True(t, ok)
	assert.Equal(t, 5.0, pr.DailyHours)
}

func TestMissingColumns(t *testing.T) {
	path := writeCSV(t, "Exam,Hours\nJEE,8\n")
	_, err := LoadFromFiles(path, "")
	assert.Error(t, err)
}

func TestEmptyPresetsRejected(t *testing.T) {
	path := writeCSV(t, "Exam,Subjects\n")
	_, err := LoadFromFiles(path, "")
	assert.Error(t, err)
}

func TestPromptHint(t *testing.T) {
	path := writeCSV(t, "Exam,Subjects,DailyHours,Notes\nUPSC,Polity;History,6,answer writing daily\n")
	p, err := LoadFromFiles(path, "")
	assert.NoError(t, err)

	hint := p.PromptHint("UPSC")
	assert.Contains(t, hint, "Polity, History")
	assert.Contains(t, hint, "6.0 hours/day")
	assert.Contains(t, hint, "answer writing daily")

	assert.Empty(t, p.PromptHint("unknown"))
}

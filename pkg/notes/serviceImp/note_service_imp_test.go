package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/ai"
	"disha/pkg/notes/repositoryImp"
)

func setup(t *testing.T) *Svc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	if err := db.AutoMigrate(&entities.NoteDocument{}, &entities.NoteChunk{}); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	// nil embedder: search falls back to keyword scoring
	return New(repositoryImp.New(db), nil, ai.NewMock())
}

func TestUpsertDocumentChunks(t *testing.T) {
	s := setup(t)

	text := strings.Repeat("electrostatics field lines\n", 200)
	doc, n, err := s.UpsertDocument("u1", "Physics Notes", "physics", text, "")
	assert.NoError(t, err)
	assert.NotZero(t, doc.DocID)
	assert.Greater(t, n, 1)
}

func TestKeywordSearchFallback(t *testing.T) {
	s := setup(t)
	_, _, err := s.UpsertDocument("u1", "Polity", "upsc", "the president appoints the governor\n", "")
	assert.NoError(t, err)
	_, _, err = s.UpsertDocument("u1", "Trig", "maths", "sine and cosine identities\n", "")
	assert.NoError(t, err)

	out, err := s.Search("governor appointment", 5)
	assert.NoError(t, err)
	if assert.NotEmpty(t, out) {
		assert.Contains(t, out[0].Text, "governor")
	}

	out, err = s.Search("", 5)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestSummarizePersists(t *testing.T) {
	s := setup(t)
	doc, _, err := s.UpsertDocument("u1", "History", "", "the revolt of 1857 began in meerut\n", "")
	assert.NoError(t, err)

	out, err := s.Summarize(doc.DocID)
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Summary)

	again, err := s.r.GetDoc(doc.DocID)
	assert.NoError(t, err)
	assert.Equal(t, out.Summary, again.Summary)
}

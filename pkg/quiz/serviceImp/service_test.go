package serviceImp

import (
	"errors"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"disha/pkg/ai"
	"disha/pkg/quiz"
	"disha/pkg/quiz/repositoryImp"
	svc "disha/pkg/quiz/service"
)

func setup(t *testing.T) svc.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	if err := db.AutoMigrate(&quiz.Attempt{}); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return New(repositoryImp.New(db), ai.NewMock())
}

func TestGenerateAndList(t *testing.T) {
	s := setup(t)

	a, qs, err := s.Generate("u1", "Physics", "Kinematics", 5, "intermediate")
	assert.NoError(t, err)
	assert.Equal(t, "generated", a.Status)
	assert.Len(t, qs, 5)
	assert.Len(t, qs[0].Options, 4)

	list, err := s.ListByUser("u1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenerateRequiresSubject(t *testing.T) {
	s := setup(t)
	_, _, err := s.Generate("u1", "", "Kinematics", 5, "")
	assert.Error(t, err)
}

func TestSubmitScore(t *testing.T) {
	s := setup(t)
	a, _, err := s.Generate("u1", "Physics", "", 3, "")
	assert.NoError(t, err)

	score := 2.0
	out, err := s.UpdatePartial("u1", a.ID, svc.AttemptPatch{Score: &score})
	assert.NoError(t, err)
	assert.Equal(t, "submitted", out.Status)
	if assert.NotNil(t, out.Score) {
		assert.Equal(t, 2.0, *out.Score)
	}
}

func TestSubmitScoreScopedToOwner(t *testing.T) {
	s := setup(t)
	a, _, err := s.Generate("u1", "Physics", "", 3, "")
	assert.NoError(t, err)

	score := 3.0
	_, err = s.UpdatePartial("u2", a.ID, svc.AttemptPatch{Score: &score})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// owner's record is untouched
	list, err := s.ListByUser("u1")
	assert.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Nil(t, list[0].Score)
		assert.Equal(t, "generated", list[0].Status)
	}
}

func TestParseQuestionsEnvelopeAndArray(t *testing.T) {
	env := `{"questions":[{"question":"q","options":["a","b"],"answerIndex":1}]}`
	qs, err := parseQuestions(env)
	assert.NoError(t, err)
	assert.Len(t, qs, 1)

	arr := `[{"question":"q","options":["a","b"],"answerIndex":0}]`
	qs, err = parseQuestions(arr)
	assert.NoError(t, err)
	assert.Len(t, qs, 1)

	_, err = parseQuestions("not json at all")
	assert.Error(t, err)
}

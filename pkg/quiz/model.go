package quiz

import "gorm.io/gorm"

type Attempt struct {
	gorm.Model            // ID, CreatedAt, UpdatedAt, DeletedAt
	UserID        string  `json:"user_id" gorm:"index"`
	Subject       string  `json:"subject"`
	Topic         string  `json:"topic"`
	Difficulty    string  `json:"difficulty"`
	NumQuestions  int     `json:"num_questions"`
	QuestionsJSON string  `json:"questions_json"`
	Status        string  `json:"status" gorm:"index"` // generated|submitted
	Score         *float64 `json:"score"`
}

type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation,omitempty"`
}

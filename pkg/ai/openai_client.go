// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"disha/pkg/plan/types"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chat(system, user string, temperature float64) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": temperature,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 60 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

func (c *openAI) GeneratePlan(req types.GenerateRequest, notesCtx string) (string, error) {
	return c.chat(
		"You are a study mentor for Indian competitive exams who writes structured Markdown study plans.",
		renderPlanPrompt(req, notesCtx),
		0.2,
	)
}

func (c *openAI) SummarizeNotes(title, text string) (string, error) {
	return c.chat(
		"You are a study mentor who writes concise, accurate Markdown revision notes.",
		renderNotesSummaryPrompt(title, text),
		0.2,
	)
}

func (c *openAI) GenerateQuiz(subject, topic string, numQuestions int, difficulty string) (string, error) {
	return c.chat(
		"You are an exam-question setter. Reply ONLY valid JSON.",
		renderQuizPrompt(subject, topic, numQuestions, difficulty),
		0.3,
	)
}

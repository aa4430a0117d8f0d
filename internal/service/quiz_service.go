package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"coursecraft/internal/model"
	"coursecraft/internal/provider"

	openai "github.com/sashabaranov/go-openai"
)

const quizTemperature = 0.7

// QuizService creates quizzes via the chat-completion provider and
// scores submitted answers against a stored quiz.
type QuizService interface {
	CreateQuiz(ctx context.Context, language, questionCount, choiceCount string) (*model.Quiz, error)
	Score(quiz *model.Quiz, submitted []string) int
}

type quizService struct {
	client *openai.Client
	model  string
}

// NewQuizService creates a QuizService using the given OpenAI client.
func NewQuizService(client *openai.Client, chatModel string) QuizService {
	return &quizService{client: client, model: chatModel}
}

// CreateQuiz asks the provider for a JSON-shaped quiz and decodes it
// into the typed quiz structure. A body that is not valid JSON or that
// carries no questions surfaces as provider.ErrMalformedResponse.
func (s *quizService) CreateQuiz(ctx context.Context, language, questionCount, choiceCount string) (*model.Quiz, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"Prepare a quiz for %s with %s questions and %s choices each. "+
						`Return the output as a JSON object {"questions":[{"question":"","answer":"","choices":[""]}]}.`,
					language, questionCount, choiceCount,
				),
			},
		},
		Temperature: quizTemperature,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("request quiz: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("provider returned no choices")
	}

	var quiz model.Quiz
	body := extractJSON(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(body), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrMalformedResponse, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in response", provider.ErrMalformedResponse)
	}
	return &quiz, nil
}

// Score counts positional matches between the stored answers and the
// submitted answers. Extra submitted answers are ignored; missing ones
// count as wrong.
func (s *quizService) Score(quiz *model.Quiz, submitted []string) int {
	actual := quiz.Answers()
	score := 0
	for i, answer := range actual {
		if i < len(submitted) && submitted[i] == answer {
			score++
		}
	}
	return score
}

// extractJSON removes markdown code block formatting if present and
// extracts the JSON object from the completion body.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		if newlineIdx := strings.Index(content[start:], "\n"); newlineIdx != -1 {
			start += newlineIdx + 1
		}
		if endIdx := strings.Index(content[start:], "```"); endIdx != -1 {
			content = content[start : start+endIdx]
		} else {
			content = content[start:]
		}
	}

	content = strings.TrimSpace(content)

	if startIdx := strings.Index(content, "{"); startIdx != -1 {
		if endIdx := strings.LastIndex(content, "}"); endIdx != -1 && endIdx > startIdx {
			content = content[startIdx : endIdx+1]
		}
	}

	return strings.TrimSpace(content)
}

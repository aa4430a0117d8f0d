package model

// Quiz is the transient quiz payload held in the session between the
// create and score requests. It is never persisted to the database.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is one generated question with its expected answer and
// the ordered choice list shown to the user.
type QuizQuestion struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Choices  []string `json:"choices"`
}

// Answers returns the expected answers in question order.
func (q *Quiz) Answers() []string {
	answers := make([]string, 0, len(q.Questions))
	for _, question := range q.Questions {
		answers = append(answers, question.Answer)
	}
	return answers
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"coursecraft/internal/provider"
	"coursecraft/internal/service"
	"coursecraft/internal/session"
	"coursecraft/internal/web"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type quizForm struct {
	Language string `validate:"required"`
	Ques     string `validate:"required,number"`
	Choices  string `validate:"required,number"`
}

// QuizHandler handles the two-phase quiz endpoint: POST generates and
// stores a quiz in the session, GET scores the submitted answers
// against it.
type QuizHandler struct {
	quizService service.QuizService
	store       session.Store
	templates   *web.Templates
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewQuizHandler(quizService service.QuizService, store session.Store, templates *web.Templates, v *validator.Validate, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, store: store, templates: templates, validate: v, logger: logger}
}

// RegisterRoutes mounts the quiz endpoint.
func (h *QuizHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/quiz", http.HandlerFunc(h.handleQuiz))
}

func (h *QuizHandler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createQuiz(w, r)
	case http.MethodGet:
		h.scoreQuiz(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *QuizHandler) createQuiz(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "error.html", map[string]any{"Message": "Malformed form submission"})
		return
	}
	form := quizForm{
		Language: r.PostFormValue("language"),
		Ques:     r.PostFormValue("ques"),
		Choices:  r.PostFormValue("choices"),
	}
	if err := h.validate.Struct(&form); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "error.html", map[string]any{"Message": "Topic, question count and choice count are required"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(r.Context(), form.Language, form.Ques, form.Choices)
	if err != nil {
		if errors.Is(err, provider.ErrMalformedResponse) {
			h.logger.Error().Err(err).Msg("provider returned a malformed quiz")
			h.templates.Render(w, http.StatusBadGateway, "error.html", map[string]any{"Message": "The quiz provider returned an unusable quiz, try again"})
			return
		}
		h.logger.Error().Err(err).Msg("quiz generation failed")
		h.templates.Render(w, http.StatusBadGateway, "error.html", map[string]any{"Message": "The quiz provider is unavailable, try again later"})
		return
	}

	if err := h.store.SetQuiz(w, r, quiz); err != nil {
		h.logger.Error().Err(err).Msg("failed to store quiz in session")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not store the quiz"})
		return
	}
	h.templates.Render(w, http.StatusOK, "quiz.html", map[string]any{"Quiz": quiz})
}

// scoreQuiz reads the pending session quiz and counts matches. Answer
// fields are named by question index (q0, q1, ...) so a reordered or
// partial submission still lines up with the right questions.
func (h *QuizHandler) scoreQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.store.Quiz(r)
	if err != nil {
		if errors.Is(err, session.ErrNoQuiz) {
			h.templates.Render(w, http.StatusBadRequest, "error.html", map[string]any{"Message": "No quiz is pending, generate one first"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to load quiz from session")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not load the pending quiz"})
		return
	}

	query := r.URL.Query()
	given := make([]string, len(quiz.Questions))
	for i := range quiz.Questions {
		given[i] = query.Get(fmt.Sprintf("q%d", i))
	}

	score := h.quizService.Score(quiz, given)
	h.templates.Render(w, http.StatusOK, "score.html", map[string]any{
		"Score":  score,
		"Total":  len(quiz.Questions),
		"Actual": quiz.Answers(),
		"Given":  given,
	})
}

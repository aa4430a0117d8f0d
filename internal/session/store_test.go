package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecraft/internal/model"
)

// roundTrip saves state on a response and returns a new request carrying
// the resulting session cookie.
func roundTrip(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestUserIDRoundTrip(t *testing.T) {
	store := NewCookieStore("test-secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)

	if err := store.SetUserID(rec, req, 7); err != nil {
		t.Fatalf("SetUserID returned error: %v", err)
	}

	id, ok := store.UserID(roundTrip(t, rec))
	if !ok || id != 7 {
		t.Fatalf("expected user id 7, got %d (ok=%v)", id, ok)
	}
}

func TestUserIDAbsent(t *testing.T) {
	store := NewCookieStore("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := store.UserID(req); ok {
		t.Fatal("expected no user id on a fresh request")
	}
}

func TestClearUserID(t *testing.T) {
	store := NewCookieStore("test-secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := store.SetUserID(rec, req, 7); err != nil {
		t.Fatalf("SetUserID returned error: %v", err)
	}

	authed := roundTrip(t, rec)
	rec2 := httptest.NewRecorder()
	if err := store.ClearUserID(rec2, authed); err != nil {
		t.Fatalf("ClearUserID returned error: %v", err)
	}
	if _, ok := store.UserID(roundTrip(t, rec2)); ok {
		t.Fatal("expected user id to be cleared")
	}
}

func TestQuizRoundTrip(t *testing.T) {
	store := NewCookieStore("test-secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quiz", nil)

	quiz := &model.Quiz{Questions: []model.QuizQuestion{
		{Question: "2+2?", Answer: "4", Choices: []string{"3", "4"}},
	}}
	if err := store.SetQuiz(rec, req, quiz); err != nil {
		t.Fatalf("SetQuiz returned error: %v", err)
	}

	got, err := store.Quiz(roundTrip(t, rec))
	if err != nil {
		t.Fatalf("Quiz returned error: %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].Answer != "4" {
		t.Fatalf("unexpected quiz payload: %+v", got)
	}
}

func TestQuizAbsent(t *testing.T) {
	store := NewCookieStore("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/quiz", nil)
	if _, err := store.Quiz(req); !errors.Is(err, ErrNoQuiz) {
		t.Fatalf("expected ErrNoQuiz, got %v", err)
	}
}

func TestQuizOverwritten(t *testing.T) {
	store := NewCookieStore("test-secret")

	rec := httptest.NewRecorder()
	first := &model.Quiz{Questions: []model.QuizQuestion{{Answer: "A"}}}
	if err := store.SetQuiz(rec, httptest.NewRequest(http.MethodPost, "/quiz", nil), first); err != nil {
		t.Fatalf("SetQuiz returned error: %v", err)
	}

	rec2 := httptest.NewRecorder()
	second := &model.Quiz{Questions: []model.QuizQuestion{{Answer: "B"}, {Answer: "C"}}}
	if err := store.SetQuiz(rec2, roundTrip(t, rec), second); err != nil {
		t.Fatalf("SetQuiz returned error: %v", err)
	}

	got, err := store.Quiz(roundTrip(t, rec2))
	if err != nil {
		t.Fatalf("Quiz returned error: %v", err)
	}
	if len(got.Questions) != 2 || got.Questions[0].Answer != "B" {
		t.Fatalf("expected the second quiz to replace the first, got %+v", got)
	}
}

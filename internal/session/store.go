package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursecraft/internal/model"

	"github.com/gorilla/sessions"
)

const sessionName = "coursecraft_session"

// Session value keys - keep these consistent
const (
	userIDKey = "user_id"
	quizKey   = "quiz"
)

// ErrNoQuiz is returned when the session holds no pending quiz payload.
var ErrNoQuiz = errors.New("no quiz stored in session")

// Store is an explicit per-session key-value store for the two pieces of
// session state the application carries: the authenticated principal id
// and the last generated quiz. Making it an interface keeps the
// dependency visible at function boundaries instead of an ambient global.
type Store interface {
	UserID(r *http.Request) (uint, bool)
	SetUserID(w http.ResponseWriter, r *http.Request, id uint) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	Quiz(r *http.Request) (*model.Quiz, error)
	SetQuiz(w http.ResponseWriter, r *http.Request, quiz *model.Quiz) error
}

type cookieStore struct {
	store *sessions.CookieStore
}

// NewCookieStore creates a Store backed by signed session cookies.
func NewCookieStore(secret string) Store {
	return &cookieStore{store: sessions.NewCookieStore([]byte(secret))}
}

func (s *cookieStore) UserID(r *http.Request) (uint, bool) {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[userIDKey].(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func (s *cookieStore) SetUserID(w http.ResponseWriter, r *http.Request, id uint) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Values[userIDKey] = id
	return sess.Save(r, w)
}

func (s *cookieStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

func (s *cookieStore) Quiz(r *http.Request) (*model.Quiz, error) {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil, ErrNoQuiz
	}
	raw, ok := sess.Values[quizKey].(string)
	if !ok || raw == "" {
		return nil, ErrNoQuiz
	}
	var quiz model.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *cookieStore) SetQuiz(w http.ResponseWriter, r *http.Request, quiz *model.Quiz) error {
	raw, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	sess, _ := s.store.Get(r, sessionName)
	// A session carries at most one pending quiz; overwriting is intended.
	sess.Values[quizKey] = string(raw)
	return sess.Save(r, w)
}

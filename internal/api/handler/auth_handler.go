package handler

import (
	"errors"
	"net/http"

	"coursecraft/internal/service"
	"coursecraft/internal/session"
	"coursecraft/internal/web"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type signupForm struct {
	Username string `validate:"required,max=20"`
	Email    string `validate:"required,email,max=50"`
	Password string `validate:"required,min=6"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	authService service.AuthService
	store       session.Store
	templates   *web.Templates
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, store session.Store, templates *web.Templates, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, store: store, templates: templates, validate: v, logger: logger}
}

// RegisterRoutes mounts the auth routes. Logout requires a session.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/signup", http.HandlerFunc(h.handleSignup))
	mux.Handle("/login", http.HandlerFunc(h.handleLogin))
	mux.Handle("/logout", authMw(http.HandlerFunc(h.logout)))
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.templates.Render(w, http.StatusOK, "signup.html", map[string]any{})
	case http.MethodPost:
		h.signup(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "signup.html", map[string]any{"Error": "Malformed form submission"})
		return
	}
	form := signupForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(&form); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "signup.html", map[string]any{"Error": "Please fill in every field correctly"})
		return
	}

	_, err := h.authService.Signup(r.Context(), form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
		h.templates.Render(w, http.StatusConflict, "signup.html", map[string]any{"Error": err.Error()})
		return
	case err != nil:
		h.logger.Error().Err(err).Msg("signup failed")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not create the account"})
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.templates.Render(w, http.StatusOK, "login.html", map[string]any{})
	case http.MethodPost:
		h.login(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "login.html", map[string]any{"Error": "Malformed form submission"})
		return
	}
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(&form); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "login.html", map[string]any{"Error": "Please fill in every field"})
		return
	}

	user, err := h.authService.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.templates.Render(w, http.StatusUnauthorized, "login.html", map[string]any{"Error": "Invalid email or password"})
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not log in"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		h.logger.Error().Err(err).Msg("failed to establish session")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not establish a session"})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if err := h.store.ClearUserID(w, r); err != nil {
		h.logger.Error().Err(err).Msg("failed to clear session")
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

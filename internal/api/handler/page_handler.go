package handler

import (
	"net/http"

	"coursecraft/internal/middleware"
	"coursecraft/internal/service"
	"coursecraft/internal/web"

	"github.com/rs/zerolog"
)

// PageHandler serves the home, dashboard and quiz landing pages.
type PageHandler struct {
	courseService service.CourseService
	templates     *web.Templates
	logger        zerolog.Logger
}

func NewPageHandler(courseService service.CourseService, templates *web.Templates, logger zerolog.Logger) *PageHandler {
	return &PageHandler{courseService: courseService, templates: templates, logger: logger}
}

// RegisterRoutes mounts the page routes. The quiz landing page is
// public; home and dashboard require a session.
func (h *PageHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/", authMw(http.HandlerFunc(h.home)))
	mux.Handle("/dashboard", authMw(http.HandlerFunc(h.dashboard)))
	mux.Handle("/quiz_interface", http.HandlerFunc(h.quizInterface))
}

func (h *PageHandler) home(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything but the root path is a 404.
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	user := middleware.CurrentUser(r)
	saved, err := h.courseService.ListCourses(r.Context(), user.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list courses")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not load your courses"})
		return
	}
	recommended := h.courseService.Recommendations(r.Context(), saved)
	h.templates.Render(w, http.StatusOK, "home.html", map[string]any{
		"User":         user,
		"SavedCourses": saved,
		"Recommended":  recommended,
	})
}

func (h *PageHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.templates.Render(w, http.StatusOK, "dashboard.html", map[string]any{
		"User": middleware.CurrentUser(r),
	})
}

func (h *PageHandler) quizInterface(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.templates.Render(w, http.StatusOK, "quiz_home.html", nil)
}

package handler

import (
	"net/http"
	"strings"

	"coursecraft/internal/markdown"
	"coursecraft/internal/middleware"
	"coursecraft/internal/model"
	"coursecraft/internal/pdf"
	"coursecraft/internal/service"
	"coursecraft/internal/web"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type courseForm struct {
	CourseName string `validate:"required,max=100"`
}

// CourseHandler handles course generation and module detail pages.
type CourseHandler struct {
	courseService service.CourseService
	pdfRenderer   pdf.Renderer
	templates     *web.Templates
	validate      *validator.Validate
	logger        zerolog.Logger
}

func NewCourseHandler(courseService service.CourseService, pdfRenderer pdf.Renderer, templates *web.Templates, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, pdfRenderer: pdfRenderer, templates: templates, validate: v, logger: logger}
}

// RegisterRoutes mounts the course routes behind the auth middleware.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/course", authMw(http.HandlerFunc(h.handleCourse)))
	mux.Handle("/module/", authMw(http.HandlerFunc(h.moduleDetail)))
}

func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.templates.Render(w, http.StatusOK, "course.html", map[string]any{})
	case http.MethodPost:
		h.generateCourse(w, r)
	default:
		http.NotFound(w, r)
	}
}

// generateCourse runs the outline prompts, persists the rendered page as
// a new course owned by the principal, and returns the page.
func (h *CourseHandler) generateCourse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "error.html", map[string]any{"Message": "Malformed form submission"})
		return
	}
	form := courseForm{CourseName: r.PostFormValue("course_name")}
	if err := h.validate.Struct(&form); err != nil {
		h.templates.Render(w, http.StatusBadRequest, "error.html", map[string]any{"Message": "A course name is required"})
		return
	}

	outline, err := h.courseService.GenerateOutline(r.Context(), form.CourseName)
	if err != nil {
		h.logger.Error().Err(err).Str("course", form.CourseName).Msg("outline generation failed")
		h.templates.Render(w, http.StatusBadGateway, "error.html", map[string]any{"Message": "The content provider is unavailable, try again later"})
		return
	}

	rendered, err := h.templates.RenderString("course.html", map[string]any{
		"CourseName": form.CourseName,
		"Outline":    outline,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render course page")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not render the course"})
		return
	}

	user := middleware.CurrentUser(r)
	course := &model.Course{
		UserID:     user.ID,
		CourseName: form.CourseName,
		Content:    rendered,
	}
	if err := h.courseService.SaveCourse(r.Context(), course); err != nil {
		h.logger.Error().Err(err).Str("course", form.CourseName).Msg("failed to save course")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not save the course"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(rendered))
}

// moduleDetail serves /module/<course_name>/<module_name>. The download
// query flag switches the response to a PDF rendering of the same page.
func (h *CourseHandler) moduleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/module/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.NotFound(w, r)
		return
	}
	courseName, moduleName := parts[0], parts[1]

	content, err := h.courseService.GenerateModuleContent(r.Context(), courseName, moduleName)
	if err != nil {
		h.logger.Error().Err(err).Str("module", moduleName).Msg("module generation failed")
		h.templates.Render(w, http.StatusBadGateway, "error.html", map[string]any{"Message": "The content provider is unavailable, try again later"})
		return
	}
	if content == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<p>Module not found</p>"))
		return
	}

	page, err := h.templates.RenderString("module.html", map[string]any{
		"CourseName": courseName,
		"ModuleName": moduleName,
		"Content":    markdown.ToHTML(content),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render module page")
		h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not render the module"})
		return
	}

	if r.URL.Query().Has("download") {
		doc, err := h.pdfRenderer.RenderHTML(r.Context(), page)
		if err != nil {
			h.logger.Error().Err(err).Msg("PDF rendering failed")
			h.templates.Render(w, http.StatusInternalServerError, "error.html", map[string]any{"Message": "Could not render the PDF"})
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+moduleName+`.pdf"`)
		_, _ = w.Write(doc)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

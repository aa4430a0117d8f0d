package service

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"coursecraft/internal/markdown"
	"coursecraft/internal/model"
	"coursecraft/internal/provider"
	"coursecraft/internal/repository"
)

// Outline is the generated course outline: a rendered learning-approach
// section and the ordered module names extracted from the provider's
// bullet list.
type Outline struct {
	Approach template.HTML
	Modules  []string
}

// CourseService generates course content and manages saved courses.
type CourseService interface {
	GenerateOutline(ctx context.Context, courseName string) (*Outline, error)
	GenerateModuleContent(ctx context.Context, courseName, moduleName string) (string, error)
	SaveCourse(ctx context.Context, c *model.Course) error
	ListCourses(ctx context.Context, userID uint) ([]model.Course, error)
	Recommendations(ctx context.Context, saved []model.Course) []string
}

type courseService struct {
	generator  provider.TextGenerator
	courseRepo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(generator provider.TextGenerator, courseRepo repository.CourseRepository) CourseService {
	return &courseService{generator: generator, courseRepo: courseRepo}
}

// GenerateOutline runs the two fixed outline prompts. An empty provider
// result yields an empty approach and an empty module list rather than
// an error; transport failures propagate.
func (s *courseService) GenerateOutline(ctx context.Context, courseName string) (*Outline, error) {
	approachPrompt := fmt.Sprintf(
		"Describe the learning approach for %s for undergrad students. Provide points and expected learning outcomes.",
		courseName,
	)
	modulesPrompt := fmt.Sprintf(
		"List modules for the course %s with brief descriptions.",
		courseName,
	)

	approachText, err := s.generator.GenerateText(ctx, approachPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate approach: %w", err)
	}
	modulesText, err := s.generator.GenerateText(ctx, modulesPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate modules: %w", err)
	}

	return &Outline{
		Approach: markdown.ToHTML(approachText),
		Modules:  markdown.ExtractBullets(modulesText),
	}, nil
}

// GenerateModuleContent returns the raw provider text for one module, or
// "" when the provider produced nothing.
func (s *courseService) GenerateModuleContent(ctx context.Context, courseName, moduleName string) (string, error) {
	prompt := fmt.Sprintf(
		"Provide a detailed explanation of %s from the course %s. Use examples or analogies.",
		moduleName, courseName,
	)
	content, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate module content: %w", err)
	}
	return content, nil
}

// SaveCourse persists a generated course bound to its owner.
func (s *courseService) SaveCourse(ctx context.Context, c *model.Course) error {
	return s.courseRepo.CreateCourse(ctx, c)
}

// ListCourses retrieves the courses saved by the given user.
func (s *courseService) ListCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	return s.courseRepo.GetCoursesByUserID(ctx, userID)
}

// Recommendations suggests follow-up courses based on what the user has
// already saved. Provider failures degrade to an empty list so the home
// page always renders.
func (s *courseService) Recommendations(ctx context.Context, saved []model.Course) []string {
	if len(saved) == 0 {
		return []string{}
	}
	names := make([]string, 0, len(saved))
	for _, c := range saved {
		names = append(names, c.CourseName)
	}
	prompt := fmt.Sprintf(
		"A student has completed these courses: %s. List follow-up courses they should take next.",
		strings.Join(names, ", "),
	)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return []string{}
	}
	return markdown.ExtractBullets(text)
}

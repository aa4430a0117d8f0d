package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"coursecraft/internal/model"
)

// stubGenerator returns canned text per prompt substring.
type stubGenerator struct {
	responses map[string]string
	err       error
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	for key, text := range g.responses {
		if strings.Contains(prompt, key) {
			return text, nil
		}
	}
	return "", nil
}

func TestGenerateOutlineExtractsModules(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{
		"learning approach": "## Approach\n\nHands-on first.",
		"List modules":      "• Vectors\n• Matrices",
	}}
	svc := NewCourseService(gen, nil)

	outline, err := svc.GenerateOutline(context.Background(), "Linear Algebra")
	if err != nil {
		t.Fatalf("GenerateOutline returned error: %v", err)
	}
	if len(outline.Modules) != 2 || outline.Modules[0] != "Vectors" || outline.Modules[1] != "Matrices" {
		t.Fatalf("unexpected modules: %v", outline.Modules)
	}
	if !strings.Contains(string(outline.Approach), "<h2>") {
		t.Fatalf("expected rendered approach HTML, got %q", outline.Approach)
	}
}

func TestGenerateOutlineEmptyProviderResult(t *testing.T) {
	svc := NewCourseService(&stubGenerator{}, nil)

	outline, err := svc.GenerateOutline(context.Background(), "Linear Algebra")
	if err != nil {
		t.Fatalf("GenerateOutline returned error: %v", err)
	}
	if outline.Approach != "" {
		t.Fatalf("expected empty approach, got %q", outline.Approach)
	}
	if outline.Modules == nil || len(outline.Modules) != 0 {
		t.Fatalf("expected empty module list, got %v", outline.Modules)
	}
}

func TestGenerateOutlinePropagatesProviderError(t *testing.T) {
	svc := NewCourseService(&stubGenerator{err: errors.New("boom")}, nil)
	if _, err := svc.GenerateOutline(context.Background(), "Linear Algebra"); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerateModuleContentUsesBothNames(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{
		"Vectors": "Vectors are arrows.",
	}}
	svc := NewCourseService(gen, nil)

	content, err := svc.GenerateModuleContent(context.Background(), "Linear Algebra", "Vectors")
	if err != nil {
		t.Fatalf("GenerateModuleContent returned error: %v", err)
	}
	if content != "Vectors are arrows." {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestRecommendationsDegradeToEmptyOnError(t *testing.T) {
	svc := NewCourseService(&stubGenerator{err: errors.New("down")}, nil)
	saved := []model.Course{{CourseName: "Calculus"}}
	if got := svc.Recommendations(context.Background(), saved); len(got) != 0 {
		t.Fatalf("expected empty recommendations, got %v", got)
	}
}

func TestRecommendationsEmptyForNoSavedCourses(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{"completed": "* Topology"}}
	svc := NewCourseService(gen, nil)
	if got := svc.Recommendations(context.Background(), nil); len(got) != 0 {
		t.Fatalf("expected no recommendations without saved courses, got %v", got)
	}
}

func TestRecommendationsFromSavedCourses(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{
		"Calculus": "* Real Analysis\n* Differential Equations",
	}}
	svc := NewCourseService(gen, nil)
	got := svc.Recommendations(context.Background(), []model.Course{{CourseName: "Calculus"}})
	if len(got) != 2 || got[0] != "Real Analysis" {
		t.Fatalf("unexpected recommendations: %v", got)
	}
}

package markdown

import (
	"strings"
	"testing"
)

func TestExtractBulletsNormalizesGlyphs(t *testing.T) {
	got := ExtractBullets("• Vectors\n• Matrices")
	want := []string{"Vectors", "Matrices"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExtractBulletsSkipsNonBulletLines(t *testing.T) {
	got := ExtractBullets("Intro line\n* One\nplain text\n* Two\n  * indented is ignored")
	if len(got) != 2 || got[0] != "One" || got[1] != "Two" {
		t.Fatalf("unexpected items: %v", got)
	}
}

func TestExtractBulletsEmptyInput(t *testing.T) {
	got := ExtractBullets("")
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
}

func TestToHTMLRendersMarkdown(t *testing.T) {
	html := string(ToHTML("# Heading\n\nSome *emphasis*."))
	if !strings.Contains(html, "<h1>") {
		t.Fatalf("expected a heading in output, got %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Fatalf("expected emphasis in output, got %q", html)
	}
}

func TestToHTMLRendersFencedCode(t *testing.T) {
	html := string(ToHTML("```\nx := 1\n```"))
	if !strings.Contains(html, "<pre>") || !strings.Contains(html, "x := 1") {
		t.Fatalf("expected a code block in output, got %q", html)
	}
}

func TestToHTMLEmptyInput(t *testing.T) {
	if got := ToHTML(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

package diff

import (
	"strings"
	"testing"
)

func TestPrettyHTMLMarkers(t *testing.T) {
	got := PrettyHTML("# Hello", "# Changed")

	if !strings.Contains(got, "<del>") || !strings.Contains(got, "</del>") {
		t.Errorf("deletion markers missing: %s", got)
	}
	if !strings.Contains(got, "<ins>") || !strings.Contains(got, "</ins>") {
		t.Errorf("insertion markers missing: %s", got)
	}
	// 只输出裸标签，不带内联样式
	if strings.Contains(got, "style=") {
		t.Errorf("unexpected inline styles: %s", got)
	}
}

func TestPrettyHTMLEscapesText(t *testing.T) {
	got := PrettyHTML("a <script> b", "a <b> b")
	if strings.Contains(got, "<script>") {
		t.Errorf("content not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;") {
		t.Errorf("escaped markup missing: %s", got)
	}
}

func TestPrettyHTMLKeepsNewlines(t *testing.T) {
	got := PrettyHTML("one\ntwo", "one\nthree")
	if !strings.Contains(got, "\n") {
		t.Errorf("newlines dropped: %s", got)
	}
}

func TestHasChanges(t *testing.T) {
	if HasChanges("same", "same") {
		t.Error("identical texts reported as changed")
	}
	if !HasChanges("a", "b") {
		t.Error("different texts reported as unchanged")
	}
}

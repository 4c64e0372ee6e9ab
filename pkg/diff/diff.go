// Package diff renders the difference between two document versions.
package diff

import (
	"html"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// PrettyHTML returns an HTML fragment highlighting how new differs from
// old, with insertions wrapped in <ins> and deletions in <del>. Text is
// escaped; newlines are kept for pre-wrap rendering.
// PrettyHTML 返回高亮差异的 HTML 片段，新增用 <ins>，删除用 <del>
func PrettyHTML(old, new string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(old, new, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		text := html.EscapeString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString("<ins>")
			b.WriteString(text)
			b.WriteString("</ins>")
		case diffmatchpatch.DiffDelete:
			b.WriteString("<del>")
			b.WriteString(text)
			b.WriteString("</del>")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// HasChanges reports whether the two texts differ at all.
func HasChanges(old, new string) bool {
	return old != new
}

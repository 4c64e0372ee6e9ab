package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func newHistService(ledger *memLedgerRepo, docs *memDocRepo, at time.Time) *historyService {
	svc := NewHistoryService(ledger, docs, zap.NewNop()).(*historyService)
	svc.now = func() time.Time { return at }
	return svc
}

func TestArchiveNameFormat(t *testing.T) {
	svc := newHistService(newMemLedgerRepo(), newMemDocRepo(), time.Time{})

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "single digit date parts stay unpadded",
			at:   time.Date(2026, 3, 5, 9, 4, 7, 0, time.UTC),
			want: "note_2026-3-5_09h04m07s.txt",
		},
		{
			name: "double digit date parts",
			at:   time.Date(2026, 11, 25, 23, 59, 59, 0, time.UTC),
			want: "note_2026-11-25_23h59m59s.txt",
		},
		{
			name: "sub-second precision is dropped",
			at:   time.Date(2026, 1, 1, 0, 0, 0, 999_000_000, time.UTC),
			want: "note_2026-1-1_00h00m00s.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.archiveName("note.txt", tt.at); got != tt.want {
				t.Errorf("archiveName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArchiveNameProperties(t *testing.T) {
	svc := newHistService(newMemLedgerRepo(), newMemDocRepo(), time.Time{})

	properties := gopter.NewProperties(nil)

	properties.Property("keeps base prefix and extension for any time", prop.ForAll(
		func(base string, unix int64) bool {
			name := base + ".md"
			got := svc.archiveName(name, time.Unix(unix, 0).UTC())
			return strings.HasPrefix(got, base+"_") && strings.HasSuffix(got, ".md")
		},
		gen.RegexMatch(`[a-z][a-z0-9-]{0,20}`),
		gen.Int64Range(0, 4_102_444_800), // up to year 2100
	))

	properties.Property("same second collides, different seconds do not", prop.ForAll(
		func(unix int64, delta int64) bool {
			a := svc.archiveName("n.txt", time.Unix(unix, 0).UTC())
			b := svc.archiveName("n.txt", time.Unix(unix+delta, 0).UTC())
			if delta == 0 {
				return a == b
			}
			// different wall-clock seconds inside one day never share a name
			return a != b
		},
		gen.Int64Range(0, 4_102_444_800),
		gen.Int64Range(0, 59),
	))

	properties.TestingRun(t)
}

func TestArchiveBeforeEdit(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 5, 9, 4, 7, 0, time.UTC)

	ledger := newMemLedgerRepo()
	docs := newMemDocRepo()
	docs.docs["note.txt"] = []byte("before edit")
	svc := newHistService(ledger, docs, at)

	if err := svc.ArchiveBeforeEdit(ctx, "note.txt", "ada"); err != nil {
		t.Fatalf("ArchiveBeforeEdit failed: %v", err)
	}

	wantFile := "note_2026-3-5_09h04m07s.txt"
	if got := string(ledger.archives[wantFile]); got != "before edit" {
		t.Errorf("archived content = %q, want %q", got, "before edit")
	}

	entries := ledger.ledger["note.txt"]
	if len(entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(entries))
	}
	if entries[0].File != wantFile || entries[0].Author != "ada" {
		t.Errorf("entry = %+v, want file %q author ada", entries[0], wantFile)
	}
}

func TestArchiveBeforeEditMissingDocument(t *testing.T) {
	svc := newHistService(newMemLedgerRepo(), newMemDocRepo(), time.Now())

	err := svc.ArchiveBeforeEdit(context.Background(), "ghost.txt", "ada")
	if err == nil || !code.ErrorDocumentNotExist.Is(err) {
		t.Fatalf("error = %v, want ErrorDocumentNotExist", err)
	}
}

func TestFindEntry(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	ledger.ledger["owner.txt"] = []domain.HistoryEntry{
		{File: "owner_2026-1-1_00h00m00s.txt", Author: "ada"},
	}
	// archive exists on disk but is registered under another document
	ledger.archives["stray_2026-1-1_00h00m00s.txt"] = []byte("stray")
	svc := newHistService(ledger, newMemDocRepo(), time.Now())

	entry, err := svc.FindEntry(ctx, "owner_2026-1-1_00h00m00s.txt", "owner.txt")
	if err != nil {
		t.Fatalf("FindEntry failed: %v", err)
	}
	if entry.Author != "ada" {
		t.Errorf("author = %q, want ada", entry.Author)
	}

	_, err = svc.FindEntry(ctx, "stray_2026-1-1_00h00m00s.txt", "owner.txt")
	if err == nil || !code.ErrorHistoryNotLinked.Is(err) {
		t.Fatalf("error = %v, want ErrorHistoryNotLinked", err)
	}
}

func TestDeleteAllFor(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	ledger.ledger["gone.txt"] = []domain.HistoryEntry{
		{File: "gone_2026-1-1_00h00m00s.txt"},
		{File: "gone_2026-1-2_00h00m00s.txt"},
	}
	ledger.ledger["kept.txt"] = []domain.HistoryEntry{
		{File: "kept_2026-1-1_00h00m00s.txt"},
	}
	for file := range map[string]bool{
		"gone_2026-1-1_00h00m00s.txt": true,
		"gone_2026-1-2_00h00m00s.txt": true,
		"kept_2026-1-1_00h00m00s.txt": true,
	} {
		ledger.archives[file] = []byte("x")
	}
	svc := newHistService(ledger, newMemDocRepo(), time.Now())

	if err := svc.DeleteAllFor(ctx, "gone.txt"); err != nil {
		t.Fatalf("DeleteAllFor failed: %v", err)
	}

	if _, ok := ledger.ledger["gone.txt"]; ok {
		t.Error("ledger key gone.txt should be removed")
	}
	if _, ok := ledger.archives["gone_2026-1-1_00h00m00s.txt"]; ok {
		t.Error("archives of gone.txt should be removed")
	}
	if _, ok := ledger.archives["kept_2026-1-1_00h00m00s.txt"]; !ok {
		t.Error("archives of other documents must survive")
	}
}

func TestListForMarksCurrent(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	docs := newMemDocRepo()
	docs.docs["note.txt"] = []byte("v2")
	ledger.ledger["note.txt"] = []domain.HistoryEntry{
		{File: "note_a.txt", Author: "ada"},
		{File: "note_b.txt", Author: "ada"},
	}
	ledger.archives["note_a.txt"] = []byte("v1")
	ledger.archives["note_b.txt"] = []byte("v2")
	svc := newHistService(ledger, docs, time.Now())

	list, err := svc.ListFor(ctx, "note.txt")
	if err != nil {
		t.Fatalf("ListFor failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("entries = %d, want 2", len(list))
	}
	if list[0].Current || !list[1].Current {
		t.Errorf("current flags = %v/%v, want false/true", list[0].Current, list[1].Current)
	}
}

func TestDiffAgainstCurrent(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	docs := newMemDocRepo()
	docs.docs["note.txt"] = []byte("hello new world")
	ledger.archives["note_a.txt"] = []byte("hello old world")
	svc := newHistService(ledger, docs, time.Now())

	html, err := svc.DiffAgainstCurrent(ctx, "note.txt", "note_a.txt")
	if err != nil {
		t.Fatalf("DiffAgainstCurrent failed: %v", err)
	}
	if !strings.Contains(html, "<ins") || !strings.Contains(html, "<del") {
		t.Errorf("diff html %q should mark insertions and deletions", html)
	}

	// identical content yields no diff
	ledger.archives["note_b.txt"] = []byte("hello new world")
	html, err = svc.DiffAgainstCurrent(ctx, "note.txt", "note_b.txt")
	if err != nil {
		t.Fatalf("DiffAgainstCurrent failed: %v", err)
	}
	if html != "" {
		t.Errorf("diff of identical content = %q, want empty", html)
	}
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	for i := 0; i < 5; i++ {
		file := fmt.Sprintf("note_v%d.txt", i)
		ledger.ledger["note.txt"] = append(ledger.ledger["note.txt"], domain.HistoryEntry{File: file})
		ledger.archives[file] = []byte("x")
	}
	svc := newHistService(ledger, newMemDocRepo(), time.Now())

	pruned, err := svc.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if pruned != 3 {
		t.Errorf("pruned = %d, want 3", pruned)
	}

	entries := ledger.ledger["note.txt"]
	if len(entries) != 2 {
		t.Fatalf("remaining entries = %d, want 2", len(entries))
	}
	// the newest archives survive
	if entries[0].File != "note_v3.txt" || entries[1].File != "note_v4.txt" {
		t.Errorf("remaining = %v, want the two newest", entries)
	}
	if _, ok := ledger.archives["note_v0.txt"]; ok {
		t.Error("oldest archive should be deleted")
	}

	// zero keep disables pruning
	pruned, err = svc.Prune(ctx, 0)
	if err != nil || pruned != 0 {
		t.Errorf("Prune(0) = %d, %v, want 0, nil", pruned, err)
	}
}

// an archive that cannot be removed must stay in the ledger for retry
func TestPruneKeepsEntryWhenArchiveDeleteFails(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedgerRepo()
	for i := 0; i < 4; i++ {
		file := fmt.Sprintf("note_v%d.txt", i)
		ledger.ledger["note.txt"] = append(ledger.ledger["note.txt"], domain.HistoryEntry{File: file})
		ledger.archives[file] = []byte("x")
	}
	ledger.deleteFails = map[string]error{"note_v1.txt": errors.New("permission denied")}
	svc := newHistService(ledger, newMemDocRepo(), time.Now())

	pruned, err := svc.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}

	entries := ledger.ledger["note.txt"]
	if len(entries) != 3 {
		t.Fatalf("remaining entries = %d, want 3", len(entries))
	}
	// 删除失败的条目仍在台账中，且顺序保持
	if entries[0].File != "note_v1.txt" || entries[1].File != "note_v2.txt" || entries[2].File != "note_v3.txt" {
		t.Errorf("remaining = %v, want v1 v2 v3", entries)
	}
	if _, ok := ledger.archives["note_v1.txt"]; !ok {
		t.Error("failed-delete archive must still exist")
	}
}

package domain

import (
	"context"

	"github.com/haierkeys/file-cms-service/pkg/timex"
)

// Document is a single named content file. The extension decides how the
// view page renders it.
// Document 是单个命名内容文件，扩展名决定渲染方式。
type Document struct {
	Name    string
	Content []byte
}

// HistoryEntry records one archived snapshot of a document: the archive
// file name and the user that triggered the edit. Entries are append-only
// per document.
type HistoryEntry struct {
	File      string     `json:"file"`
	Author    string     `json:"author"`
	CreatedAt timex.Time `json:"createdAt"`
}

// Ledger maps a document name to its ordered history entries.
// Ledger 将文档名映射到有序的历史记录列表。
type Ledger map[string][]HistoryEntry

// DocumentRepository is the flat-directory document store.
type DocumentRepository interface {
	// List returns names of all directory entries with a non-empty
	// extension, in directory order.
	List(ctx context.Context) ([]string, error)
	// Read returns the raw content, or os.ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write fully overwrites the named file.
	Write(ctx context.Context, name string, content []byte) error
	// Exists reports whether the named file is present.
	Exists(ctx context.Context, name string) bool
	// Delete removes the file; a missing file is not an error.
	Delete(ctx context.Context, name string) error
}

// LedgerRepository persists the version ledger as a single serialized
// file, plus the archived snapshots next to it.
type LedgerRepository interface {
	// Load returns the ledger, empty when the backing file is absent or
	// unreadable.
	Load(ctx context.Context) (Ledger, error)
	// Save overwrites the backing file with the full ledger.
	Save(ctx context.Context, l Ledger) error
	// WriteArchive stores an archived snapshot under the history dir.
	WriteArchive(ctx context.Context, file string, content []byte) error
	// ReadArchive returns an archived snapshot's content.
	ReadArchive(ctx context.Context, file string) ([]byte, error)
	// DeleteArchive removes an archived snapshot; missing files are
	// tolerated.
	DeleteArchive(ctx context.Context, file string) error
}

package dao

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/pkg/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDao(t *testing.T) *Dao {
	t.Helper()
	root := t.TempDir()
	d, err := New(&Config{
		DataPath:        filepath.Join(root, "data"),
		HistoryPath:     filepath.Join(root, "history"),
		LedgerFile:      filepath.Join(root, "history.json"),
		CredentialsFile: filepath.Join(root, "users.json"),
	})
	require.NoError(t, err)
	return d
}

func TestNewCreatesDirectories(t *testing.T) {
	d := testDao(t)

	info, err := os.Stat(d.Config().DataPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat(d.Config().HistoryPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestDocumentRepositoryRoundTrip(t *testing.T) {
	d := testDao(t)
	repo := NewDocumentRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, "note.txt", []byte("hello")))
	assert.True(t, repo.Exists(ctx, "note.txt"))

	content, err := repo.Read(ctx, "note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	require.NoError(t, repo.Write(ctx, "note.txt", []byte("replaced")))
	content, err = repo.Read(ctx, "note.txt")
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(content))
}

func TestDocumentRepositoryReadMissing(t *testing.T) {
	d := testDao(t)
	repo := NewDocumentRepository(d)

	_, err := repo.Read(context.Background(), "ghost.txt")
	assert.True(t, os.IsNotExist(err))
}

func TestDocumentRepositoryListSkipsExtensionless(t *testing.T) {
	d := testDao(t)
	repo := NewDocumentRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, "a.txt", []byte("a")))
	require.NoError(t, repo.Write(ctx, "b.md", []byte("b")))
	require.NoError(t, os.WriteFile(filepath.Join(d.Config().DataPath, "README"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(d.Config().DataPath, "sub.dir"), os.ModePerm))

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.md"}, names)
}

func TestDocumentRepositoryDeleteTolerant(t *testing.T) {
	d := testDao(t)
	repo := NewDocumentRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, "gone.txt", []byte("x")))
	require.NoError(t, repo.Delete(ctx, "gone.txt"))
	assert.False(t, repo.Exists(ctx, "gone.txt"))

	// second delete is a no-op
	assert.NoError(t, repo.Delete(ctx, "gone.txt"))
}

func TestDocumentRepositoryPathEscape(t *testing.T) {
	d := testDao(t)
	repo := NewDocumentRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.Write(ctx, "../escape.txt", []byte("x")))
	assert.True(t, repo.Exists(ctx, "escape.txt"))
	_, err := os.Stat(filepath.Join(d.Config().DataPath, "..", "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLedgerRepositoryLoadMissing(t *testing.T) {
	d := testDao(t)
	repo := NewLedgerRepository(d)

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestLedgerRepositoryLoadCorrupt(t *testing.T) {
	d := testDao(t)
	repo := NewLedgerRepository(d)

	require.NoError(t, os.WriteFile(d.Config().LedgerFile, []byte("{not json"), 0644))

	ledger, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestLedgerRepositoryRoundTrip(t *testing.T) {
	d := testDao(t)
	repo := NewLedgerRepository(d)
	ctx := context.Background()

	in := domain.Ledger{
		"note.txt": {
			{File: "note_2026-3-1_09h15m00s.txt", Author: "ada", CreatedAt: timex.Now()},
		},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out["note.txt"], 1)
	assert.Equal(t, "note_2026-3-1_09h15m00s.txt", out["note.txt"][0].File)
	assert.Equal(t, "ada", out["note.txt"][0].Author)
}

func TestLedgerRepositoryArchives(t *testing.T) {
	d := testDao(t)
	repo := NewLedgerRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.WriteArchive(ctx, "note_2026-3-1_09h15m00s.txt", []byte("old")))

	content, err := repo.ReadArchive(ctx, "note_2026-3-1_09h15m00s.txt")
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	require.NoError(t, repo.DeleteArchive(ctx, "note_2026-3-1_09h15m00s.txt"))
	_, err = repo.ReadArchive(ctx, "note_2026-3-1_09h15m00s.txt")
	assert.True(t, os.IsNotExist(err))

	// deleting an already-removed archive is tolerated
	assert.NoError(t, repo.DeleteArchive(ctx, "note_2026-3-1_09h15m00s.txt"))
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	d := testDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	creds, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)

	creds["ada"] = "$2a$10$hash"
	require.NoError(t, repo.Save(ctx, creds))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", out["ada"])
}

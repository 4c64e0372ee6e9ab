package service

import (
	"context"
	"strings"
	"testing"

	"github.com/haierkeys/file-cms-service/internal/dto"
	"github.com/haierkeys/file-cms-service/internal/markdown"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"go.uber.org/zap"
)

func newDocService(repo *memDocRepo) DocumentService {
	return NewDocumentService(repo, markdown.NewRenderer(), zap.NewNop(), DefaultServiceConfig())
}

func TestDocumentCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		existing map[string][]byte
		reqName  string
		wantErr  *code.Code
	}{
		{
			name:    "blank name",
			reqName: "   ",
			wantErr: code.ErrorDocumentNameRequired,
		},
		{
			name:    "empty name",
			reqName: "",
			wantErr: code.ErrorDocumentNameRequired,
		},
		{
			name:    "missing extension",
			reqName: "notes",
			wantErr: code.ErrorDocumentBadExtension,
		},
		{
			name:    "disallowed extension",
			reqName: "notes.html",
			wantErr: code.ErrorDocumentBadExtension,
		},
		{
			name:     "already exists",
			existing: map[string][]byte{"notes.txt": []byte("x")},
			reqName:  "notes.txt",
			wantErr:  code.ErrorDocumentAlreadyExists,
		},
		{
			name:    "valid txt",
			reqName: "notes.txt",
		},
		{
			name:    "valid md uppercase extension",
			reqName: "notes.MD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemDocRepo()
			for k, v := range tt.existing {
				repo.docs[k] = v
			}
			svc := newDocService(repo)

			err := svc.Create(ctx, &dto.DocumentCreateRequest{Name: tt.reqName})
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr.Is(err) {
					t.Fatalf("Create(%q) error = %v, want %v", tt.reqName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.reqName, err)
			}
			if !repo.Exists(ctx, tt.reqName) {
				t.Errorf("Create(%q) did not write the file", tt.reqName)
			}
		})
	}
}

func TestDocumentRender(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		file        string
		content     string
		wantType    string
		wantContain string
		wantEmpty   bool
	}{
		{
			name:        "markdown to html",
			file:        "page.md",
			content:     "# Title",
			wantType:    ContentTypeHTML,
			wantContain: "<h1",
		},
		{
			name:        "plain text untouched",
			file:        "page.txt",
			content:     "# Title",
			wantType:    ContentTypePlain,
			wantContain: "# Title",
		},
		{
			name:      "unknown extension renders nothing",
			file:      "page.log",
			content:   "anything",
			wantType:  ContentTypePlain,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemDocRepo()
			repo.docs[tt.file] = []byte(tt.content)
			svc := newDocService(repo)

			content, cType, err := svc.Render(ctx, tt.file)
			if err != nil {
				t.Fatalf("Render(%q) failed: %v", tt.file, err)
			}
			if cType != tt.wantType {
				t.Errorf("content type = %q, want %q", cType, tt.wantType)
			}
			if tt.wantEmpty {
				if len(content) != 0 {
					t.Errorf("content = %q, want empty", content)
				}
				return
			}
			if !strings.Contains(string(content), tt.wantContain) {
				t.Errorf("content = %q, want it to contain %q", content, tt.wantContain)
			}
		})
	}
}

func TestDocumentGetMissing(t *testing.T) {
	svc := newDocService(newMemDocRepo())

	_, err := svc.Get(context.Background(), "ghost.txt")
	if err == nil || !code.ErrorDocumentNotExist.Is(err) {
		t.Fatalf("Get(ghost.txt) error = %v, want ErrorDocumentNotExist", err)
	}
	if !strings.Contains(err.Error(), "ghost.txt") {
		t.Errorf("error message %q should name the document", err.Error())
	}
}

func TestDocumentWriteOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newMemDocRepo()
	svc := newDocService(repo)

	// write does not require the file to exist beforehand
	if err := svc.Write(ctx, "fresh.txt", "v1"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := svc.Write(ctx, "fresh.txt", "v2"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := string(repo.docs["fresh.txt"]); got != "v2" {
		t.Errorf("content = %q, want v2", got)
	}
}

func TestDocumentDuplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing source", func(t *testing.T) {
		svc := newDocService(newMemDocRepo())
		err := svc.Duplicate(ctx, "ghost.txt", &dto.DocumentDuplicateRequest{Name: "copy.txt"})
		if err == nil || !code.ErrorDocumentNotExist.Is(err) {
			t.Fatalf("error = %v, want ErrorDocumentNotExist", err)
		}
	})

	t.Run("target name validated", func(t *testing.T) {
		repo := newMemDocRepo()
		repo.docs["orig.txt"] = []byte("body")
		svc := newDocService(repo)
		err := svc.Duplicate(ctx, "orig.txt", &dto.DocumentDuplicateRequest{Name: "copy.html"})
		if err == nil || !code.ErrorDocumentBadExtension.Is(err) {
			t.Fatalf("error = %v, want ErrorDocumentBadExtension", err)
		}
	})

	t.Run("copies content", func(t *testing.T) {
		repo := newMemDocRepo()
		repo.docs["orig.txt"] = []byte("body")
		svc := newDocService(repo)
		if err := svc.Duplicate(ctx, "orig.txt", &dto.DocumentDuplicateRequest{Name: "copy.md"}); err != nil {
			t.Fatalf("Duplicate failed: %v", err)
		}
		if got := string(repo.docs["copy.md"]); got != "body" {
			t.Errorf("copy content = %q, want body", got)
		}
	})
}

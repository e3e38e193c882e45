package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

func multipartHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="resume"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	if err != nil {
		t.Fatalf("expected part created, got %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("expected content written, got %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("expected writer closed, got %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/api/applications", &buf)
	if err != nil {
		t.Fatalf("expected request built, got %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("expected multipart form parsed, got %v", err)
	}
	files := req.MultipartForm.File["resume"]
	if len(files) != 1 {
		t.Fatalf("expected one file, got %d", len(files))
	}
	return files[0]
}

func TestStoreSave_PDF(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected store created, got %v", err)
	}
	header := multipartHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	stored, err := store.Save(header)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.HasPrefix(stored.URL, "/uploads/") {
		t.Fatalf("expected served URL, got %q", stored.URL)
	}
	if strings.Contains(stored.URL, "resume.pdf") {
		t.Fatalf("expected opaque stored name, got %q", stored.URL)
	}
	if !strings.HasSuffix(stored.URL, ".pdf") {
		t.Fatalf("expected pdf extension preserved, got %q", stored.URL)
	}
	if stored.Name != "resume.pdf" {
		t.Fatalf("expected original name kept as metadata, got %q", stored.Name)
	}

	onDisk := filepath.Join(store.Dir(), strings.TrimPrefix(stored.URL, "/uploads/"))
	content, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("expected stored file on disk, got %v", err)
	}
	if string(content) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected stored content %q", content)
	}
}

func TestStoreSave_RejectsBadMimeType(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected store created, got %v", err)
	}
	header := multipartHeader(t, "resume.exe", "application/octet-stream", []byte("MZ"))

	if _, err := store.Save(header); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStoreSave_RejectsMismatchedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected store created, got %v", err)
	}
	header := multipartHeader(t, "resume.sh", "application/pdf", []byte("echo"))

	if _, err := store.Save(header); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStoreSave_RejectsOversize(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected store created, got %v", err)
	}
	header := multipartHeader(t, "resume.pdf", "application/pdf", bytes.Repeat([]byte("a"), MaxResumeBytes+1))

	if _, err := store.Save(header); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStoreSave_MissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("expected store created, got %v", err)
	}
	if _, err := store.Save(nil); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

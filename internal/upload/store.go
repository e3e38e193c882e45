package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

// MaxResumeBytes is the ceiling on a single resume upload.
const MaxResumeBytes = 5 << 20

var allowedMimeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// StoredFile describes a resume written to disk. The stored name is an opaque
// random identifier; the client's original filename survives only as metadata.
type StoredFile struct {
	URL      string
	Name     string
	Size     int64
	MimeType string
}

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save validates and writes one multipart resume. Only PDF and Word documents
// up to MaxResumeBytes are accepted.
func (s *Store) Save(header *multipart.FileHeader) (*StoredFile, error) {
	if header == nil {
		return nil, common.NewError(common.CodeValidation, "Please upload your resume", nil)
	}
	if header.Size > MaxResumeBytes {
		return nil, common.NewError(common.CodeValidation, "Resume must be 5MB or smaller", nil)
	}

	mimeType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	expectedExt, mimeOK := allowedMimeTypes[mimeType]
	if !mimeOK || !allowedExtensions[ext] {
		return nil, common.NewError(common.CodeValidation, "Invalid file type. Only PDF and Word documents are allowed.", nil)
	}
	if ext == "" {
		ext = expectedExt
	}

	src, err := header.Open()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read uploaded resume", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to store resume", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, MaxResumeBytes+1))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to store resume", err)
	}
	if written > MaxResumeBytes {
		_ = os.Remove(filepath.Join(s.dir, name))
		return nil, common.NewError(common.CodeValidation, "Resume must be 5MB or smaller", nil)
	}

	return &StoredFile{
		URL:      "/uploads/" + name,
		Name:     header.Filename,
		Size:     written,
		MimeType: mimeType,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

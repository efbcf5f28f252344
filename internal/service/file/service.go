package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/storage"
)

var allowedImageExts = []string{".jpg", ".jpeg", ".png"}

// FileService stores uploaded evidence photos and hands back the stable
// reference path the mobile app sends with check-in/check-out.
type FileService interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
	RemoveImage(ctx context.Context, path string) error
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

// UploadImage implements FileService. Filenames get a uuid prefix so
// repeated uploads of the same camera filename never collide.
func (s *FileServiceImpl) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range allowedImageExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("invalid file type %q: only jpg, jpeg, png allowed", ext)
	}

	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	path, err := s.storage.Upload(ctx, file, storedName)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.storage.PublicURL(path), nil
}

// RemoveImage implements FileService. It accepts the public path handed out
// by UploadImage; a path that is already gone is not an error.
func (s *FileServiceImpl) RemoveImage(ctx context.Context, path string) error {
	name := filepath.Base(path)

	exists, err := s.storage.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check image: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.storage.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

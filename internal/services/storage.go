package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService writes client profile pictures to the upload directory.
type StorageService struct {
	uploadDir string
}

func NewStorageService() *StorageService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./client-profiles"
	}
	return &StorageService{uploadDir: dir}
}

// Dir returns the upload directory, for static file serving.
func (s *StorageService) Dir() string {
	return s.uploadDir
}

// EnsureDir creates the upload directory when missing. Called at startup.
func (s *StorageService) EnsureDir() error {
	return os.MkdirAll(s.uploadDir, 0o755)
}

// SaveUpload stores a multipart file upload and returns the stored filename.
func (s *StorageService) SaveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

// SaveCameraCapture stores a base64 data-URL captured from the browser camera
// and returns the stored filename.
func (s *StorageService) SaveCameraCapture(dataURL string) (string, error) {
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid image data")
	}

	imageBytes, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	filename := "camera_" + uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), imageBytes, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidFileFormat = errors.New("invalid file format. only .jpg, .jpeg, .png, .gif, .webp are allowed")
	ErrFileSizeExceeded  = errors.New("file size exceeds limit")
)

const MaxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// UploadService stores product images on local disk
type UploadService interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
}

type uploadService struct {
	uploadsDir    string
	publicBaseURL string
}

// NewUploadService creates a new UploadService. Saved files are reachable
// under publicBaseURL + "/uploads/".
func NewUploadService(uploadsDir, publicBaseURL string) UploadService {
	return &uploadService{uploadsDir: uploadsDir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// SaveImage writes the upload under a random name and returns its public URL
func (s *uploadService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxImageSize {
		return "", ErrFileSizeExceeded
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return "", ErrInvalidFileFormat
	}

	if err := os.MkdirAll(s.uploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := uuid.NewString() + ext
	filePath := filepath.Join(s.uploadsDir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return s.publicBaseURL + "/uploads/" + fileName, nil
}

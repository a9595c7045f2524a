package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/utils"
	"github.com/vaantra/vaantra-server/models"
)

// uploadFileStorage is the local-disk implementation of [UploadFileStorage].
// Files live under a single upload directory and are expected to be removed
// by the query orchestrator once the ask completes, so the directory never
// accumulates state beyond in-flight requests.
type uploadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadFileStorage constructs an [UploadFileStorage] writing into dir.
// The directory is not created until the first upload.
func NewUploadFileStorage(dir string, logger *logger.Logger) UploadFileStorage {
	logger.Debug().Str("dir", dir).Msg("creating upload file storage")
	return &uploadFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// Save writes r to disk under a collision-resistant random name of the form
// <16-hex-random>-<original-basename><ext>, creating the upload directory
// lazily. A write failure removes the partial file before returning.
func (s *uploadFileStorage) Save(ctx context.Context, originalName, mimeType string, r io.Reader) (models.UploadedFile, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.Save").Msg("error creating upload dir")
		return models.UploadedFile{}, fmt.Errorf("error creating upload dir: %w", err)
	}

	storageName, err := utils.RandomStorageName(originalName)
	if err != nil {
		return models.UploadedFile{}, err
	}

	path := filepath.Join(s.dir, storageName)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.Save").Msg("error creating upload file")
		return models.UploadedFile{}, fmt.Errorf("error creating upload file: %w", err)
	}

	size, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// do not leave partial files behind
		_ = os.Remove(path)
		log.Err(err).Str("func", "*uploadFileStorage.Save").Msg("error writing upload file")
		return models.UploadedFile{}, fmt.Errorf("error writing upload file: %w", err)
	}

	return models.UploadedFile{
		OriginalName: originalName,
		Extension:    strings.ToLower(filepath.Ext(originalName)),
		StorageName:  storageName,
		Path:         path,
		MimeType:     mimeType,
		Size:         size,
	}, nil
}

// Remove deletes a previously saved file. A file that is already gone is
// treated as removed.
func (s *uploadFileStorage) Remove(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "*uploadFileStorage.Remove").Str("path", path).Msg("error removing upload file")
		return fmt.Errorf("error removing upload file: %w", err)
	}

	return nil
}

package services

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/apetrov/my-blog-be/internal/util"
)

// BackupServiceProvider defines the interface for backup services.
type BackupServiceProvider interface {
	CreateSnapshot() (string, error)
}

// BackupService zips the data directory into timestamped archives.
type BackupService struct {
	dataDir    string
	backupPath string
	clock      util.Clock
}

// NewBackupService creates a new BackupService.
func NewBackupService(dataDir, backupPath string, clock util.Clock) *BackupService {
	return &BackupService{dataDir: dataDir, backupPath: backupPath, clock: clock}
}

// CreateSnapshot archives every file under the data directory and returns
// the archive path.
func (s *BackupService) CreateSnapshot() (string, error) {
	if err := os.MkdirAll(s.backupPath, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.zip", s.clock.Now().Format("20060102150405"), uuid.New().String())
	target := filepath.Join(s.backupPath, name)

	backupFile, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer backupFile.Close()

	zipWriter := zip.NewWriter(backupFile)
	defer zipWriter.Close()

	err = filepath.Walk(s.dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(s.dataDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		if info.IsDir() {
			_, err = zipWriter.Create(relPath + "/")
			return err
		}
		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(writer, src)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("archive data dir: %w", err)
	}

	return target, nil
}

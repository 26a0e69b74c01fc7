package gateway

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"till-reconciliation/internal/domain"
)

const (
	dirPerm    fs.FileMode = 0o755
	reportPerm fs.FileMode = 0o644
)

// FileReportRepository implements the ReportRepository interface on the local file system.
type FileReportRepository struct {
	dir       string
	overwrite bool
}

// ReportOption configures a FileReportRepository.
type ReportOption func(*FileReportRepository)

// WithOverwrite controls whether an existing report for the same date is replaced.
func WithOverwrite(overwrite bool) ReportOption {
	return func(r *FileReportRepository) {
		r.overwrite = overwrite
	}
}

// NewFileReportRepository creates a repository rooted at dir. Reports are overwritten
// unless WithOverwrite(false) is given.
func NewFileReportRepository(dir string, opts ...ReportOption) *FileReportRepository {
	r := &FileReportRepository{dir: dir, overwrite: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReportPath returns <dir>/<YYYY>/<MM>/Cash_Up_<DD>-<MM>-<YYYY>.txt.
func ReportPath(dir string, date time.Time) string {
	return filepath.Join(dir, date.Format("2006"), date.Format("01"), "Cash_Up_"+date.Format("02-01-2006")+".txt")
}

// SaveReport writes content for date and returns the file path.
// The file is written to a temporary name first and then moved into place, so
// concurrent writers for the same date never leave a mixed file behind.
func (r *FileReportRepository) SaveReport(ctx context.Context, date time.Time, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if date.IsZero() {
		return "", fmt.Errorf("%w: report date is missing", domain.ErrPersistence)
	}

	path := ReportPath(r.dir, date)
	monthDir := filepath.Dir(path)
	if err := os.MkdirAll(monthDir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %w", domain.ErrPersistence, monthDir, err)
	}

	tmpPath, err := writeTemp(monthDir, content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	defer os.Remove(tmpPath)

	if r.overwrite {
		if err := os.Rename(tmpPath, path); err != nil {
			return "", fmt.Errorf("%w: failed to write %s: %w", domain.ErrPersistence, path, err)
		}
		return path, nil
	}

	// Link fails if path exists, which makes the no-overwrite check atomic.
	if err := os.Link(tmpPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrReportExists, path)
		}
		return "", fmt.Errorf("%w: failed to write %s: %w", domain.ErrPersistence, path, err)
	}
	return path, nil
}

func writeTemp(dir, content string) (string, error) {
	file, err := os.CreateTemp(dir, ".cash_up_*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := file.Name()

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := file.Chmod(reportPerm); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	return tmpPath, nil
}

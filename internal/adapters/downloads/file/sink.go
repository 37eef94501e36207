package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/gabriel-vasile/mimetype"
)

const (
	downloadsDirMode  = 0o755
	downloadFileMode  = 0o644
	maxNameCollisions = 10000
)

// Sink writes downloaded files into one directory without ever overwriting
// an existing file.
type Sink struct {
	dir string
}

var _ ports.DownloadSink = (*Sink)(nil)

func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// DefaultDir is ~/Downloads, or the working directory when the home
// directory cannot be resolved.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, "Downloads")
}

func (s *Sink) Save(ctx context.Context, filename string, data []byte) (domain.Download, error) {
	if err := ctx.Err(); err != nil {
		return domain.Download{}, err
	}

	name, err := cleanName(filename)
	if err != nil {
		return domain.Download{}, err
	}

	detected := mimetype.Detect(data)
	if filepath.Ext(name) == "" {
		name += detected.Extension()
	}

	if err := os.MkdirAll(s.dir, downloadsDirMode); err != nil {
		return domain.Download{}, fmt.Errorf("create downloads directory: %w", err)
	}

	path, file, err := s.create(name)
	if err != nil {
		return domain.Download{}, err
	}

	if _, err := file.Write(data); err != nil {
		err = errors.Join(err, file.Close())
		_ = os.Remove(path)
		return domain.Download{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return domain.Download{}, fmt.Errorf("close %s: %w", path, err)
	}

	return domain.Download{
		Path:        path,
		Size:        int64(len(data)),
		ContentType: detected.String(),
	}, nil
}

// create opens the first free name among "name.ext", "name (1).ext",
// "name (2).ext" and so on. O_EXCL keeps concurrent saves from sharing a
// path.
func (s *Sink) create(name string) (string, *os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; n <= maxNameCollisions; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}

		path := filepath.Join(s.dir, candidate)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, downloadFileMode)
		if err == nil {
			return path, file, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", nil, fmt.Errorf("create %s: %w", path, err)
		}
	}

	return "", nil, fmt.Errorf("no free file name for %q in %s", name, s.dir)
}

func cleanName(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(strings.ReplaceAll(filename, "\\", "/")))
	switch name {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: file name is required", domain.ErrInvalidArguments)
	}
	return name, nil
}

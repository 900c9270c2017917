package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const backupTimeFormat = "2006-01-02-15-04-05.000"

// RotatorOptions configures a LogRotator.
type RotatorOptions struct {
	Dir        string
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.Writer over a log file that is moved aside once it
// grows past MaxSizeMB. Backups past MaxBackups or MaxAgeDays are removed.
type LogRotator struct {
	mu   sync.Mutex
	opts RotatorOptions

	maxSize int64
	maxAge  time.Duration

	file *os.File
	size int64
	now  func() time.Time
}

// NewLogRotator opens (or creates) Dir/Name for appending.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.Name == "" {
		opts.Name = "tripbook.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &LogRotator{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:  time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		now:     time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.opts.Dir, r.opts.Name)
}

func (r *LogRotator) open() error {
	path := r.Path()
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: close log file: %v\n", err)
	}
	r.file = nil

	backup := r.Path() + "." + r.now().Format(backupTimeFormat)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// prune removes backups older than MaxAgeDays, then the oldest ones beyond
// MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return
	}

	prefix := r.opts.Name + "."
	now := r.now()
	var backups []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.opts.Dir, entry.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(filepath.Join(r.opts.Dir, info.Name()))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/stefanvanburen/pols/internal/config"
	"golang.org/x/sync/errgroup"
)

// ScanStats summarizes one workspace scan.
type ScanStats struct {
	Root     string
	Loaded   int // newly stored documents
	Skipped  int // already known, usually open in an editor
	Excluded int // excluded by glob or filter
	Failed   int // unreadable; stored with empty text
}

func (s ScanStats) String() string {
	return fmt.Sprintf("%s: %d loaded, %d skipped, %d excluded, %d unreadable",
		s.Root, s.Loaded, s.Skipped, s.Excluded, s.Failed)
}

// ReadText reads the file at path for loading into a Registry. On error the
// text is empty.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Scan walks root and loads every file that passes the exclude globs and the
// filter of ws into reg. Files already present in reg are left alone. Files
// are read and parsed in parallel.
func Scan(ctx context.Context, reg *Registry, root string, ws config.Workspace, logger *slog.Logger) (ScanStats, error) {
	stats := ScanStats{Root: root}
	filter, err := config.NewFileFilter(ws.Filter)
	if err != nil {
		return stats, err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		if ws.Excluded(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Excluded++
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logger.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		ok, err := filter.Match(path, info.Size())
		if err != nil {
			logger.Warn("filter failed", "path", path, "err", err)
		}
		if !ok {
			stats.Excluded++
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", root, err)
	}

	var loaded, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := ReadText(path)
			if err != nil {
				logger.Warn("read failed, loading empty text", "path", path, "err", err)
				failed.Add(1)
			}
			if reg.Load(URIFromPath(path), text) {
				loaded.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	stats.Loaded, stats.Skipped, stats.Failed = int(loaded.Load()), int(skipped.Load()), int(failed.Load())
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", root, err)
	}
	return stats, nil
}

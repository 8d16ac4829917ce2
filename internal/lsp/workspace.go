package lsp

import (
	"context"
	"fmt"

	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// initialized loads every workspace root in the background. Requests that
// need the whole workspace wait for it with waitForScan.
func (s *server) initialized(ctx context.Context, conn *jsonrpc2.Conn) {
	s.mu.Lock()
	if s.scanDone != nil || s.closed {
		s.mu.Unlock()
		return
	}
	done := make(chan struct{})
	s.scanDone = done
	ctx, s.stopScan = context.WithCancel(ctx)
	roots, cfg := s.roots, s.cfg
	s.background.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.background.Done()
		defer close(done)
		if cfg.Workspace.Watch && len(roots) > 0 {
			s.watch(roots, cfg.Workspace)
		}
		for _, root := range roots {
			s.scan(ctx, conn, root, cfg.Workspace)
		}
	}()
}

func (s *server) scan(ctx context.Context, conn *jsonrpc2.Conn, root string, ws config.Workspace) {
	stats, err := workspace.Scan(ctx, s.reg, root, ws, s.logger)
	if ctx.Err() != nil {
		s.logger.Debug("workspace scan stopped", "root", root)
		return
	}
	if err != nil {
		s.logger.Warn("workspace scan failed", "root", root, "error", err)
		s.logMessage(ctx, conn, protocol.MessageTypeWarning, fmt.Sprintf("%s: scan failed: %v", serverName, err))
		return
	}
	s.logger.Info("workspace scanned",
		"root", root,
		"loaded", stats.Loaded,
		"skipped", stats.Skipped,
		"excluded", stats.Excluded,
		"unreadable", stats.Failed,
	)
	s.logMessage(ctx, conn, protocol.MessageTypeInfo, fmt.Sprintf("%s: scanned %s", serverName, stats))
}

func (s *server) watch(roots []string, ws config.Workspace) {
	w, err := workspace.NewWatcher(s.reg, ws, s.logger, func(c workspace.Change) {
		s.logger.Debug("file changed on disk", "uri", c.URI, "removed", c.Removed)
	})
	if err != nil {
		s.logger.Warn("file watching disabled", "error", err)
		return
	}
	for _, root := range roots {
		if err := w.Add(root); err != nil {
			s.logger.Warn("cannot watch root", "root", root, "error", err)
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = w.Close()
		return
	}
	s.watcher = w
	s.mu.Unlock()
}

// waitForScan blocks until the initial workspace scan is over. Before
// initialized there is nothing to wait for.
func (s *server) waitForScan(ctx context.Context) {
	s.mu.Lock()
	done := s.scanDone
	s.mu.Unlock()
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// didChangeWatchedFiles applies file events reported by the client. Open
// documents belong to the editor and are left alone.
func (s *server) didChangeWatchedFiles(req *jsonrpc2.Request) error {
	var params protocol.DidChangeWatchedFilesParams
	if err := req.UnmarshalParams(&params); err != nil {
		return err
	}

	for _, change := range params.Changes {
		uri := workspace.NormalizeURI(change.URI)
		switch change.Type {
		case protocol.FileChangeTypeCreated, protocol.FileChangeTypeChanged:
			path := workspace.PathFromURI(uri)
			if path == "" {
				continue
			}
			text, err := workspace.ReadText(path)
			if err != nil {
				s.logger.Warn("reading changed file", "uri", uri, "error", err)
				continue
			}
			s.reg.Reload(uri, text)
		case protocol.FileChangeTypeDeleted:
			s.reg.Unload(uri)
		}
	}
	return nil
}

package lsp

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *server) didOpen(req *jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := req.UnmarshalParams(&params); err != nil {
		return err
	}

	doc := s.reg.Upsert(workspace.NormalizeURI(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.logger.Debug("opened document", "uri", doc.URI, "version", doc.Version)
	return nil
}

func (s *server) didChange(req *jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := req.UnmarshalParams(&params); err != nil {
		return err
	}

	uri := workspace.NormalizeURI(params.TextDocument.URI)
	// We use full sync mode, so the last whole-document change is the text.
	text, ok := fullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("received no full-text change for %q", uri)
	}
	s.reg.Upsert(uri, text, params.TextDocument.Version)
	return nil
}

func fullText(changes []any) (string, bool) {
	var (
		text  string
		found bool
	)
	for _, change := range changes {
		switch v := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = v.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, found = v.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if v.Range == nil {
				text, found = v.Text, true
			}
		case *protocol.TextDocumentContentChangeEvent:
			if v.Range == nil {
				text, found = v.Text, true
			}
		case map[string]any:
			if _, partial := v["range"]; !partial {
				if t, ok := v["text"].(string); ok {
					text, found = t, true
				}
			}
		}
	}
	return text, found
}

// didClose hands a closed document back to the disk: a file inside the
// workspace reverts to its saved text, anything else is forgotten.
func (s *server) didClose(req *jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := req.UnmarshalParams(&params); err != nil {
		return err
	}

	uri := workspace.NormalizeURI(params.TextDocument.URI)
	if path := workspace.PathFromURI(uri); path != "" && s.inWorkspace(path) {
		text, err := workspace.ReadText(path)
		if err == nil {
			s.reg.Revert(uri, text)
			return nil
		}
		s.logger.Debug("closed document is gone from disk", "uri", uri, "error", err)
	}
	s.reg.Remove(uri)
	return nil
}

// inWorkspace reports whether path lies under a workspace root and is not
// excluded.
func (s *server) inWorkspace(path string) bool {
	s.mu.Lock()
	roots, ws := s.roots, s.cfg.Workspace
	s.mu.Unlock()
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return !ws.Excluded(filepath.ToSlash(rel))
	}
	return false
}

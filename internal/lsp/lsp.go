// Package lsp implements a language server for PowerOn specfiles.
//
// The main entry-point is the Serve() function, which creates a new LSP server
// communicating over stdin/stdout.
package lsp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const serverName = "pols"

// Options configures a server. The zero value is ready to use.
type Options struct {
	// Config, when set, is used as is. Otherwise the server looks for a
	// pols.toml in the first workspace root and falls back to the defaults.
	Config *config.Config
	Logger *slog.Logger
	// Version is reported to the client.
	Version string
}

// Serve starts the LSP server, communicating over stdin/stdout.
// It blocks until the connection is closed.
func Serve(ctx context.Context, opts Options) error {
	return ServeStream(ctx, stdinout{}, opts)
}

// stdinout wraps stdin/stdout into a ReadWriteCloser.
type stdinout struct{}

func (stdinout) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdinout) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdinout) Close() error                { return os.Stdout.Close() }

// ServeStream starts the LSP server over the given stream.
// Exposed for testing.
func ServeStream(ctx context.Context, rwc io.ReadWriteCloser, opts Options) error {
	s := newServer(opts)
	conn := jsonrpc2.NewConn(ctx, rwc, jsonrpc2.HandlerFunc(s.handle), jsonrpc2.WithLogger(s.logger))
	conn.Wait()
	s.close()
	return nil
}

// server holds all of the LSP server's mutable state. Documents and trees
// live in the registry, which has its own locks; mu guards the rest.
type server struct {
	logger  *slog.Logger
	version string
	fixed   *config.Config
	reg     *workspace.Registry

	mu       sync.Mutex
	cfg      config.Config
	roots    []string
	scanDone chan struct{} // closed when the initial scan finishes; nil before initialized
	stopScan context.CancelFunc
	watcher  *workspace.Watcher
	closed   bool

	background sync.WaitGroup // scan and watcher setup started by initialized
}

func newServer(opts Options) *server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &server{
		logger:  logger,
		version: opts.Version,
		fixed:   opts.Config,
		reg:     workspace.NewRegistry(logger),
		cfg:     config.Default(),
	}
}

func (s *server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	s.logger.Debug("handling message", "method", req.Method, "notification", req.Notif)
	switch req.Method {
	case "initialize":
		return s.initialize(req)
	case "initialized":
		s.initialized(ctx, conn)
		return nil, nil
	case "shutdown":
		s.close()
		return nil, nil
	case "exit":
		s.close()
		return nil, conn.Close()
	case "$/cancelRequest", "$/setTrace", "textDocument/didSave":
		return nil, nil
	case "textDocument/didOpen":
		return nil, s.didOpen(req)
	case "textDocument/didChange":
		return nil, s.didChange(req)
	case "textDocument/didClose":
		return nil, s.didClose(req)
	case "workspace/didChangeWatchedFiles":
		return nil, s.didChangeWatchedFiles(req)
	case "textDocument/definition":
		return s.definition(ctx, req)
	case "textDocument/documentSymbol":
		return s.documentSymbol(ctx, req)
	case "textDocument/completion":
		return s.completion(req)
	case "textDocument/hover":
		return s.hover(req)
	default:
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("method not supported: %s", req.Method),
		}
	}
}

func (s *server) initialize(req *jsonrpc2.Request) (any, error) {
	var params protocol.InitializeParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}

	roots := workspaceRoots(params)
	cfg := s.loadConfig(roots)
	s.mu.Lock()
	s.roots = roots
	s.cfg = cfg
	s.mu.Unlock()
	s.logger.Info("initialized workspace", "roots", roots, "include_depth", cfg.Resolve.IncludeDepth)

	openClose := true
	syncKind := protocol.TextDocumentSyncKindFull
	var version *string
	if s.version != "" {
		version = &s.version
	}
	return protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: &openClose,
				Change:    &syncKind,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: triggerCharacters,
			},
			HoverProvider:          true,
			DefinitionProvider:     true,
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: version,
		},
	}, nil
}

// workspaceRoots returns the local directories named by the client, in the
// order given. Workspace folders take precedence over the legacy root.
func workspaceRoots(params protocol.InitializeParams) []string {
	var roots []string
	add := func(uri string) {
		if path := workspace.PathFromURI(uri); path != "" && !slices.Contains(roots, path) {
			roots = append(roots, path)
		}
	}
	for _, folder := range params.WorkspaceFolders {
		add(folder.URI)
	}
	if len(roots) == 0 && params.RootURI != nil {
		add(*params.RootURI)
	}
	if len(roots) == 0 && params.RootPath != nil && *params.RootPath != "" {
		roots = append(roots, *params.RootPath)
	}
	return roots
}

func (s *server) loadConfig(roots []string) config.Config {
	if s.fixed != nil {
		return *s.fixed
	}
	if len(roots) == 0 {
		return config.Default()
	}
	cfg, path, err := config.Find(roots[0])
	if err != nil {
		s.logger.Warn("ignoring invalid configuration", "error", err)
		return config.Default()
	}
	if path != "" {
		s.logger.Info("loaded configuration", "path", path)
	}
	return cfg
}

func (s *server) includeDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Resolve.IncludeDepth
}

// close stops the watcher. A watcher started afterwards is closed at once.
// close stops the background scan and the watcher and waits for both.
func (s *server) close() {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.closed = true
	stop := s.stopScan
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
	if w != nil {
		if err := w.Close(); err != nil {
			s.logger.Warn("closing watcher", "error", err)
		}
	}
	s.background.Wait()
}

func (s *server) logMessage(ctx context.Context, conn *jsonrpc2.Conn, typ protocol.MessageType, msg string) {
	if err := conn.Notify(ctx, "window/logMessage", protocol.LogMessageParams{Type: typ, Message: msg}); err != nil {
		s.logger.Debug("sending log message", "error", err)
	}
}

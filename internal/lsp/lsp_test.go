package lsp_test

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/lsp"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// setupLSPServer creates and initializes an LSP server for testing, with
// root as its only workspace folder.
func setupLSPServer(t *testing.T, root string, opts lsp.Options) *jsonrpc2.Conn {
	t.Helper()
	ctx := t.Context()

	// Create a pipe: the server reads/writes one end, the client the other.
	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() {
		_ = serverConn.Close()
		_ = clientConn.Close()
	})

	go func() {
		_ = lsp.ServeStream(ctx, serverConn, opts)
	}()

	noop := jsonrpc2.HandlerFunc(func(_ context.Context, _ *jsonrpc2.Conn, _ *jsonrpc2.Request) (any, error) {
		return nil, nil
	})
	clientRPC := jsonrpc2.NewConn(ctx, clientConn, noop)
	t.Cleanup(func() {
		_ = clientRPC.Close()
	})

	rootURI := workspace.URIFromPath(root)
	var initResult json.RawMessage
	err := clientRPC.Call(ctx, "initialize", protocol.InitializeParams{
		RootURI: &rootURI,
		WorkspaceFolders: []protocol.WorkspaceFolder{
			{URI: rootURI, Name: filepath.Base(root)},
		},
	}, &initResult)
	be.Err(t, err, nil)

	err = clientRPC.Notify(ctx, "initialized", protocol.InitializedParams{})
	be.Err(t, err, nil)

	return clientRPC
}

// testWorkspace returns the absolute path of the shared test workspace.
func testWorkspace(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("testdata", "workspace"))
	be.Err(t, err, nil)
	return root
}

// copyWorkspace copies the shared test workspace into a temporary directory
// that the test may modify.
func copyWorkspace(t *testing.T) string {
	t.Helper()
	dst := t.TempDir()
	entries, err := os.ReadDir(testWorkspace(t))
	be.Err(t, err, nil)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(testWorkspace(t), e.Name()))
		be.Err(t, err, nil)
		be.Err(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0o644), nil)
	}
	return dst
}

// openFile sends didOpen for the file at path with its on-disk content.
func openFile(t *testing.T, conn *jsonrpc2.Conn, path string) (protocol.DocumentUri, string) {
	t.Helper()
	content, err := os.ReadFile(path)
	be.Err(t, err, nil)
	uri := workspace.URIFromPath(path)
	openText(t, conn, uri, string(content))
	return uri, string(content)
}

func openText(t *testing.T, conn *jsonrpc2.Conn, uri protocol.DocumentUri, text string) {
	t.Helper()
	err := conn.Notify(t.Context(), "textDocument/didOpen", protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "poweron",
			Version:    1,
			Text:       text,
		},
	})
	be.Err(t, err, nil)
}

func changeText(t *testing.T, conn *jsonrpc2.Conn, uri protocol.DocumentUri, version int32, text string) {
	t.Helper()
	err := conn.Notify(t.Context(), "textDocument/didChange", protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                version,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: text},
		},
	})
	be.Err(t, err, nil)
}

func closeFile(t *testing.T, conn *jsonrpc2.Conn, uri protocol.DocumentUri) {
	t.Helper()
	err := conn.Notify(t.Context(), "textDocument/didClose", protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	be.Err(t, err, nil)
}

// positionOf returns the position of the first occurrence of needle in
// content, moved right by delta characters. Test files are ASCII.
func positionOf(t *testing.T, content, needle string, delta int) protocol.Position {
	t.Helper()
	i := strings.Index(content, needle)
	be.True(t, i >= 0)
	i += delta
	line := strings.Count(content[:i], "\n")
	col := i - (strings.LastIndex(content[:i], "\n") + 1)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func TestInitialize(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() {
		_ = serverConn.Close()
		_ = clientConn.Close()
	})
	go func() {
		_ = lsp.ServeStream(ctx, serverConn, lsp.Options{Version: "v1.2.3"})
	}()
	clientRPC := jsonrpc2.NewConn(ctx, clientConn, jsonrpc2.HandlerFunc(
		func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) { return nil, nil },
	))
	t.Cleanup(func() { _ = clientRPC.Close() })

	var result struct {
		Capabilities struct {
			TextDocumentSync struct {
				OpenClose bool `json:"openClose"`
				Change    int  `json:"change"`
			} `json:"textDocumentSync"`
			CompletionProvider struct {
				TriggerCharacters []string `json:"triggerCharacters"`
			} `json:"completionProvider"`
			HoverProvider          bool `json:"hoverProvider"`
			DefinitionProvider     bool `json:"definitionProvider"`
			DocumentSymbolProvider bool `json:"documentSymbolProvider"`
		} `json:"capabilities"`
		ServerInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	err := clientRPC.Call(ctx, "initialize", protocol.InitializeParams{}, &result)
	be.Err(t, err, nil)

	caps := result.Capabilities
	be.True(t, caps.TextDocumentSync.OpenClose)
	be.Equal(t, caps.TextDocumentSync.Change, 1)
	be.Equal(t, caps.CompletionProvider.TriggerCharacters, []string{":", "=", "@"})
	be.True(t, caps.HoverProvider)
	be.True(t, caps.DefinitionProvider)
	be.True(t, caps.DocumentSymbolProvider)
	be.Equal(t, result.ServerInfo.Name, "pols")
	be.Equal(t, result.ServerInfo.Version, "v1.2.3")

	// Requests without an initial scan are answered straight away.
	var locs []protocol.Location
	err = clientRPC.Call(ctx, "textDocument/definition", protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere/RD.X"},
		},
	}, &locs)
	be.Err(t, err, nil)
	be.Equal(t, len(locs), 0)

	err = clientRPC.Call(ctx, "textDocument/unknown", struct{}{}, nil)
	be.True(t, err != nil)
}

func TestShutdownAndExit(t *testing.T) {
	t.Parallel()

	conn := setupLSPServer(t, copyWorkspace(t), lsp.Options{})
	be.Err(t, conn.Call(t.Context(), "shutdown", nil, nil), nil)
	be.Err(t, conn.Notify(t.Context(), "exit", nil), nil)
	<-conn.DisconnectNotify()
}

func TestServeStreamWaitsForBackgroundWork(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	serverConn, clientConn := net.Pipe()
	served := make(chan struct{})
	go func() {
		defer close(served)
		_ = lsp.ServeStream(ctx, serverConn, lsp.Options{})
	}()
	clientRPC := jsonrpc2.NewConn(ctx, clientConn, jsonrpc2.HandlerFunc(
		func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) { return nil, nil },
	))

	rootURI := workspace.URIFromPath(copyWorkspace(t))
	be.Err(t, clientRPC.Call(ctx, "initialize", protocol.InitializeParams{RootURI: &rootURI}, nil), nil)
	be.Err(t, clientRPC.Notify(ctx, "initialized", protocol.InitializedParams{}), nil)

	// Hang up while the scan and watcher may still be starting.
	be.Err(t, clientRPC.Close(), nil)
	select {
	case <-served:
	case <-time.After(10 * time.Second):
		t.Fatal("ServeStream did not return")
	}
	_ = serverConn.Close()
}

func TestConfigFromWorkspace(t *testing.T) {
	t.Parallel()

	root := copyWorkspace(t)
	// With a depth of one, RD.REPORT no longer sees past its direct includes.
	be.Err(t, os.WriteFile(filepath.Join(root, "RD.REPORT"),
		[]byte("#INCLUDE \"RD.MIDDLE\"\nPRINT TITLE=\"x\"\n CALL DEEP\nEND\n"), 0o644), nil)
	be.Err(t, os.WriteFile(filepath.Join(root, "RD.MIDDLE"), []byte("#INCLUDE \"RD.DEEP\"\n"), 0o644), nil)
	be.Err(t, os.WriteFile(filepath.Join(root, "RD.DEEP"), []byte("PROCEDURE DEEP\nEND\n"), 0o644), nil)

	deep := func(t *testing.T, opts lsp.Options) int {
		conn := setupLSPServer(t, root, opts)
		uri, content := openFile(t, conn, filepath.Join(root, "RD.REPORT"))
		return len(requestDefinition(t, conn, uri, positionOf(t, content, "DEEP", 0)))
	}

	be.Equal(t, deep(t, lsp.Options{}), 1)

	be.Err(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("[resolve]\ninclude_depth = 1\n"), 0o644), nil)
	be.Equal(t, deep(t, lsp.Options{}), 0)

	// An explicit configuration wins over the file.
	cfg := config.Default()
	be.Equal(t, deep(t, lsp.Options{Config: &cfg}), 1)
}

// defaultConfigWithoutWatcher leaves file events to the test.
func defaultConfigWithoutWatcher() config.Config {
	cfg := config.Default()
	cfg.Workspace.Watch = false
	return cfg
}

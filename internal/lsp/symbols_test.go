package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/lsp"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func requestSymbols(t *testing.T, conn *jsonrpc2.Conn, uri protocol.DocumentUri) []protocol.SymbolInformation {
	t.Helper()
	var result []protocol.SymbolInformation
	err := conn.Call(t.Context(), "textDocument/documentSymbol", protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}, &result)
	be.Err(t, err, nil)
	return result
}

func symbolNames(syms []protocol.SymbolInformation) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	return names
}

func TestDocumentSymbol(t *testing.T) {
	t.Parallel()

	root := testWorkspace(t)
	conn := setupLSPServer(t, root, lsp.Options{})
	uri, _ := openFile(t, conn, filepath.Join(root, "RD.REPORT"))

	syms := requestSymbols(t, conn, uri)
	// Declarations of the included files, in include order. RD.HELPERS is
	// not included.
	be.Equal(t, symbolNames(syms), []string{"COUNT", "NAME", "DOSOMETHING"})
	be.Equal(t, syms[0].Kind, protocol.SymbolKindVariable)
	be.Equal(t, syms[2].Kind, protocol.SymbolKindFunction)

	be.Equal(t, syms[0].Location, protocol.Location{
		URI:   workspace.URIFromPath(filepath.Join(root, "RD.REPORT.DEF")),
		Range: span(1, 1, 1, 13),
	})
	// The whole procedure, not just its name.
	be.Equal(t, syms[2].Location, protocol.Location{
		URI:   workspace.URIFromPath(filepath.Join(root, "RD.UTILS")),
		Range: span(0, 0, 3, 3),
	})
}

func TestDocumentSymbolUnknownDocument(t *testing.T) {
	t.Parallel()

	conn := setupLSPServer(t, testWorkspace(t), lsp.Options{})
	syms := requestSymbols(t, conn, "file:///nowhere/RD.MISSING")
	be.Equal(t, len(syms), 0)
}

func TestDidCloseRevertsToDisk(t *testing.T) {
	t.Parallel()

	root := copyWorkspace(t)
	conn := setupLSPServer(t, root, lsp.Options{})
	uri := workspace.URIFromPath(filepath.Join(root, "RD.UTILS"))

	openText(t, conn, uri, "PROCEDURE EDITED\nEND\n")
	be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"EDITED"})

	closeFile(t, conn, uri)
	be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"DOSOMETHING"})
}

func TestDidCloseForgetsUnsavedFiles(t *testing.T) {
	t.Parallel()

	root := copyWorkspace(t)
	conn := setupLSPServer(t, root, lsp.Options{})
	inside := workspace.URIFromPath(filepath.Join(root, "RD.NEW"))
	outside := workspace.URIFromPath(filepath.Join(t.TempDir(), "RD.ELSEWHERE"))

	for _, uri := range []string{inside, outside} {
		openText(t, conn, uri, "PROCEDURE UNSAVED\nEND\n")
		be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"UNSAVED"})
		closeFile(t, conn, uri)
		be.Equal(t, len(requestSymbols(t, conn, uri)), 0)
	}
}

func TestDidChangeWatchedFiles(t *testing.T) {
	t.Parallel()

	root := copyWorkspace(t)
	cfg := defaultConfigWithoutWatcher()
	conn := setupLSPServer(t, root, lsp.Options{Config: &cfg})
	path := filepath.Join(root, "RD.LATE")
	uri := workspace.URIFromPath(path)
	notify := func(typ protocol.UInteger) {
		t.Helper()
		err := conn.Notify(t.Context(), "workspace/didChangeWatchedFiles", protocol.DidChangeWatchedFilesParams{
			Changes: []protocol.FileEvent{{URI: uri, Type: typ}},
		})
		be.Err(t, err, nil)
	}

	be.Equal(t, len(requestSymbols(t, conn, uri)), 0)

	be.Err(t, os.WriteFile(path, []byte("PROCEDURE LATE\nEND\n"), 0o644), nil)
	notify(protocol.FileChangeTypeCreated)
	be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"LATE"})

	be.Err(t, os.WriteFile(path, []byte("PROCEDURE LATER\nEND\n"), 0o644), nil)
	notify(protocol.FileChangeTypeChanged)
	be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"LATER"})

	// Open documents belong to the editor.
	openText(t, conn, uri, "PROCEDURE EDITOR\nEND\n")
	be.Err(t, os.Remove(path), nil)
	notify(protocol.FileChangeTypeDeleted)
	be.Equal(t, symbolNames(requestSymbols(t, conn, uri)), []string{"EDITOR"})

	closeFile(t, conn, uri)
	be.Equal(t, len(requestSymbols(t, conn, uri)), 0)
}

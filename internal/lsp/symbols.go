package lsp

import (
	"context"

	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/resolve"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documentSymbol lists the declarations visible from a document, including
// those of the files it includes. Each symbol spans its whole declaration.
func (s *server) documentSymbol(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	var params protocol.DocumentSymbolParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}
	s.waitForScan(ctx)

	uri := workspace.NormalizeURI(params.TextDocument.URI)
	snap := s.reg.Snapshot()
	syms := resolve.Symbols(snap, uri, s.includeDepth())

	out := make([]protocol.SymbolInformation, 0, len(syms))
	for _, sym := range syms {
		out = append(out, protocol.SymbolInformation{
			Name: sym.Name,
			Kind: symbolKind(sym.Kind),
			Location: protocol.Location{
				URI:   sym.URI,
				Range: rangeFromSyntax(snap.Tree(sym.URI).Source(), sym.DeclRange),
			},
		})
	}
	return out, nil
}

func symbolKind(k resolve.Kind) protocol.SymbolKind {
	if k == resolve.Procedure {
		return protocol.SymbolKindFunction
	}
	return protocol.SymbolKindVariable
}

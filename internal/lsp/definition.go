package lsp

import (
	"context"

	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/resolve"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *server) definition(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	var params protocol.DefinitionParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}
	s.waitForScan(ctx)

	uri := workspace.NormalizeURI(params.TextDocument.URI)
	snap := s.reg.Snapshot()
	tree := snap.Tree(uri)
	if tree == nil {
		return []protocol.Location{}, nil
	}

	p := pointFromPosition(tree.Source(), params.Position)
	locs := resolve.Definition(snap, uri, p, s.includeDepth())
	s.logger.Debug("resolved definition", "uri", uri, "row", p.Row, "column", p.Column, "results", len(locs))

	out := make([]protocol.Location, 0, len(locs))
	for _, loc := range locs {
		out = append(out, protocol.Location{
			URI:   loc.URI,
			Range: rangeFromSyntax(snap.Tree(loc.URI).Source(), loc.Range),
		})
	}
	return out, nil
}

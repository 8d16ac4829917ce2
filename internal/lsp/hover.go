package lsp

import (
	"github.com/stefanvanburen/pols/internal/catalog"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/syntax"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *server) hover(req *jsonrpc2.Request) (any, error) {
	var params protocol.HoverParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}

	tree := s.reg.Tree(workspace.NormalizeURI(params.TextDocument.URI))
	if tree == nil {
		return nil, nil
	}
	return computeHover(tree, params.Position), nil
}

// computeHover documents the record field under pos, as in ACCOUNT:BALANCE.
func computeHover(tree *syntax.Tree, pos protocol.Position) *protocol.Hover {
	text := tree.Source()
	node := tree.NamedDescendantForPoint(pointFromPosition(text, pos))
	if node == nil || node.Kind() != syntax.KindFieldName {
		return nil
	}

	var recordNode *syntax.Node
	if parent := node.Parent(); parent != nil {
		recordNode = parent.ChildByFieldName(syntax.FieldRecord)
	}
	if recordNode == nil {
		recordNode = node.PrevNamedSibling()
	}
	if recordNode == nil || recordNode.Kind() != syntax.KindRecordType {
		return nil
	}

	record, ok := catalog.LookupRecord(recordNode.Content(text))
	if !ok {
		return nil
	}
	field, ok := record.Field(node.Content(text))
	if !ok {
		return nil
	}

	rng := rangeFromSyntax(text, node.Range())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: field.Markdown(),
		},
		Range: &rng,
	}
}

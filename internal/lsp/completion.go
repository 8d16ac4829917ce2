package lsp

import (
	"sync"

	"github.com/stefanvanburen/pols/internal/catalog"
	"github.com/stefanvanburen/pols/internal/jsonrpc2"
	"github.com/stefanvanburen/pols/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var triggerCharacters = []string{":", "=", "@"}

func (s *server) completion(req *jsonrpc2.Request) (any, error) {
	var params protocol.CompletionParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}

	var trigger string
	if params.Context != nil && params.Context.TriggerCharacter != nil {
		trigger = *params.Context.TriggerCharacter
	}

	switch trigger {
	case "":
		return functionItems(), nil
	case ":":
		uri := workspace.NormalizeURI(params.TextDocument.URI)
		doc, ok := s.reg.Get(uri)
		if !ok {
			return []protocol.CompletionItem{}, nil
		}
		word := wordBefore(doc.Text, pointFromPosition(doc.Text, params.Position))
		record, ok := catalog.LookupRecord(word)
		if !ok {
			s.logger.Debug("no record for field completion", "word", word)
			return []protocol.CompletionItem{}, nil
		}
		return fieldItems(record), nil
	default:
		return []protocol.CompletionItem{}, nil
	}
}

// functionItems offers every built-in function as a snippet.
var functionItems = sync.OnceValue(func() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindFunction
	format := protocol.InsertTextFormatSnippet
	fns := catalog.Functions()
	items := make([]protocol.CompletionItem, 0, len(fns))
	for _, fn := range fns {
		item := protocol.CompletionItem{
			Label:            fn.Name,
			Kind:             &kind,
			InsertText:       &fn.Snippet,
			InsertTextFormat: &format,
		}
		if fn.Doc != "" {
			item.Documentation = fn.Doc
		}
		items = append(items, item)
	}
	return items
})

func fieldItems(record *catalog.Record) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindField
	format := protocol.InsertTextFormatPlainText
	items := make([]protocol.CompletionItem, 0, len(record.Fields))
	for _, f := range record.Fields {
		label := f.Label()
		items = append(items, protocol.CompletionItem{
			Label:  label,
			Kind:   &kind,
			Detail: &f.Description,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: f.Markdown(),
			},
			InsertText:       &label,
			InsertTextFormat: &format,
		})
	}
	return items
}

// Package workspace holds the documents and syntax trees the language server
// knows about, and derives per-file facts (role, includes) from them.
package workspace

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/stefanvanburen/pols/internal/syntax"
)

// LanguageID is the language identifier of PowerOn documents.
const LanguageID = "poweron"

// Document is one PowerOn source file. A stored Document is never mutated;
// every change replaces it.
type Document struct {
	URI        string
	LanguageID string
	Version    int32
	Text       string
	// Hash is the xxhash of Text.
	Hash uint64
	// Open is set while an editor owns the document's contents.
	Open bool

	gen uint64
}

type treeEntry struct {
	gen  uint64
	tree *syntax.Tree // nil when the text could not be parsed
}

// Registry owns every Document and its syntax tree, keyed by URI.
//
// Documents and trees live in separate tables with their own locks, and no
// call path holds both. Each store is stamped with a generation number
// shared by the Document and its tree entry; a tree is only handed out when
// its generation matches the stored Document, so readers never see a tree
// built from other text.
type Registry struct {
	parser *syntax.Parser
	logger *slog.Logger

	docsMu sync.Mutex
	docs   map[string]*Document
	gen    uint64

	treesMu sync.Mutex
	trees   map[string]treeEntry
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		parser: syntax.NewParser(),
		logger: logger,
		docs:   make(map[string]*Document),
		trees:  make(map[string]treeEntry),
	}
}

// Upsert stores editor contents for uri and reparses them. The returned
// Document is marked open.
func (r *Registry) Upsert(uri, text string, version int32) *Document {
	doc, _ := r.store(uri, text, version, true, func(*Document) bool { return true })
	return doc
}

// Load stores disk contents for uri unless a document is already known.
// It reports whether anything was stored.
func (r *Registry) Load(uri, text string) bool {
	_, ok := r.store(uri, text, 0, false, func(old *Document) bool { return old == nil })
	return ok
}

// Reload replaces uri with disk contents unless an editor has it open or
// the contents are unchanged. It reports whether anything was stored.
func (r *Registry) Reload(uri, text string) bool {
	hash := xxhash.Sum64String(text)
	_, ok := r.store(uri, text, 0, false, func(old *Document) bool {
		return old == nil || (!old.Open && old.Hash != hash)
	})
	return ok
}

// Revert replaces uri with disk contents and clears its open mark, as when
// an editor closes a file that exists on disk.
func (r *Registry) Revert(uri, text string) *Document {
	doc, _ := r.store(uri, text, 0, false, func(*Document) bool { return true })
	return doc
}

func (r *Registry) store(uri, text string, version int32, open bool, replace func(old *Document) bool) (*Document, bool) {
	doc := &Document{
		URI:        uri,
		LanguageID: LanguageID,
		Version:    version,
		Text:       text,
		Hash:       xxhash.Sum64String(text),
		Open:       open,
	}

	r.docsMu.Lock()
	if !replace(r.docs[uri]) {
		r.docsMu.Unlock()
		return nil, false
	}
	// Generations follow the order documents are stored in.
	r.gen++
	doc.gen = r.gen
	r.docs[uri] = doc
	r.docsMu.Unlock()

	tree, err := r.parser.Parse(text)
	if err != nil {
		r.logger.Warn("parse failed, dropping tree", "uri", uri, "err", err)
		tree = nil
	}

	r.treesMu.Lock()
	// A newer store may have finished first.
	if cur, ok := r.trees[uri]; !ok || cur.gen < doc.gen {
		r.trees[uri] = treeEntry{gen: doc.gen, tree: tree}
	}
	r.treesMu.Unlock()
	return doc, true
}

// Get returns the current Document for uri.
func (r *Registry) Get(uri string) (*Document, bool) {
	r.docsMu.Lock()
	defer r.docsMu.Unlock()
	doc, ok := r.docs[uri]
	return doc, ok
}

// Tree returns the tree for the current Document of uri, or nil when there
// is none or it is not installed yet.
func (r *Registry) Tree(uri string) *syntax.Tree {
	doc, ok := r.Get(uri)
	if !ok {
		return nil
	}
	r.treesMu.Lock()
	entry := r.trees[uri]
	r.treesMu.Unlock()
	if entry.gen != doc.gen {
		return nil
	}
	return entry.tree
}

// Remove forgets uri.
func (r *Registry) Remove(uri string) {
	r.docsMu.Lock()
	delete(r.docs, uri)
	r.docsMu.Unlock()

	r.treesMu.Lock()
	delete(r.trees, uri)
	r.treesMu.Unlock()
}

// Unload forgets uri unless an editor has it open. It reports whether the
// document was removed.
func (r *Registry) Unload(uri string) bool {
	r.docsMu.Lock()
	doc, ok := r.docs[uri]
	if !ok || doc.Open {
		r.docsMu.Unlock()
		return false
	}
	delete(r.docs, uri)
	r.docsMu.Unlock()

	r.treesMu.Lock()
	if entry, ok := r.trees[uri]; ok && entry.gen <= doc.gen {
		delete(r.trees, uri)
	}
	r.treesMu.Unlock()
	return true
}

// Documents returns the URIs of every stored document in sorted order.
func (r *Registry) Documents() []string {
	r.docsMu.Lock()
	defer r.docsMu.Unlock()
	return slices.Sorted(maps.Keys(r.docs))
}

// Snapshot copies the current state into an immutable Snapshot.
func (r *Registry) Snapshot() *Snapshot {
	r.docsMu.Lock()
	docs := maps.Clone(r.docs)
	r.docsMu.Unlock()

	r.treesMu.Lock()
	trees := maps.Clone(r.trees)
	r.treesMu.Unlock()

	return newSnapshot(docs, trees)
}

package workspace

import (
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/stefanvanburen/pols/internal/query"
	"github.com/stefanvanburen/pols/internal/syntax"
)

// Snapshot is a consistent, immutable view of a Registry. Every tree in a
// Snapshot was built from the text of the Document stored beside it.
type Snapshot struct {
	docs  map[string]*Document
	trees map[string]*syntax.Tree
	uris  []string
	paths map[string]string // decoded, slash-separated path per URI
}

func newSnapshot(docs map[string]*Document, entries map[string]treeEntry) *Snapshot {
	s := &Snapshot{
		docs:  docs,
		trees: make(map[string]*syntax.Tree, len(docs)),
		uris:  slices.Sorted(maps.Keys(docs)),
		paths: make(map[string]string, len(docs)),
	}
	for uri, doc := range docs {
		if e, ok := entries[uri]; ok && e.gen == doc.gen && e.tree != nil {
			s.trees[uri] = e.tree
		}
		s.paths[uri] = decodedPath(uri)
	}
	return s
}

// URIs returns every document URI in sorted order. The slice must not be
// modified.
func (s *Snapshot) URIs() []string { return s.uris }

func (s *Snapshot) Len() int { return len(s.uris) }

func (s *Snapshot) Document(uri string) (*Document, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}

// Tree returns the syntax tree for uri, or nil if the document is unknown
// or could not be parsed.
func (s *Snapshot) Tree(uri string) *syntax.Tree { return s.trees[uri] }

// Role classifies the document at uri.
func (s *Snapshot) Role(uri string) Role { return Classify(s.Tree(uri)) }

// IncludeName strips the quoting from an include literal.
func IncludeName(literal string) string {
	return strings.TrimSpace(strings.ReplaceAll(literal, `"`, ""))
}

// Includes returns the documents named by the #INCLUDE directives of uri, in
// directive order. Literals that match no known document are skipped, as
// are self-includes and repeats.
func (s *Snapshot) Includes(uri string) []string {
	var out []string
	seen := map[string]bool{uri: true}
	for _, c := range query.Run(s.Tree(uri), query.IncludeLiterals) {
		target := s.resolveInclude(IncludeName(c.Text))
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		out = append(out, target)
	}
	return out
}

// resolveInclude finds the document an include name refers to. URIs are
// tried in sorted order; a document whose file name equals name wins over
// one whose path merely contains it.
func (s *Snapshot) resolveInclude(name string) string {
	if name == "" {
		return ""
	}
	partial := ""
	for _, uri := range s.uris {
		p := s.paths[uri]
		if path.Base(p) == name {
			return uri
		}
		if partial == "" && strings.Contains(p, name) {
			partial = uri
		}
	}
	return partial
}

// TransitiveIncludes expands the includes of uri breadth-first for at most
// maxDepth levels. Each URI appears once, in discovery order, and uri itself
// never appears.
func (s *Snapshot) TransitiveIncludes(uri string, maxDepth int) []string {
	visited := map[string]bool{uri: true}
	var out []string
	frontier := []string{uri}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, u := range frontier {
			for _, inc := range s.Includes(u) {
				if visited[inc] {
					continue
				}
				visited[inc] = true
				out = append(out, inc)
				next = append(next, inc)
			}
		}
		frontier = next
	}
	return out
}

package workspace

import (
	"net/url"
	"path/filepath"
)

// URIFromPath returns the file URI of an absolute local path.
func URIFromPath(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// PathFromURI returns the local path of a file URI, or "" when uri is not a
// file URI.
func PathFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return filepath.FromSlash(u.Path)
}

// NormalizeURI rewrites a file URI into the form URIFromPath produces, so
// that URIs sent by a client and URIs found by scanning the disk agree.
// Other URIs are returned unchanged.
func NormalizeURI(uri string) string {
	if p := PathFromURI(uri); p != "" {
		return URIFromPath(p)
	}
	return uri
}

// decodedPath returns the slash-separated path of uri with percent-escapes
// decoded, falling back to uri itself.
func decodedPath(uri string) string {
	if p := PathFromURI(uri); p != "" {
		return filepath.ToSlash(p)
	}
	if p, err := url.PathUnescape(uri); err == nil {
		return p
	}
	return uri
}

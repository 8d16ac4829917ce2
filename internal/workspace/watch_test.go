package workspace_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/config"
	"github.com/stefanvanburen/pols/internal/workspace"
)

type watchFixture struct {
	root    string
	reg     *workspace.Registry
	changes chan workspace.Change
}

func startWatcher(t *testing.T) *watchFixture {
	t.Helper()
	f := &watchFixture{
		root:    t.TempDir(),
		reg:     workspace.NewRegistry(nil),
		changes: make(chan workspace.Change, 256),
	}
	w, err := workspace.NewWatcher(f.reg, config.Default().Workspace, discard(), func(c workspace.Change) {
		f.changes <- c
	})
	be.Err(t, err, nil)
	t.Cleanup(func() { be.Err(t, w.Close(), nil) })
	be.Err(t, w.Add(f.root), nil)
	return f
}

func (f *watchFixture) uri(name string) string {
	return workspace.URIFromPath(filepath.Join(f.root, name))
}

// waitFor consumes changes until cond holds.
func (f *watchFixture) waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for !cond() {
		select {
		case <-f.changes:
		case <-timeout:
			t.Fatalf("timed out waiting for %s", what)
		}
	}
}

func (f *watchFixture) text(uri string) (string, bool) {
	doc, ok := f.reg.Get(uri)
	if !ok {
		return "", false
	}
	return doc.Text, true
}

func TestWatcherLoadsAndRemoves(t *testing.T) {
	t.Parallel()

	f := startWatcher(t)
	path := filepath.Join(f.root, "RD.UTILS")
	uri := f.uri("RD.UTILS")

	be.Err(t, os.WriteFile(path, []byte("PROCEDURE A\nEND\n"), 0o644), nil)
	f.waitFor(t, "create", func() bool {
		text, _ := f.text(uri)
		return text == "PROCEDURE A\nEND\n"
	})
	be.Equal(t, f.reg.Snapshot().Role(uri), workspace.Library)

	be.Err(t, os.WriteFile(path, []byte("DEFINE\n X=NUMBER\nEND\n"), 0o644), nil)
	f.waitFor(t, "write", func() bool {
		text, _ := f.text(uri)
		return text == "DEFINE\n X=NUMBER\nEND\n"
	})
	be.Equal(t, f.reg.Snapshot().Role(uri), workspace.IncludeTable)

	be.Err(t, os.Remove(path), nil)
	f.waitFor(t, "remove", func() bool {
		_, ok := f.text(uri)
		return !ok
	})
}

func TestWatcherLeavesOpenDocuments(t *testing.T) {
	t.Parallel()

	f := startWatcher(t)
	open := f.uri("RD.OPEN")
	f.reg.Upsert(open, "editor text", 2)

	be.Err(t, os.WriteFile(filepath.Join(f.root, "RD.OPEN"), []byte("disk text"), 0o644), nil)
	// Events are handled in order, so once a later file shows up the open
	// document's event has been processed.
	be.Err(t, os.WriteFile(filepath.Join(f.root, "RD.LATER"), []byte("later"), 0o644), nil)
	f.waitFor(t, "later file", func() bool {
		text, _ := f.text(f.uri("RD.LATER"))
		return text == "later"
	})

	text, ok := f.text(open)
	be.True(t, ok)
	be.Equal(t, text, "editor text")

	be.Err(t, os.Remove(filepath.Join(f.root, "RD.OPEN")), nil)
	be.Err(t, os.Remove(filepath.Join(f.root, "RD.LATER")), nil)
	f.waitFor(t, "later removal", func() bool {
		_, ok := f.text(f.uri("RD.LATER"))
		return !ok
	})
	_, ok = f.text(open)
	be.True(t, ok)
}

func TestWatcherSkipsExcluded(t *testing.T) {
	t.Parallel()

	f := startWatcher(t)
	be.Err(t, os.WriteFile(filepath.Join(f.root, ".swap"), []byte("x"), 0o644), nil)
	be.Err(t, os.WriteFile(filepath.Join(f.root, "RD.SEEN"), []byte("y"), 0o644), nil)
	f.waitFor(t, "visible file", func() bool {
		_, ok := f.text(f.uri("RD.SEEN"))
		return ok
	})
	_, ok := f.text(f.uri(".swap"))
	be.True(t, !ok)
}

package relocate

import (
	"context"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/types"
)

// failingFS fails selected operations on paths containing a substring.
// chmod only fails when opening a file up to 0777.
type failingFS struct {
	types.FS
	create string
	mkdir  string
	chmod  string
	remove string
}

func (f *failingFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if f.create != "" && strings.Contains(name, f.create) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.FS.Create(name, perm)
}

func (f *failingFS) Mkdir(name string, perm fs.FileMode) error {
	if f.mkdir != "" && strings.Contains(name, f.mkdir) {
		return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrPermission}
	}
	return f.FS.Mkdir(name, perm)
}

func (f *failingFS) Chmod(name string, mode fs.FileMode) error {
	if f.chmod != "" && mode == 0777 && strings.Contains(name, f.chmod) {
		return &os.PathError{Op: "chmod", Path: name, Err: os.ErrPermission}
	}
	return f.FS.Chmod(name, mode)
}

func (f *failingFS) Remove(name string) error {
	if f.remove != "" && strings.Contains(name, f.remove) {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return f.FS.Remove(name)
}

// fakeRegistry keeps records in memory.
type fakeRegistry struct {
	records   map[int]types.Record
	updateErr error
	updates   int
}

func newFakeRegistry(records ...types.Record) *fakeRegistry {
	r := &fakeRegistry{records: map[int]types.Record{}}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *fakeRegistry) FindConfiguration(_ context.Context, id int) (types.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return types.Record{}, errors.Newf(errors.ErrNotFound, "no configuration with id %d", id)
	}
	return rec, nil
}

func (r *fakeRegistry) UpdateConfiguration(_ context.Context, id int, loc types.Location) error {
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	rec := r.records[id]
	rec.Location = loc
	r.records[id] = rec
	return nil
}

// fakeRoots records PersistMapping calls and fails for selected paths.
type fakeRoots struct {
	roots   map[string]string
	listErr error
	fail    map[string]error
	calls   []string
}

func (f *fakeRoots) ListDataRoots() (map[string]string, error) {
	return f.roots, f.listErr
}

func (f *fakeRoots) PersistMapping(rootPath string, _, _ types.Location) error {
	f.calls = append(f.calls, rootPath)
	return f.fail[rootPath]
}

// countingScope counts how often the relaxed window is entered and left.
type countingScope struct {
	entered  int
	restored int
}

func (c *countingScope) relax() Scope {
	c.entered++
	return restoreFunc(func() { c.restored++ })
}

type restoreFunc func()

func (f restoreFunc) Restore() { f() }

func okAccess(string) error { return nil }

// Package history persists the last stack of every element type so a session can be continued.
package history

import (
	"time"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/where"
	"github.com/metafates/gache"
)

// Saved is a stack snapshot, elements from bottom to top.
type Saved struct {
	Type     string    `json:"type"`
	Contents []string  `json:"contents"`
	SavedAt  time.Time `json:"saved_at"`
}

// cacher holds one snapshot per element type.
var cacher = gache.New[map[string]*Saved](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved snapshot keyed by element type.
func Get() (map[string]*Saved, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Saved), nil
	}
	return cached, nil
}

// Save records the contents of session, replacing the previous snapshot of the same type.
// An empty session removes the snapshot instead.
func Save(session script.Session) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	contents := session.Contents()
	if len(contents) == 0 {
		delete(saved, session.Type())
	} else {
		saved[session.Type()] = &Saved{
			Type:     session.Type(),
			Contents: contents,
			SavedAt:  time.Now(),
		}
	}

	return cacher.Set(saved)
}

// Restore pushes the saved contents for the session's type onto it.
// It reports whether anything was restored.
func Restore(session script.Session) (bool, error) {
	saved, err := Get()
	if err != nil {
		return false, err
	}

	snapshot, ok := saved[session.Type()]
	if !ok || len(snapshot.Contents) == 0 {
		return false, nil
	}

	if _, err := session.Exec(script.Instruction{Op: script.OpPush, Args: snapshot.Contents}); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the snapshot of the given element type.
func Remove(typeName string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, typeName)
	return cacher.Set(saved)
}

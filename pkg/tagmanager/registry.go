// ABOUTME: Maps operating system identifiers to tag manager factories.
// ABOUTME: Built once at startup and passed to callers; no global state.

package tagmanager

import (
	"errors"
	"fmt"
	"sort"

	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrDuplicatePlatform   = errors.New("platform already registered")
)

// Deps are the collaborators handed to a Factory.
type Deps struct {
	Store    xattrs.Store
	Options  []xattrs.Option
	Reporter tags.Reporter
}

// Factory builds a Manager for one platform.
type Factory func(d Deps) (Manager, error)

// Registry holds one factory per operating system identifier, as reported
// by runtime.GOOS.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry knows every platform implemented in this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("darwin", newMacOS)
	return r
}

func newMacOS(d Deps) (Manager, error) {
	if d.Store == nil {
		return nil, errors.New("macos manager: nil attribute store")
	}
	return NewMacOS(xattrs.NewAttribute(d.Store, d.Options...), d.Reporter), nil
}

// NewMacOSFactory exposes the macOS factory so callers can register it
// under other identifiers, for instance to run against a MemStore.
func NewMacOSFactory() Factory {
	return newMacOS
}

// Register adds a factory for os.
func (r *Registry) Register(os string, f Factory) error {
	if _, exists := r.factories[os]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlatform, os)
	}
	r.factories[os] = f
	return nil
}

// Create builds the manager registered for os.
func (r *Registry) Create(os string, d Deps) (Manager, error) {
	f, ok := r.factories[os]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %v)", ErrUnsupportedPlatform, os, r.Platforms())
	}
	return f(d)
}

// Platforms returns the registered identifiers in sorted order.
func (r *Registry) Platforms() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

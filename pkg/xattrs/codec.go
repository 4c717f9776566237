// ABOUTME: Reads and writes the Finder tag list attribute of a file.
// ABOUTME: The list is a property list array; writes clear the legacy FinderInfo key.

package xattrs

import (
	"fmt"

	"github.com/rs/zerolog"
	"howett.net/plist"
)

const (
	// TagsKey holds the user tag list as a property list array of strings.
	TagsKey = "com.apple.metadata:_kMDItemUserTags"
	// OpenMetaTagsKey is the tag key written by older OpenMeta tools. It is
	// never read or written here.
	OpenMetaTagsKey = "com.apple.metadata:kMDItemOMUserTags"
	// FinderInfoKey is the legacy attribute that also carries a label
	// color. It is removed before every tag write.
	FinderInfoKey = "com.apple.FinderInfo"
)

// ListCodec converts an ordered list of strings to bytes and back.
type ListCodec interface {
	Encode(entries []string) ([]byte, error)
	Decode(data []byte) ([]string, error)
}

// PlistCodec encodes lists as property lists. Decode accepts any plist
// format; Encode writes Format.
type PlistCodec struct {
	Format int
}

// DefaultCodec writes binary property lists, the format Finder uses.
var DefaultCodec = PlistCodec{Format: plist.BinaryFormat}

func (c PlistCodec) Encode(entries []string) ([]byte, error) {
	if entries == nil {
		entries = []string{}
	}
	data, err := plist.Marshal(entries, c.Format)
	if err != nil {
		return nil, fmt.Errorf("encode tag list: %w", err)
	}
	return data, nil
}

func (c PlistCodec) Decode(data []byte) ([]string, error) {
	var entries []string
	if _, err := plist.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode tag list: %w", err)
	}
	return entries, nil
}

// Attribute reads and writes the raw tag list of files.
type Attribute struct {
	store     Store
	codec     ListCodec
	key       string
	legacyKey string
	log       zerolog.Logger
}

// Option configures an Attribute.
type Option func(*Attribute)

// WithCodec replaces the list codec.
func WithCodec(c ListCodec) Option {
	return func(a *Attribute) {
		a.codec = c
	}
}

// WithLogger sets the logger used for swallowed read errors.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Attribute) {
		a.log = l
	}
}

// WithKeys overrides the tag and legacy attribute keys. Linux filesystems
// only accept keys in the user. namespace.
func WithKeys(key, legacyKey string) Option {
	return func(a *Attribute) {
		a.key = key
		a.legacyKey = legacyKey
	}
}

func NewAttribute(store Store, opts ...Option) *Attribute {
	a := &Attribute{
		store:     store,
		codec:     DefaultCodec,
		key:       TagsKey,
		legacyKey: FinderInfoKey,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ReadRaw returns the wire-form entries stored on path. A missing,
// unreadable or undecodable attribute reads as an empty list.
func (a *Attribute) ReadRaw(path string) []string {
	data, err := a.store.Get(path, a.key)
	if err != nil {
		a.log.Debug().Err(err).Str("path", path).Msg("no tag attribute")
		return []string{}
	}

	entries, err := a.codec.Decode(data)
	if err != nil {
		a.log.Debug().Err(err).Str("path", path).Msg("unreadable tag attribute")
		return []string{}
	}
	if entries == nil {
		entries = []string{}
	}
	return entries
}

// WriteRaw replaces the tag list of path with entries. The legacy
// attribute is removed first when present. An empty list is written as an
// encoded empty array, not by deleting the attribute.
func (a *Attribute) WriteRaw(path string, entries []string) error {
	present, err := Has(a.store, path, a.legacyKey)
	if err != nil {
		return fmt.Errorf("check legacy attribute: %w", err)
	}
	if present {
		if err := a.store.Remove(path, a.legacyKey); err != nil {
			return fmt.Errorf("clear legacy attribute: %w", err)
		}
		a.log.Debug().Str("path", path).Str("key", a.legacyKey).Msg("cleared legacy attribute")
	}

	data, err := a.codec.Encode(entries)
	if err != nil {
		return err
	}
	if err := a.store.Set(path, a.key, data); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}

// Package catalog holds the closed, ordered set of event categories and the
// classifier that maps a source site URL onto one of them
package catalog

import (
	_ "embed"
	"os"
	"slices"
	"strings"

	perr "eventboard/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// ID identifies a category
type ID string

// Entry is one configured category
type Entry struct {
	ID           ID     `yaml:"id" json:"id"`
	ReferenceURL string `yaml:"url" json:"reference_url"`
	DisplayName  string `yaml:"name" json:"display_name"`
}

// Catalog is an immutable ordered category set with one fallback entry.
// Safe for concurrent use
type Catalog struct {
	entries  []Entry
	index    map[ID]int
	byURL    map[string]ID
	fallback ID
}

//go:embed categories.yaml
var defaultYAML []byte

var defaultCatalog = MustParse(defaultYAML)

// Default returns the built in catalog
func Default() *Catalog { return defaultCatalog }

// New builds a catalog from entries in order. fallback must name one of the
// entries and that entry must have an empty reference URL; every other entry
// needs a non empty URL. Ids must be unique
func New(fallback ID, entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, perr.InvalidArgf("catalog: no categories")
	}
	c := &Catalog{
		entries:  slices.Clone(entries),
		index:    make(map[ID]int, len(entries)),
		byURL:    make(map[string]ID, len(entries)),
		fallback: fallback,
	}
	for i, e := range c.entries {
		if strings.TrimSpace(string(e.ID)) == "" {
			return nil, perr.InvalidArgf("catalog: entry %d has no id", i)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, perr.InvalidArgf("catalog: duplicate id %q", e.ID)
		}
		c.index[e.ID] = i

		if e.ID == fallback {
			if e.ReferenceURL != "" {
				return nil, perr.InvalidArgf("catalog: fallback %q must not have a url", e.ID)
			}
			continue
		}
		if e.ReferenceURL == "" {
			return nil, perr.InvalidArgf("catalog: category %q has no url", e.ID)
		}
		// first entry in order wins on a shared url
		if _, seen := c.byURL[e.ReferenceURL]; !seen {
			c.byURL[e.ReferenceURL] = e.ID
		}
	}
	if _, ok := c.index[fallback]; !ok {
		return nil, perr.InvalidArgf("catalog: fallback %q is not a category", fallback)
	}
	return c, nil
}

type document struct {
	Fallback   ID      `yaml:"fallback"`
	Categories []Entry `yaml:"categories"`
}

// Parse builds a catalog from its YAML form
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "catalog: parse yaml")
	}
	return New(doc.Fallback, doc.Categories...)
}

// MustParse is Parse that panics, for embedded documents
func MustParse(b []byte) *Catalog {
	c, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a YAML catalog from path
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "catalog: read %s", path)
	}
	return Parse(b)
}

// Classify maps a site URL to a category by exact, case sensitive match on the
// reference URL. The first entry in order wins; anything else, the empty string
// included, maps to the fallback
func (c *Catalog) Classify(url string) ID {
	if id, ok := c.byURL[url]; ok {
		return id
	}
	return c.fallback
}

// DisplayNameOf returns the display name of id, or the fallback's for unknown ids
func (c *Catalog) DisplayNameOf(id ID) string {
	if i, ok := c.index[id]; ok {
		return c.entries[i].DisplayName
	}
	return c.entries[c.index[c.fallback]].DisplayName
}

// Lookup returns the entry for id
func (c *Catalog) Lookup(id ID) (Entry, bool) {
	if i, ok := c.index[id]; ok {
		return c.entries[i], true
	}
	return Entry{}, false
}

// Has reports whether id is configured
func (c *Catalog) Has(id ID) bool {
	_, ok := c.index[id]
	return ok
}

// Fallback returns the catch all category
func (c *Catalog) Fallback() ID { return c.fallback }

// Entries returns a copy of the entries in order
func (c *Catalog) Entries() []Entry { return slices.Clone(c.entries) }

// IDs returns the category ids in order
func (c *Catalog) IDs() []ID {
	out := make([]ID, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.ID
	}
	return out
}

// Len returns the number of categories
func (c *Catalog) Len() int { return len(c.entries) }

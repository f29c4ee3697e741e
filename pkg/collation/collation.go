// Package collation provides locale-aware string collators for ORDER BY ...
// COLLATE clauses.
//
// Collators are expensive to build, so a Registry hands out one shared
// *Collator per locale. The zero-configuration Default registry is what the
// parser uses unless told otherwise.
package collation

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type (
	// Collator compares strings according to the rules of a single locale.
	//
	// A Collator is shared between every node that names the same locale and
	// is safe for concurrent use.
	Collator struct {
		locale string
		tag    language.Tag

		mu sync.Mutex
		c  *collate.Collator
	}

	// Registry caches collators by locale name.
	Registry struct {
		mu        sync.Mutex
		collators map[string]*Collator
	}
)

// Default is the process-wide registry.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{collators: make(map[string]*Collator)}
}

// Get returns the collator for locale, building it on first use. Locales use
// ICU/BCP 47 spelling; both "en_US" and "en-US" are accepted. An empty or
// malformed locale is an error.
func (r *Registry) Get(locale string) (*Collator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.collators[locale]; ok {
		return c, nil
	}

	c, err := newCollator(locale)
	if err != nil {
		return nil, err
	}

	r.collators[locale] = c
	return c, nil
}

// Len returns the number of cached collators.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.collators)
}

// New returns the collator for locale from the Default registry.
func New(locale string) (*Collator, error) {
	return Default.Get(locale)
}

func newCollator(locale string) (*Collator, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, errors.New("empty collation locale")
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported collation locale %q", locale)
	}

	return &Collator{
		locale: locale,
		tag:    tag,
		c:      collate.New(tag),
	}, nil
}

// Locale returns the locale name exactly as it was written in the query.
func (c *Collator) Locale() string {
	return c.locale
}

// Tag returns the parsed language tag.
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 depending on whether a sorts before, equal to or
// after b in this locale.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// Sort sorts strs in place.
func (c *Collator) Sort(strs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.c.SortStrings(strs)
}

// Package headers implements the ordered, case-insensitive header multimap
// described in spec.md §3 and §9, as a slice of (name, value, line-number)
// entries. No normalized copy of a name is stored; lookups compare names
// case-insensitively instead.
//
// Grounded on the teacher's internal/datastruct.KeyValue: a flat slice of
// pairs plus linear case-insensitive scans, rather than a map, because the
// entry count is small (headers rarely run past the dozens) and a slice is
// the only way to preserve insertion order without a second index structure.
// Extended here with a per-entry line number and the With/Overwrite builder
// operations spec.md requires.
package headers

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

// Entry is one (name, value) pair as it appeared in the source bytes, plus
// the 1-based line number it was found on.
type Entry struct {
	// Name preserves the original casing as parsed.
	Name  string
	Value string
	// Line is the 1-based line number within the message the entry appeared
	// on, counting from the start-line. Synthesized entries (e.g. an inserted
	// Host header) carry the line number of whatever triggered their
	// synthesis.
	Line int
}

// Headers is an immutable, ordered, case-insensitive multimap from header
// name to header value. Build one with a Builder; once built it is safe to
// share across goroutines.
type Headers struct {
	entries []Entry
}

// Empty is the zero-value Headers: no entries.
var Empty = Headers{}

// Get returns every value recorded under name, in insertion order. The
// returned slice is freshly allocated and safe to retain.
func (h Headers) Get(name string) []string {
	var values []string

	for _, e := range h.entries {
		if strcomp.EqualFold(e.Name, name) {
			values = append(values, e.Value)
		}
	}

	return values
}

// GetFirst returns the first value recorded under name.
func (h Headers) GetFirst(name string) (string, bool) {
	for _, e := range h.entries {
		if strcomp.EqualFold(e.Name, name) {
			return e.Value, true
		}
	}

	return "", false
}

// Contains reports whether at least one entry is recorded under name.
func (h Headers) Contains(name string) bool {
	for _, e := range h.entries {
		if strcomp.EqualFold(e.Name, name) {
			return true
		}
	}

	return false
}

// Count returns the number of entries recorded under name.
func (h Headers) Count(name string) int {
	n := 0
	for _, e := range h.entries {
		if strcomp.EqualFold(e.Name, name) {
			n++
		}
	}

	return n
}

// LineNumbers returns the line numbers of every entry recorded under name, in
// insertion order. Used to report errors against a specific occurrence (e.g.
// "the second Host header").
func (h Headers) LineNumbers(name string) []int {
	var lines []int

	for _, e := range h.entries {
		if strcomp.EqualFold(e.Name, name) {
			lines = append(lines, e.Line)
		}
	}

	return lines
}

// Len returns the total number of entries, across all names.
func (h Headers) Len() int {
	return len(h.entries)
}

// Entries exposes the underlying entries in insertion order. The returned
// slice must not be mutated.
func (h Headers) Entries() []Entry {
	return h.entries
}

// Iter returns an iterator over the entries in insertion order, grounded on
// KeyValue.Iter's use of iter.Slice.
func (h Headers) Iter() iter.Iterator[Entry] {
	return iter.Slice(h.entries)
}

// Builder accumulates header entries before they are frozen into a Headers
// value. Not safe for concurrent use, per spec.md §5.
type Builder struct {
	entries []Entry
}

func NewBuilder() *Builder {
	return &Builder{}
}

// With appends a new entry under name, preserving any existing entries under
// the same name. line is the 1-based source line number (for a synthesized
// entry, the line that triggered it), or 0 when no source line applies.
func (b *Builder) With(name, value string, line int) *Builder {
	b.entries = append(b.entries, Entry{Name: name, Value: value, Line: line})
	return b
}

// Overwrite removes every existing entry recorded under name and replaces
// them with a single entry, in the position of the first removed occurrence
// (or appended, if name wasn't present), so overwriting a header doesn't
// reshuffle a message's wire order.
func (b *Builder) Overwrite(name, value string, line int) *Builder {
	replaced := false
	kept := b.entries[:0]

	for _, e := range b.entries {
		if !strcomp.EqualFold(e.Name, name) {
			kept = append(kept, e)
			continue
		}

		if !replaced {
			kept = append(kept, Entry{Name: name, Value: value, Line: line})
			replaced = true
		}
	}

	if !replaced {
		kept = append(kept, Entry{Name: name, Value: value, Line: line})
	}

	b.entries = kept
	return b
}

// Get mirrors Headers.Get for use while still building.
func (b *Builder) Get(name string) []string {
	return Headers{entries: b.entries}.Get(name)
}

// Contains reports whether at least one entry is currently recorded under
// name.
func (b *Builder) Contains(name string) bool {
	for _, e := range b.entries {
		if strcomp.EqualFold(e.Name, name) {
			return true
		}
	}

	return false
}

// LineNumbers mirrors Headers.LineNumbers for use while still building.
func (b *Builder) LineNumbers(name string) []int {
	return Headers{entries: b.entries}.LineNumbers(name)
}

// Build freezes the builder into an immutable Headers value. The builder
// remains usable afterward, but further mutation does not affect already-built
// values (Build copies the entry slice).
func (b *Builder) Build() Headers {
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)

	return Headers{entries: entries}
}

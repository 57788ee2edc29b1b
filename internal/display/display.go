package display

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Paintersrp/lens/internal/vault"
)

// Source is the narrow slice of the vault the index depends on.
type Source interface {
	List() ([]string, error)
	Read(path string) (vault.Note, error)
}

// Record is the derived display data for one note, a pure function of the
// note's front matter and filename at the time it was computed.
type Record struct {
	Path        string
	DisplayName string
	Aliases     []string
	IsCustom    bool
	ModifiedAt  time.Time
}

// Index maps note paths to display records. It is a derived projection of the
// vault: Rebuild recomputes everything, Invalidate patches one entry, Remove
// drops one. All mutation happens on the caller's goroutine; the index itself
// holds no locks.
type Index struct {
	source   Source
	property string
	records  map[string]Record
}

// NewIndex constructs an empty index reading from source. An empty property
// key falls back to "title".
func NewIndex(source Source, property string) *Index {
	key := strings.TrimSpace(property)
	if key == "" {
		key = "title"
	}
	return &Index{
		source:   source,
		property: key,
		records:  make(map[string]Record),
	}
}

func (idx *Index) Property() string {
	return idx.property
}

// Rebuild clears the index and recomputes a record for every note the source
// enumerates. Safe to call repeatedly; an empty vault yields an empty index.
func (idx *Index) Rebuild() error {
	paths, err := idx.source.List()
	if err != nil {
		return fmt.Errorf("display: enumerate notes: %w", err)
	}

	records := make(map[string]Record, len(paths))
	for _, path := range paths {
		note, err := idx.source.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("display: read %s: %w", path, err)
		}
		rec := idx.derive(note)
		records[rec.Path] = rec
	}

	idx.records = records
	return nil
}

// Invalidate recomputes the record for a single note, inserting it if the
// note was not indexed before. A note that no longer exists is removed.
func (idx *Index) Invalidate(path string) error {
	if idx == nil {
		return nil
	}

	cleaned := filepath.Clean(path)
	note, err := idx.source.Read(cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			idx.Remove(cleaned)
			return nil
		}
		return fmt.Errorf("display: read %s: %w", cleaned, err)
	}

	if idx.records == nil {
		idx.records = make(map[string]Record)
	}
	rec := idx.derive(note)
	idx.records[rec.Path] = rec
	return nil
}

// Remove drops the record for path if present.
func (idx *Index) Remove(path string) {
	if idx == nil || len(idx.records) == 0 {
		return
	}
	delete(idx.records, filepath.Clean(path))
}

func (idx *Index) Get(path string) (Record, bool) {
	rec, ok := idx.records[filepath.Clean(path)]
	return rec, ok
}

func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns copies of every record sorted by path.
func (idx *Index) Records() []Record {
	out := make([]Record, 0, len(idx.records))
	for _, rec := range idx.records {
		rec.Aliases = append([]string(nil), rec.Aliases...)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// Clone returns an independent copy of the index sharing the same source.
func (idx *Index) Clone() *Index {
	if idx == nil {
		return nil
	}
	clone := NewIndex(idx.source, idx.property)
	clone.records = make(map[string]Record, len(idx.records))
	for path, rec := range idx.records {
		rec.Aliases = append([]string(nil), rec.Aliases...)
		clone.records[path] = rec
	}
	return clone
}

// derive computes a record from the note's front matter. The configured
// property wins when its trimmed value is non-empty; otherwise the basename
// is the display name. Aliases are trimmed and empties dropped.
func (idx *Index) derive(note vault.Note) Record {
	rec := Record{
		Path:        filepath.Clean(note.Path),
		DisplayName: vault.Basename(note.Path),
		ModifiedAt:  note.ModifiedAt,
	}

	if values, ok := note.FrontMatter[idx.property]; ok && len(values) > 0 {
		if name := strings.TrimSpace(values[0]); name != "" {
			rec.DisplayName = name
			rec.IsCustom = true
		}
	}

	if values, ok := note.FrontMatter["aliases"]; ok {
		for _, raw := range values {
			alias := strings.TrimSpace(raw)
			if alias == "" {
				continue
			}
			rec.Aliases = append(rec.Aliases, alias)
		}
	}

	return rec
}

package recent

import (
	"container/list"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// List tracks the most recently opened notes, newest first. It is a bounded
// LRU over note paths; touching a path moves it to the front and the oldest
// entry falls off when the bound is exceeded.
type List struct {
	size  int
	order *list.List
	items map[string]*list.Element
}

func NewList(size int) *List {
	if size <= 0 {
		size = 10
	}
	return &List{
		size:  size,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Touch records path as the most recently used entry.
func (l *List) Touch(path string) {
	cleaned := filepath.Clean(path)
	if ele, hit := l.items[cleaned]; hit {
		l.order.MoveToFront(ele)
		return
	}

	l.items[cleaned] = l.order.PushFront(cleaned)
	if l.order.Len() > l.size {
		oldest := l.order.Back()
		if oldest != nil {
			l.order.Remove(oldest)
			delete(l.items, oldest.Value.(string))
		}
	}
}

// Forget drops path from the list, e.g. after the note is deleted.
func (l *List) Forget(path string) {
	cleaned := filepath.Clean(path)
	if ele, hit := l.items[cleaned]; hit {
		l.order.Remove(ele)
		delete(l.items, cleaned)
	}
}

// Paths returns the tracked paths, most recent first.
func (l *List) Paths() []string {
	out := make([]string, 0, l.order.Len())
	for ele := l.order.Front(); ele != nil; ele = ele.Next() {
		out = append(out, ele.Value.(string))
	}
	return out
}

func (l *List) Len() int {
	return l.order.Len()
}

// Load reads a persisted recency list. A missing file is not an error; it
// yields an empty list.
func Load(path string, size int) (*List, error) {
	l := NewList(size)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l, nil
		}
		return nil, err
	}

	var paths []string
	if err := yaml.Unmarshal(data, &paths); err != nil {
		return nil, err
	}

	// Touch in reverse so the first persisted entry ends up most recent.
	for i := len(paths) - 1; i >= 0; i-- {
		l.Touch(paths[i])
	}
	return l, nil
}

// Save persists the list, most recent first.
func (l *List) Save(path string) error {
	data, err := yaml.Marshal(l.Paths())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

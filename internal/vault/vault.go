package vault

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/lens/internal/pathutil"
)

// Note is the raw material a display record is derived from: the parsed
// front matter of a markdown file plus its modification time. The vault owns
// note files; nothing in this package mutates them.
type Note struct {
	Path        string
	FrontMatter map[string][]string
	ModifiedAt  time.Time
}

// Vault enumerates and reads the markdown notes under a single directory.
type Vault struct {
	dir     string
	ignored []string
}

func New(dir string, ignored []string) *Vault {
	return &Vault{
		dir:     pathutil.NormalizePath(dir),
		ignored: append([]string(nil), ignored...),
	}
}

func (v *Vault) Dir() string {
	return v.dir
}

// List returns the sorted absolute paths of every markdown note in the vault,
// skipping dotted directories and configured ignored folders.
func (v *Vault) List() ([]string, error) {
	ignored := make(map[string]struct{}, len(v.ignored))
	for _, dir := range v.ignored {
		ignored[strings.ToLower(dir)] = struct{}{}
	}

	paths := make([]string, 0)
	err := filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := strings.ToLower(d.Name())
			if strings.HasPrefix(name, ".") && path != v.dir {
				return filepath.SkipDir
			}
			if _, skip := ignored[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			paths = append(paths, filepath.Clean(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// Read loads a single note's front matter and modification time. Malformed
// front matter is not an error; the note comes back with no metadata and the
// caller falls back to the filename.
func (v *Vault) Read(path string) (Note, error) {
	cleaned := filepath.Clean(path)

	data, err := os.ReadFile(cleaned)
	if err != nil {
		return Note{}, err
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return Note{}, err
	}

	fm := splitFrontMatter(data)
	parsed, err := parseFrontMatter(fm)
	if err != nil {
		parsed = map[string][]string{}
	}

	return Note{
		Path:        cleaned,
		FrontMatter: parsed,
		ModifiedAt:  info.ModTime().UTC(),
	}, nil
}

// Basename returns the note's filename without directory or extension, the
// fallback identity used when no display property is set.
func Basename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var frontMatterRe = regexp.MustCompile(`(?ms)^---\s*\n(.*?)\n---\s*\n?`)

func splitFrontMatter(data []byte) []byte {
	loc := frontMatterRe.FindSubmatchIndex(data)
	if len(loc) < 4 {
		return nil
	}
	return data[loc[2]:loc[3]]
}

func parseFrontMatter(fm []byte) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(fm) == 0 {
		return result, nil
	}

	var data yaml.Node
	if err := yaml.Unmarshal(fm, &data); err != nil {
		return nil, err
	}

	if data.Kind != yaml.DocumentNode || len(data.Content) == 0 {
		return result, nil
	}

	mapping := data.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return result, nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		values := flattenYAMLValue(mapping.Content[i+1])
		if values == nil {
			continue
		}
		result[key] = values
	}

	return result, nil
}

func flattenYAMLValue(node *yaml.Node) []string {
	switch node.Kind {
	case yaml.SequenceNode:
		vals := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Tag == "!!null" {
				continue
			}
			vals = append(vals, child.Value)
		}
		return vals
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return []string{node.Value}
	default:
		return nil
	}
}

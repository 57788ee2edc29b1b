package note

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Note describes a markdown note to be created in the vault. Title becomes
// the value of the configured display property in the new note's front
// matter; Filename defaults to a sanitized form of the title.
type Note struct {
	VaultDir string
	Filename string
	Title    string
	Property string
	Tags     []string
}

func New(vaultDir, title, property string, tags []string) *Note {
	return &Note{
		VaultDir: vaultDir,
		Filename: SanitizeFilename(title),
		Title:    strings.TrimSpace(title),
		Property: property,
		Tags:     tags,
	}
}

// SanitizeFilename strips characters that cannot appear in a filename and
// collapses whitespace to single dashes.
func SanitizeFilename(title string) string {
	cleaned := strings.TrimSpace(title)
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"#", "",
		"|", "-",
		"[", "",
		"]", "",
	)
	cleaned = replacer.Replace(cleaned)
	return strings.Join(strings.Fields(cleaned), "-")
}

func (n *Note) GetFilepath() string {
	return filepath.Join(n.VaultDir, n.Filename+".md")
}

func (n *Note) Exists() (bool, string, error) {
	path := n.GetFilepath()
	_, err := os.Stat(path)
	if err == nil {
		return true, path, nil
	}
	if os.IsNotExist(err) {
		return false, path, nil
	}
	return false, path, err
}

// Create writes the note file with front matter carrying the display
// property. Refuses to overwrite an existing note.
func (n *Note) Create() (string, error) {
	if n.Filename == "" {
		return "", fmt.Errorf("note title cannot be empty")
	}

	exists, path, err := n.Exists()
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("note already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "%s: %s\n", n.Property, n.Title)
	fmt.Fprintf(&b, "date: %s\n", time.Now().Format("2006-01-02"))
	if len(n.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range n.Tags {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}
	b.WriteString("---\n\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Open launches the configured editor on path and waits for it to exit.
func Open(path, editor, editorArgs string) error {
	cmdArgs := []string{editor, path}
	if editorArgs != "" {
		cmdArgs = append(cmdArgs, strings.Fields(editorArgs)...)
	}

	cmd := exec.Command(cmdArgs[0], cmdArgs[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", editor, err)
	}
	return nil
}

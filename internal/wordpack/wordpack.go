// Package wordpack provides the word collections prompts are drawn from.
package wordpack

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

//go:embed wordlists/english-1000.txt
var wordlistFS embed.FS

// Pack is a named collection of words to type.
type Pack struct {
	Name        string
	Description string
	Words       []string
}

var goWords = []string{
	"func", "package", "import", "return", "defer", "go", "chan", "select",
	"interface", "struct", "map", "range", "type", "var", "const", "if",
	"else", "for", "switch", "case", "break", "continue", "fallthrough",
	"goto", "nil", "true", "false", "error", "string", "int", "byte", "rune",
	"bool", "len", "cap", "make", "new", "append", "copy", "panic", "recover",
}

var pythonWords = []string{
	"def", "class", "import", "from", "return", "yield", "lambda", "async",
	"await", "with", "as", "try", "except", "finally", "raise", "None",
	"True", "False", "list", "dict", "set", "tuple", "str", "int", "float",
	"bool", "len", "range", "print", "enumerate",
}

// Builtin returns the packs bundled with the binary.
func Builtin() ([]Pack, error) {
	data, err := wordlistFS.ReadFile("wordlists/english-1000.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded word list: %w", err)
	}
	english, err := ParseWords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("embedded word list is invalid: %w", err)
	}
	return []Pack{
		{
			Name:        "english-1000",
			Description: fmt.Sprintf("Common English words (%d words)", len(english)),
			Words:       english,
		},
		{
			Name:        "go",
			Description: "Go keywords and common identifiers",
			Words:       goWords,
		},
		{
			Name:        "python",
			Description: "Python keywords and common identifiers",
			Words:       pythonWords,
		},
	}, nil
}

// ParseWords reads whitespace-separated words, one or more per line, skipping
// blank lines. An input with no words at all is an error.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadFile reads one pack's words from a plain-text file.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ParseWords(file)
}

// LoadDir reads every .txt file in dir as a custom pack named after the file.
// A missing directory simply yields no packs.
func LoadDir(dir string) ([]Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read pack directory: %w", err)
	}
	var packs []Pack
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".txt")
		words, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load pack %q: %w", name, err)
		}
		packs = append(packs, Pack{
			Name:        name,
			Description: fmt.Sprintf("Custom pack (%d words)", len(words)),
			Words:       words,
		})
	}
	return packs, nil
}

// All returns the built-in packs merged with the custom packs in dir, sorted
// by name. A custom pack shadows a built-in pack of the same name.
func All(dir string) ([]Pack, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	custom, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Pack, len(builtin)+len(custom))
	for _, pack := range builtin {
		byName[pack.Name] = pack
	}
	for _, pack := range custom {
		byName[pack.Name] = pack
	}
	packs := make([]Pack, 0, len(byName))
	for _, pack := range byName {
		packs = append(packs, pack)
	}
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Name < packs[j].Name
	})
	return packs, nil
}

// Find resolves a pack by exact name. For an unknown name the error carries
// the closest fuzzy match and the full list, so the CLI surfaces a usable
// hint instead of a bare failure.
func Find(packs []Pack, name string) (Pack, error) {
	for _, pack := range packs {
		if pack.Name == name {
			return pack, nil
		}
	}
	names := make([]string, 0, len(packs))
	for _, pack := range packs {
		names = append(names, pack.Name)
	}
	lines := []string{fmt.Sprintf("unknown word pack %q", name)}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		lines = append(lines, fmt.Sprintf("Did you mean %q?", matches[0].Str))
	}
	lines = append(lines, fmt.Sprintf("Available: %s", strings.Join(names, ", ")))
	lines = append(lines, "Run: koalatype packs")
	return Pack{}, fmt.Errorf("%s", strings.Join(lines, "\n"))
}

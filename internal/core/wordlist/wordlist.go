// Package wordlist loads the static per-language profanity corpus.
// Files live under data/<code>.json and are embedded at build time
package wordlist

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"profanity/internal/core/normalize"
)

//go:embed data/*.json
var embedded embed.FS

// Corpus maps a language code to its ordered phrase list. Read-only once built
type Corpus map[string][]string

// File is the on-disk shape of one language list
type File struct {
	Language string   `json:"language"`
	Words    []string `json:"words"`
}

var (
	once    sync.Once
	def     Corpus
	loadErr error
)

// Default returns the embedded corpus, parsed once per process
func Default() (Corpus, error) {
	once.Do(func() {
		def, loadErr = Load(embedded, "data")
	})
	return def, loadErr
}

// MustDefault is Default for package init paths
func MustDefault() Corpus {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads every *.json file in dir of fsys into a corpus.
// The language code comes from the file body, falling back to the file name
func Load(fsys fs.FS, dir string) (Corpus, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", dir, err)
	}

	c := make(Corpus, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("wordlist: read %s: %w", e.Name(), err)
		}
		var f File
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("wordlist: parse %s: %w", e.Name(), err)
		}
		code := normalize.Code(f.Language)
		if code == "" {
			code = normalize.Code(strings.TrimSuffix(e.Name(), ".json"))
		}
		if _, dup := c[code]; dup {
			return nil, fmt.Errorf("wordlist: duplicate language %q in %s", code, e.Name())
		}
		c[code] = Clean(f.Words)
	}
	return c, nil
}

// Clean lowercases, trims and dedupes phrases, keeping first-seen order
func Clean(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(normalize.Fold(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Has reports whether code has a list
func (c Corpus) Has(code string) bool {
	_, ok := c[code]
	return ok
}

// Languages returns the sorted language codes
func (c Corpus) Languages() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Marshal renders one language list in the file format, words sorted
func Marshal(code string, words []string) ([]byte, error) {
	ws := Clean(words)
	sort.Strings(ws)
	b, err := json.MarshalIndent(File{Language: code, Words: ws}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

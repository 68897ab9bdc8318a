// Package assets resolves audio cue names to files and checks they all exist.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/words"
)

// ErrMissingAsset marks a cue or font file that is absent or unreadable.
var ErrMissingAsset = errors.New("missing asset")

// Catalog maps cue names to files under Root.
type Catalog struct {
	Root string
	Ext  string
}

// NewCatalog returns a catalog, filling in the default root and extension.
func NewCatalog(root, ext string) Catalog {
	if root == "" {
		root = abc.AssetsDir
	}
	if ext == "" {
		ext = abc.AudioExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Catalog{Root: root, Ext: ext}
}

// AssetPath returns the file for a letter or word cue: the lower-cased name
// plus the audio extension, under the catalog root.
func (c Catalog) AssetPath(name string) string {
	return filepath.Join(c.Root, strings.ToLower(name)+c.Ext)
}

// Required lists every cue name the display may play: all letters, then
// every target word.
func Required(set *words.Set) []string {
	letters := abc.Alphabet()
	names := make([]string, 0, len(letters)+set.Len())
	for _, l := range letters {
		names = append(names, l.String())
	}
	return append(names, set.Words()...)
}

// Verify checks that every required cue exists as a regular file. All
// problems are reported together.
func (c Catalog) Verify(set *words.Set) error {
	var errs []error
	for _, name := range Required(set) {
		if err := CheckFile(c.AssetPath(name)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CheckFile reports ErrMissingAsset unless path is a readable regular file.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingAsset, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrMissingAsset, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingAsset, path, err)
	}
	return f.Close()
}

// Package assets resolves model.AssetRef names to Fyne resources. Images
// ship inside the binary; a directory provider lets designers drop in
// replacements without rebuilding.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/cooking/internal/model"
)

// ErrNotFound is returned when no provider knows an asset
var ErrNotFound = errors.New("asset not found")

//go:embed svg/*.svg
var embedded embed.FS

// Supported file extensions, in lookup order
var extensions = []string{".svg", ".png", ".jpg"}

// Provider resolves an asset ref to a drawable resource
type Provider interface {
	Resource(ref model.AssetRef) (fyne.Resource, error)
}

// Embedded serves the images compiled into the binary
type Embedded struct {
	cache map[model.AssetRef]fyne.Resource
}

// NewEmbedded creates the provider for built-in images
func NewEmbedded() *Embedded {
	return &Embedded{cache: make(map[model.AssetRef]fyne.Resource)}
}

// Resource implements Provider
func (e *Embedded) Resource(ref model.AssetRef) (fyne.Resource, error) {
	if res, ok := e.cache[ref]; ok {
		return res, nil
	}

	name := ref.String() + ".svg"
	data, err := embedded.ReadFile("svg/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	res := fyne.NewStaticResource(name, data)
	e.cache[ref] = res
	return res, nil
}

// Refs lists every embedded asset
func (e *Embedded) Refs() []model.AssetRef {
	entries, err := embedded.ReadDir("svg")
	if err != nil {
		return nil
	}
	refs := make([]model.AssetRef, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		refs = append(refs, model.AssetRef(name[:len(name)-len(filepath.Ext(name))]))
	}
	return refs
}

// Dir loads images from a directory, falling back to another provider for
// refs it has no file for.
type Dir struct {
	root     string
	fallback Provider
}

// NewDir creates a directory provider. fallback may be nil.
func NewDir(root string, fallback Provider) *Dir {
	return &Dir{root: root, fallback: fallback}
}

// Resource implements Provider
func (d *Dir) Resource(ref model.AssetRef) (fyne.Resource, error) {
	for _, ext := range extensions {
		path := filepath.Join(d.root, ref.String()+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("load asset %s: %w", path, err)
		}
		return res, nil
	}

	if d.fallback != nil {
		return d.fallback.Resource(ref)
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, ref, d.root)
}

// Resolve returns the resource for ref, or Fyne's broken image icon when the
// provider fails. Missing art must never take the screen down.
func Resolve(p Provider, ref model.AssetRef) fyne.Resource {
	res, err := p.Resource(ref)
	if err != nil {
		slog.Warn("Asset unavailable, using placeholder", "ref", ref, "error", err)
		return theme.BrokenImageIcon()
	}
	return res
}

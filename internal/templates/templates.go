// Package templates provides embedded templates for mod scaffolding.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"text/template"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
)

//go:embed mod/*.tmpl
var modTemplates embed.FS

// ManifestFile is the name of the starter manifest written next to a new mod.
const ManifestFile = "modmaker.yaml"

// Dependency is one line of the README dependency list.
type Dependency struct {
	ID      string
	Version string
}

// ModData contains the data used to render mod templates.
type ModData struct {
	ModID        string
	Name         string
	Description  string
	Version      string
	Side         string
	Type         string
	ManifestName string
	Authors      []string
	Dependencies []Dependency
}

// NewModData builds template data from a modinfo form.
func NewModData(info *entities.ModInfo) ModData {
	deps := make([]Dependency, 0, len(info.Dependencies))
	for _, id := range info.DependencyIDs() {
		deps = append(deps, Dependency{ID: id, Version: info.Dependencies[id]})
	}
	return ModData{
		ModID:        info.ModID,
		Name:         info.Name,
		Description:  info.Description,
		Version:      info.Version,
		Side:         info.Side.String(),
		Type:         info.Type.String(),
		ManifestName: ManifestFile,
		Authors:      info.CleanAuthors(),
		Dependencies: deps,
	}
}

// ModTemplates returns the parsed mod templates.
func ModTemplates() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(modTemplates, "mod/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	return tmpl, nil
}

// Renderer renders mod files from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := ModTemplates()
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderReadme renders README.md for a new mod.
func (r *Renderer) RenderReadme(info *entities.ModInfo) ([]byte, error) {
	return r.render("README.md.tmpl", NewModData(info))
}

// RenderManifest renders a starter manifest for a new mod.
func (r *Renderer) RenderManifest(info *entities.ModInfo) ([]byte, error) {
	return r.render("modmaker.yaml.tmpl", NewModData(info))
}

func (r *Renderer) render(name string, data ModData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

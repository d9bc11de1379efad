package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

const emptyCell = "·"

// TableEncoder renders documents as terminal tables. Recipes are drawn as
// their grid; every other document as a field/value listing.
type TableEncoder struct {
	EnableColor bool
}

// NewTableEncoder creates a new table encoder.
func NewTableEncoder(color bool) *TableEncoder {
	return &TableEncoder{EnableColor: color}
}

// Encode renders doc as one or more tables.
func (e *TableEncoder) Encode(doc any) ([]byte, error) {
	if r, ok := doc.(*services.GridRecipeDocument); ok {
		return []byte(e.recipe(r)), nil
	}

	rows, err := flatten(doc)
	if err != nil {
		return nil, err
	}
	tw := newWriter()
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r[0], r[1]})
	}
	return []byte(tw.Render() + "\n"), nil
}

func (e *TableEncoder) colorize(s string, c text.Color) string {
	if !e.EnableColor {
		return s
	}
	return c.Sprint(s)
}

func (e *TableEncoder) recipe(r *services.GridRecipeDocument) string {
	var b strings.Builder

	if !r.Shapeless {
		grid := newWriter()
		for _, row := range services.PatternRows(r.IngredientPattern) {
			cells := make(table.Row, 0, len(row))
			for _, sym := range row {
				if sym == ' ' {
					cells = append(cells, e.colorize(emptyCell, text.FgHiBlack))
				} else {
					cells = append(cells, e.colorize(string(sym), text.FgCyan))
				}
			}
			grid.AppendRow(cells)
		}
		grid.Style().Options.SeparateRows = true
		b.WriteString(grid.Render())
		b.WriteString("\n")
	}

	symbols := make([]string, 0, len(r.Ingredients))
	for sym := range r.Ingredients {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	legend := newWriter()
	legend.AppendHeader(table.Row{"Symbol", "Kind", "Code"})
	for _, sym := range symbols {
		ing := r.Ingredients[sym]
		legend.AppendRow(table.Row{e.colorize(sym, text.FgCyan), stackKind(ing.Type), ing.Code})
	}
	legend.AppendFooter(table.Row{"=>", stackKind(r.Output.Type), fmt.Sprintf("%s x%d", r.Output.Code, r.Output.Quantity)})
	b.WriteString(legend.Render())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%dx%d", r.Width, r.Height)
	if r.Shapeless {
		b.WriteString(", shapeless")
	}
	if r.Enabled != nil && !*r.Enabled {
		b.WriteString(", disabled")
	}
	if r.RecipeGroup != 0 {
		fmt.Fprintf(&b, ", group %d", r.RecipeGroup)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderSession draws the editor state: the grid with short ingredient names
// and the palette with the selection marked.
func RenderSession(s *entities.RecipeSession) string {
	grid := newWriter()
	header := make(table.Row, 0, s.Width()+1)
	header = append(header, "")
	for x := 0; x < s.Width(); x++ {
		header = append(header, x+1)
	}
	grid.AppendHeader(header)
	for y := 0; y < s.Height(); y++ {
		row := table.Row{y + 1}
		for x := 0; x < s.Width(); x++ {
			p, ok := s.Cell(x, y)
			if !ok {
				row = append(row, emptyCell)
				continue
			}
			row = append(row, cellLabel(p.IngredientRef))
		}
		grid.AppendRow(row)
	}

	selected, hasSelection := s.Selected()
	palette := newWriter()
	palette.AppendHeader(table.Row{"", "#", "Kind", "Code"})
	for i, ref := range s.Palette() {
		mark := ""
		if hasSelection && ref.ID == selected.ID {
			mark = "*"
		}
		palette.AppendRow(table.Row{mark, i + 1, ref.Kind, ref.Code})
	}

	out := s.Output()
	return fmt.Sprintf("%s\n%s\nOutput: %s x%d (%s)\nShapeless: %s  Group: %d  Enabled: %s\n",
		grid.Render(), palette.Render(), out.Code, out.Quantity, out.Kind,
		yesNo(s.Shapeless()), s.RecipeGroup(), yesNo(s.Enabled()))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RenderBuildSummary lists the files a build wrote plus its warnings.
func RenderBuildSummary(resp *dto.BuildProjectResponse) string {
	tw := newWriter()
	tw.AppendHeader(table.Row{"Kind", "Name", "Path"})
	for _, f := range resp.Written {
		tw.AppendRow(table.Row{f.Kind, f.Name, f.Path})
	}
	for _, s := range resp.Skipped {
		kind, name, _ := strings.Cut(s, "/")
		tw.AppendRow(table.Row{kind, name, "(skipped)"})
	}
	tw.AppendFooter(table.Row{"", len(resp.Written), resp.ModPath})

	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteString("\n")
	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

func newWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// Footers carry codes and paths, which must keep their case.
	tw.Style().Format.Footer = text.FormatDefault
	return tw
}

func cellLabel(ref entities.IngredientRef) string {
	label := ref.Code
	if ac, err := values.NewAssetCode(ref.Code); err == nil {
		label = ac.ShortName()
	}
	if !ref.Kind.IsDefault() {
		label += "@" + ref.Kind.String()
	}
	return label
}

func stackKind(t string) string {
	if t == "" {
		return values.KindItem.String()
	}
	return t
}

// flatten turns a document into sorted dotted-path/value pairs.
func flatten(doc any) ([][2]string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	var rows [][2]string
	var walk func(prefix string, v any)
	walk = func(prefix string, v any) {
		switch node := v.(type) {
		case map[string]any:
			keys := make([]string, 0, len(node))
			for k := range node {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			if len(keys) == 0 {
				rows = append(rows, [2]string{prefix, "{}"})
			}
			for _, k := range keys {
				key := k
				if prefix != "" {
					key = prefix + "." + k
				}
				walk(key, node[k])
			}
		case []any:
			parts := make([]string, len(node))
			for i, item := range node {
				parts[i] = fmt.Sprint(item)
			}
			rows = append(rows, [2]string{prefix, strings.Join(parts, ", ")})
		default:
			rows = append(rows, [2]string{prefix, fmt.Sprint(node)})
		}
	}
	walk("", tree)
	return rows, nil
}

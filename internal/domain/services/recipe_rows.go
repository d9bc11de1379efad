package services

import (
	"fmt"
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

const (
	// BlankToken marks an empty cell in a row.
	BlankToken = "_"
	// CellSeparator separates cells within a row.
	CellSeparator = ","
	kindSeparator = "@"
)

// ParseCellToken reads one cell token: "_" or "" for an empty cell, "code" for
// an item and "code@block" for a block. Codes without a domain get "game:".
func ParseCellToken(token string) (code string, kind values.ItemKind, blank bool, err error) {
	token = strings.TrimSpace(token)
	if token == "" || token == BlankToken {
		return "", "", true, nil
	}

	kind = values.KindItem
	if i := strings.LastIndex(token, kindSeparator); i >= 0 {
		if kind, err = values.NewItemKind(token[i+1:]); err != nil {
			return "", "", false, fmt.Errorf("cell %q: %w", token, err)
		}
		token = token[:i]
	}

	ac, err := values.NewAssetCode(token)
	if err != nil {
		return "", "", false, fmt.Errorf("cell %q: %w", token, err)
	}
	return ac.Qualified(), kind, false, nil
}

// FillFromRows sizes the session's grid to the rows and places each token.
// Rows are comma separated; a row shorter than the widest row is padded with
// empty cells. Tokens not yet in the palette are added to it.
func FillFromRows(s *entities.RecipeSession, rows []string) error {
	cells := make([][]string, len(rows))
	width := 0
	for y, row := range rows {
		cells[y] = strings.Split(row, CellSeparator)
		width = max(width, len(cells[y]))
	}

	if err := s.Resize(width, len(rows)); err != nil {
		return err
	}
	s.ClearGrid()

	for y, row := range cells {
		for x, token := range row {
			code, kind, blank, err := ParseCellToken(token)
			if err != nil {
				return fmt.Errorf("row %d: %w", y+1, err)
			}
			if blank {
				continue
			}
			ref, ok := s.FindIngredient(code, kind)
			if !ok {
				if ref, err = s.AddIngredientToPalette(code, kind); err != nil {
					return fmt.Errorf("row %d: %w", y+1, err)
				}
			}
			s.PlaceIngredient(x, y, &ref)
		}
	}
	s.ClearSelection()
	return nil
}

// RowsFromSession renders the grid back into row tokens.
func RowsFromSession(s *entities.RecipeSession) []string {
	rows := make([]string, s.Height())
	for y := range rows {
		tokens := make([]string, s.Width())
		for x := range tokens {
			p, ok := s.Cell(x, y)
			switch {
			case !ok:
				tokens[x] = BlankToken
			case p.Kind.IsDefault():
				tokens[x] = p.Code
			default:
				tokens[x] = p.Code + kindSeparator + p.Kind.String()
			}
		}
		rows[y] = strings.Join(tokens, CellSeparator)
	}
	return rows
}

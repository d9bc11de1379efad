// Package validation reflects JSON Schemas from the generated document types
// and checks documents against them.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

// Document kinds with a schema.
const (
	KindRecipe  = "recipe"
	KindItem    = "item"
	KindBlock   = "block"
	KindModInfo = "modinfo"
)

type documentSchema struct {
	typ         reflect.Type
	title       string
	description string
	// open allows properties the generator never writes; the game accepts
	// many more fields on item and block types than the forms cover.
	open bool
}

var documentSchemas = map[string]documentSchema{
	KindRecipe: {
		typ:         reflect.TypeOf(services.GridRecipeDocument{}),
		title:       "Grid Recipe",
		description: "A crafting grid recipe under assets/<modid>/recipes/grid.",
	},
	KindItem: {
		typ:         reflect.TypeOf(services.ItemDocument{}),
		title:       "Item Type",
		description: "An item type under assets/<modid>/itemtypes.",
		open:        true,
	},
	KindBlock: {
		typ:         reflect.TypeOf(services.BlockDocument{}),
		title:       "Block Type",
		description: "A block type under assets/<modid>/blocktypes.",
		open:        true,
	},
	KindModInfo: {
		typ:         reflect.TypeOf(services.ModInfoDocument{}),
		title:       "Mod Info",
		description: "The modinfo.json descriptor at the root of a mod.",
	},
}

// Kinds returns the document kinds with a schema, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(documentSchemas))
	for k := range documentSchemas {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Reflect builds the JSON Schema for a document kind.
func Reflect(kind string) (*jsonschema.Schema, error) {
	doc, ok := documentSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind: %s (supported: %v)", kind, Kinds())
	}

	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.ReflectFromType(doc.typ)
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect %s schema", kind)
	}
	schema.Title = doc.title
	schema.Description = doc.description
	if doc.open {
		schema.AdditionalProperties = &jsonschema.Schema{}
	}
	return schema, nil
}

// SchemaJSON returns the indented JSON Schema for a document kind.
func SchemaJSON(kind string) ([]byte, error) {
	schema, err := Reflect(kind)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", kind, err)
	}
	return append(data, '\n'), nil
}

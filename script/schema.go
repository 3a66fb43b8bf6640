package script

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/mo"
)

var optionalString = reflect.TypeOf(mo.Option[string]{})

// Schema returns the JSON Schema of the document written by WriteJSON.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
		if t != optionalString {
			return nil
		}

		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "null"},
			},
		}
	}

	return reflector.Reflect(&Output{})
}

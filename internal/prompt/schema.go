package prompt

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// NewReportSchema returns the indented JSON Schema of Report, the document
// printed by the json output format.
func NewReportSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}

	return json.MarshalIndent(r.Reflect(&Report{}), "", "  ")
}

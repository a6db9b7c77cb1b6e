package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the options schema.
const SchemaID = "https://github.com/RobbieVerdurme/truncate.js/options.schema.json"

// Schema returns the JSON schema of an options file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "json",
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Options{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "truncate options"
	return s
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}

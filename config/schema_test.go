package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, SchemaID, doc["$id"])
	assert.Equal(t, "object", doc["type"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema has properties")
	for _, key := range []string{"ellipsis", "max_height", "position", "show_more", "show_less", "lines", "line_height"} {
		assert.Contains(t, props, key)
	}

	position, ok := props["position"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"start", "middle", "end"}, position["enum"])
}

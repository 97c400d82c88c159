package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := Default()
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.Database.DSN = ""
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn is required")

	cfg = Default()
	cfg.Cache.PurgeSchedule = ""
	require.Error(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	defs, ok := parsed["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Config", "SiteConfig", "RenderConfig", "CacheConfig"} {
		assert.Contains(t, defs, name)
	}

	var embedded map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &embedded))
	assert.Contains(t, embedded["$defs"], "Config")
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/springweb/springweb/internal/config"
)

// SampleProperties is the values.properties content used across tests
const SampleProperties = `config.code=12345
config.username=Jose
config.message=Hola que tal
config.listOfValues=hola,que,tal
config.valuesMap={product:'Computadora', description:'Alienware', price:1000}
`

// NewTestConfig loads a config from SampleProperties followed by extra lines.
func NewTestConfig(t *testing.T, extra ...string) *config.Config {
	t.Helper()

	content := SampleProperties
	for _, line := range extra {
		content += line + "\n"
	}

	path := filepath.Join(t.TempDir(), "values.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

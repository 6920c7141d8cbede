package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springweb/springweb/internal/config"
	"github.com/springweb/springweb/internal/testutil"
)

func TestValuesService_Snapshot(t *testing.T) {
	t.Run("exposes every configured value", func(t *testing.T) {
		svc := NewValuesService(testutil.NewTestConfig(t))

		snap := svc.Snapshot()

		assert.Equal(t, "Jose", snap.Username)
		assert.Equal(t, "Hola que tal", snap.Message)
		assert.Equal(t, 12345, snap.Code)
		assert.Equal(t, []string{"hola", "que", "tal"}, snap.ListOfValues)
		assert.Equal(t, []string{"hola", "que", "tal"}, snap.ValueList)
		assert.Equal(t, "HOLA,QUE,TAL", snap.ValueString)
		assert.Equal(t, "Computadora", snap.Product)
		assert.Equal(t, "Alienware", snap.ValuesMap["description"])

		require.NotNil(t, snap.Message2)
		assert.Equal(t, "Hola que tal", *snap.Message2)
		require.NotNil(t, snap.Code2)
		assert.Equal(t, 12345, *snap.Code2)
	})

	t.Run("zero config yields empty values and null lookups", func(t *testing.T) {
		svc := NewValuesService(&config.Config{})

		snap := svc.Snapshot()

		assert.Empty(t, snap.ListOfValues)
		assert.NotNil(t, snap.ValuesMap)
		assert.Nil(t, snap.Message2)
		assert.Nil(t, snap.Code2)
	})
}

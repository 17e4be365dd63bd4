// internal/database/connection_test.go
package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgepeptides/forge-backend/internal/config"
)

func TestConnectWithoutURL(t *testing.T) {
	st, err := Connect(config.DatabaseConfig{Name: "forgepeptides", ConnectTimeout: 1})

	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestConnectRejectsMalformedURL(t *testing.T) {
	st, err := Connect(config.DatabaseConfig{
		URL:            "://not-a-connection-string",
		Name:           "forgepeptides",
		ConnectTimeout: 1,
	})

	assert.Error(t, err)
	assert.Nil(t, st)
}

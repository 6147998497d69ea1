package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTablesCounterStore(t *testing.T) {
	input, err := GetTables("dev_hitcounterstore")

	assert.NoError(t, err)
	assert.Equal(t, "dev_hitcounterstore", *input.TableName)
	assert.Len(t, input.KeySchema, 2)
	assert.Equal(t, "user", *input.KeySchema[0].AttributeName)
	assert.Equal(t, "page_id", *input.KeySchema[1].AttributeName)
}

func TestGetTablesUserStoreWithoutPrefix(t *testing.T) {
	input, err := GetTables("userstore")

	assert.NoError(t, err)
	assert.Equal(t, "userstore", *input.TableName)
	assert.Equal(t, "list", *input.KeySchema[0].AttributeName)
	assert.Equal(t, "username", *input.KeySchema[1].AttributeName)
}

func TestGetTablesUnknownSchema(t *testing.T) {
	_, err := GetTables("dev_unknown")

	assert.Error(t, err)
}

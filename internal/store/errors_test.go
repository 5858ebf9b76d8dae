package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	inner := errors.New("connection refused")

	err := NewStoreError("item", "update", "failed to execute query", inner)

	assert.Equal(t, "update operation on item failed: failed to execute query: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)

	noInner := NewStoreError("user", "create", "failed to insert row", nil)
	assert.Equal(t, "create operation on user failed: failed to insert row", noInner.Error())
	assert.Nil(t, errors.Unwrap(noInner))
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{CustomerID: "cust-1", Admin: true})
	id, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, Identity{CustomerID: "cust-1", Admin: true}, id)
}

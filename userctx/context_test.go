package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type actor struct{}

func (actor) String() string     { return "jane@example.com" }
func (actor) IdentityID() string { return "jane" }

func TestActor(t *testing.T) {
	ctx := context.Background()

	_, ok := GetActor(ctx)
	assert.False(t, ok)
	assert.Equal(t, "anonymous", GetActorName(ctx))

	ctx = SetActor(ctx, actor{})
	got, ok := GetActor(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jane", got.IdentityID())
	assert.Equal(t, "jane@example.com", GetActorName(ctx))
}

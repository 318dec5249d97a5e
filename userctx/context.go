package userctx

import (
	"context"

	"github.com/blogem/adminjournal/models"
)

// Context key type
type contextKey string

const actorKey contextKey = "actor"

// SetActor adds the authenticated identity to the request context
func SetActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the authenticated identity from the request context
func GetActor(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(models.Actor)
	return actor, ok && actor != nil
}

// GetActorName returns the display name of the identity, or "anonymous"
func GetActorName(ctx context.Context) string {
	if actor, ok := GetActor(ctx); ok {
		return actor.String()
	}
	return "anonymous"
}

package usecase

import (
	"context"

	"hospital-food-service/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorID returns the authenticated user behind the request, or nil when the
// operation has no actor. Audit rows keep a nullable user reference.
func actorID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

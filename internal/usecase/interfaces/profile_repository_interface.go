package interfaces

import (
	"context"

	"nanny_booking/internal/domain/entities"
)

// IProfileRepository abstracts the remote profile record (DynamoDB or MongoDB).
//
// Upsert writes only the keys present in fields and creates the record when it
// does not exist. GetByClientID returns a zero Profile when there is no record.
type IProfileRepository interface {
	Upsert(ctx context.Context, clientID string, fields map[string]any) error
	GetByClientID(ctx context.Context, clientID string) (entities.Profile, error)
}

package repository

import (
	"context"
	"errors"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profilesCollectionName = "profiles"

// ProfileMongoRepository stores client profiles in MongoDB, one document per
// client keyed by _id. Upsert uses $set so absent keys keep their stored value.
type ProfileMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IProfileRepository = (*ProfileMongoRepository)(nil)

func NewProfileMongoRepository(db *mongo.Database) *ProfileMongoRepository {
	return &ProfileMongoRepository{coll: db.Collection(profilesCollectionName)}
}

func (r *ProfileMongoRepository) Upsert(ctx context.Context, clientID string, fields map[string]any) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{profileKeyMongo: clientID},
		bson.M{"$set": profileSetDocument(fields, nowString())},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ProfileMongoRepository) GetByClientID(ctx context.Context, clientID string) (entities.Profile, error) {
	var doc profileDocument
	if err := r.coll.FindOne(ctx, bson.M{profileKeyMongo: clientID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	return fromProfileDocument(doc), nil
}

// profileSetDocument builds the $set body. The _id is never part of it.
func profileSetDocument(fields map[string]any, now string) bson.M {
	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		if k == profileKeyMongo {
			continue
		}
		set[k] = v
	}
	set[profileUpdatedAt] = now
	return set
}

package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoDocuments is returned by FindOne when nothing matches the filter.
var ErrNoDocuments = errors.New("store: no documents in result")

// Collection is the subset of document-store operations the resource
// services need: find, insert, update and delete by filter. Filters are
// plain bson maps; uniqueness rules live in the services, not here.
type Collection interface {
	FindOne(ctx context.Context, filter bson.M, dest any) error
	Find(ctx context.Context, filter bson.M, dest any) error
	InsertOne(ctx context.Context, doc any) (*InsertResult, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
}

// InsertResult mirrors the driver's insert acknowledgement; it is returned
// to API clients verbatim.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

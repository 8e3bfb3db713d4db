package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names backing the four resources.
const (
	usersCollection       = "users"
	coursesCollection     = "courses"
	instructorsCollection = "instructors"
	enrollCollection      = "enroll"
)

// Mongo adapts a mongo database to the Collection interface. One instance is
// constructed at startup and injected into the services.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{db: client.Database(dbName)}
}

func (m *Mongo) Users() Collection       { return &mongoCollection{c: m.db.Collection(usersCollection)} }
func (m *Mongo) Courses() Collection     { return &mongoCollection{c: m.db.Collection(coursesCollection)} }
func (m *Mongo) Instructors() Collection { return &mongoCollection{c: m.db.Collection(instructorsCollection)} }
func (m *Mongo) Enrollments() Collection { return &mongoCollection{c: m.db.Collection(enrollCollection)} }

type mongoCollection struct {
	c *mongo.Collection
}

func (mc *mongoCollection) FindOne(ctx context.Context, filter bson.M, dest any) error {
	err := mc.c.FindOne(ctx, filter).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	return err
}

func (mc *mongoCollection) Find(ctx context.Context, filter bson.M, dest any) error {
	cursor, err := mc.c.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, dest)
}

func (mc *mongoCollection) InsertOne(ctx context.Context, doc any) (*InsertResult, error) {
	res, err := mc.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (mc *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (*UpdateResult, error) {
	res, err := mc.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (mc *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	res, err := mc.c.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

package store

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-memory Collection with the same contract as the
// mongo adapter: filter semantics cover equality and array membership, and
// an _id is assigned on insert when the document carries none. It backs the
// service and handler tests.
type MemoryCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

// Len reports the number of stored documents.
func (c *MemoryCollection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func (c *MemoryCollection) FindOne(_ context.Context, filter bson.M, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDoc(doc, dest)
		}
	}
	return ErrNoDocuments
}

func (c *MemoryCollection) Find(_ context.Context, filter bson.M, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return errors.New("store: dest must be a pointer to a slice")
	}

	slice := rv.Elem()
	elemType := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(c.docs))
	for _, doc := range c.docs {
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

func (c *MemoryCollection) InsertOne(_ context.Context, doc any) (*InsertResult, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	id, ok := m["_id"]
	if !ok {
		oid := primitive.NewObjectID()
		m["_id"] = oid
		id = oid
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, m)
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *MemoryCollection) UpdateOne(_ context.Context, filter bson.M, set bson.M) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if !matches(doc, filter) {
			continue
		}
		res := &UpdateResult{Acknowledged: true, MatchedCount: 1}
		for k, v := range set {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				res.ModifiedCount = 1
			}
		}
		return res, nil
	}
	return &UpdateResult{Acknowledged: true}, nil
}

func (c *MemoryCollection) DeleteOne(_ context.Context, filter bson.M) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{Acknowledged: true}, nil
}

// matches implements mongo equality semantics: a filter value matches when
// the stored field equals it, or when the stored field is an array that
// contains it.
func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if arr, isArr := got.(primitive.A); isArr {
			if containsValue(arr, want) {
				continue
			}
			return false
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func containsValue(arr primitive.A, want any) bool {
	for _, v := range arr {
		if reflect.DeepEqual(v, want) {
			return true
		}
	}
	return false
}

func decodeDoc(doc bson.M, dest any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, dest)
}

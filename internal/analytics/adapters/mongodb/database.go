package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Cursor is the subset of *mongo.Cursor the repository reads with.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}

type Collection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (Cursor, error)
}

type Database interface {
	Collection(name string) Collection
}

type mongoDatabase struct {
	db *mongo.Database
}

func NewDatabase(db *mongo.Database) Database {
	return &mongoDatabase{db: db}
}

func (d *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{c: d.db.Collection(name)}
}

type mongoCollection struct {
	c *mongo.Collection
}

func (c *mongoCollection) Find(ctx context.Context, filter any, opts ...*options.FindOptions) (Cursor, error) {
	cur, err := c.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

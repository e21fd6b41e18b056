package repository

import (
	"context"
	"errors"

	"aura-backend/internal/domain/session"
	aura_errors "aura-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoSessionRepository struct {
	collection *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) SessionRepository {
	return &MongoSessionRepository{collection: db.Collection("sessions")}
}

func (r *MongoSessionRepository) Create(ctx context.Context, s *session.Session) error {
	res, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *MongoSessionRepository) GetByID(ctx context.Context, id string) (session.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return session.Session{}, aura_errors.ErrNotFound
	}

	var s session.Session
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return session.Session{}, aura_errors.ErrNotFound
		}
		return session.Session{}, err
	}
	return s, nil
}

// GetAll returns every session document, unfiltered and unsorted.
func (r *MongoSessionRepository) GetAll(ctx context.Context) ([]session.Session, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []session.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoSessionRepository) Update(ctx context.Context, s session.Session) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return aura_errors.ErrNotFound
	}
	return nil
}

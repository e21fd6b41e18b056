package repository

import (
	"context"
	"errors"

	"aura-backend/internal/domain/user"
	aura_errors "aura-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *user.User) error {
	res, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return aura_errors.ErrAlreadyExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user.User{}, aura_errors.ErrNotFound
	}

	var u user.User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, aura_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, aura_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user.User{}, aura_errors.ErrNotFound
	}

	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u user.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": update}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, aura_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

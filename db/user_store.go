package db

import (
	"context"
	"errors"
	"fmt"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateUser   = errors.New("user with this google id or email already exists")
	ErrVersionConflict = errors.New("user was modified concurrently, reload and retry")
)

// MongoUserStore keeps one document per user in the users collection
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(database *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: database.Collection(usersCollection)}
}

// EnsureIndexes creates the unique indexes on googleId and email
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "googleId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"googleId": googleID})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Version = 1
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Save replaces the whole document, but only if nobody else saved it since
// it was loaded. On success user.Version is advanced.
func (s *MongoUserStore) Save(ctx context.Context, user *models.User) error {
	loaded := user.Version
	user.Version = loaded + 1

	filter := bson.M{"_id": user.ID, "version": loaded}
	if loaded == 0 {
		// documents written before versioning have no version field
		filter = bson.M{"_id": user.ID, "$or": bson.A{
			bson.M{"version": 0},
			bson.M{"version": bson.M{"$exists": false}},
		}}
	}

	res, err := s.coll.ReplaceOne(ctx, filter, user)
	if err != nil {
		user.Version = loaded
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	user.Version = loaded

	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": user.ID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return ErrVersionConflict
}

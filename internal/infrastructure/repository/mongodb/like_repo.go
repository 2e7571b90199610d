package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository represents the MongoDB implementation of the ILikeRepository interface.
type LikeRepository struct {
	collection *mongo.Collection
	uuidGen    contract.IUUIDGenerator
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

// NewLikeRepository creates and returns a new LikeRepository instance.
func NewLikeRepository(db *mongo.Database, uuidGen contract.IUUIDGenerator) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection("reactions"),
		uuidGen:    uuidGen,
	}
}

// EnsureIndexes keeps one reaction document per user and target, and supports the count queries.
func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "target_id", Value: 1}, {Key: "target_type", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "target_id", Value: 1}, {Key: "target_type", Value: 1}, {Key: "type", Value: 1}, {Key: "is_deleted", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create reaction indexes: %w", err)
	}
	return nil
}

// UpsertReaction creates or updates a user's reaction (like/dislike) on a target.
func (r *LikeRepository) UpsertReaction(ctx context.Context, reaction *entity.Reaction) error {
	filter := bson.M{
		"user_id":     reaction.UserID,
		"target_id":   reaction.TargetID,
		"target_type": reaction.TargetKind,
	}

	now := time.Now()
	updateFields := bson.M{
		"type":       reaction.Type,
		"is_deleted": false,
		"updated_at": now,
	}

	// Fields to set ONLY on initial insert
	setOnInsertFields := bson.M{
		"_id":        r.uuidGen.NewUUID(),
		"created_at": now,
	}

	updateDoc := bson.M{
		"$set":         updateFields,
		"$setOnInsert": setOnInsertFields,
	}

	res, err := r.collection.UpdateOne(ctx, filter, updateDoc, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create or update reaction record: %w", err)
	}

	if res.UpsertedID != nil {
		id, ok := res.UpsertedID.(string)
		if !ok {
			return fmt.Errorf("upserted ID is not a string, got type %T", res.UpsertedID)
		}
		reaction.ID = id
		reaction.CreatedAt = now
	}
	reaction.IsDeleted = false
	reaction.UpdatedAt = now
	return nil
}

// DeleteReaction marks a reaction record as deleted (soft delete) by its unique ID.
func (r *LikeRepository) DeleteReaction(ctx context.Context, reactionID string) error {
	filter := bson.M{"_id": reactionID, "is_deleted": false}
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if res.ModifiedCount == 0 {
		return contract.ErrReactionNotFound
	}
	return nil
}

// GetReaction retrieves the active reaction by a user on a target.
func (r *LikeRepository) GetReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error) {
	var reaction entity.Reaction
	filter := bson.M{"user_id": userID, "target_id": targetID, "target_type": kind, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return &reaction, nil
}

// CountByType counts the active reactions of one type on a target.
func (r *LikeRepository) CountByType(ctx context.Context, targetID string, kind entity.TargetKind, reactionType entity.ReactionType) (int64, error) {
	filter := bson.M{"target_id": targetID, "target_type": kind, "type": reactionType, "is_deleted": false}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count active %ss: %w", reactionType, err)
	}
	return count, nil
}

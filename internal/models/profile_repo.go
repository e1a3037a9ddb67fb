package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepo interface {
	UpsertProfile(ctx context.Context, userID primitive.ObjectID, fields ProfileFields) (*Profile, error)
	GetProfileByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	ListProfiles(ctx context.Context) ([]*Profile, error)
	DeleteProfileByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
}

// UpsertProfile replaces the merge-target fields of the profile owned by
// userID, creating the document when none exists. The store performs the
// find-and-modify as one atomic step, so callers never observe a partial write.
func (mdb *MongodbRepo) UpsertProfile(ctx context.Context, userID primitive.ObjectID, fields ProfileFields) (*Profile, error) {
	col := mdb.collection(ProfileColName)
	now := time.Now()

	filter := bson.M{"user": userID}
	update := bson.M{
		"$set": bson.M{
			"status":         fields.Status,
			"skills":         fields.Skills,
			"website":        fields.Website,
			"company":        fields.Company,
			"location":       fields.Location,
			"bio":            fields.Bio,
			"githubusername": fields.GithubUsername,
			"social":         fields.Social,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"user":       userID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Profile
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting profile: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) GetProfileByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	col := mdb.collection(ProfileColName)

	var profile Profile
	err := col.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("error finding profile: %v", err)
	}

	return &profile, nil
}

func (mdb *MongodbRepo) ListProfiles(ctx context.Context) ([]*Profile, error) {
	col := mdb.collection(ProfileColName)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %v", err)
	}
	defer cursor.Close(ctx)

	var profiles []*Profile
	for cursor.Next(ctx) {
		var profile Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, fmt.Errorf("error decoding profile: %v", err)
		}
		profiles = append(profiles, &profile)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return profiles, nil
}

func (mdb *MongodbRepo) DeleteProfileByUser(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	col := mdb.collection(ProfileColName)

	var profile Profile
	err := col.FindOneAndDelete(ctx, bson.M{"user": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("error deleting profile: %v", err)
	}

	return &profile, nil
}

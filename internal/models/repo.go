package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DBName         = "devconnector"
	UsersColName   = "users"
	ProfileColName = "profiles"
)

var Validate = validator.New()

// ErrNoRecord is returned by repositories when a lookup matches nothing.
var ErrNoRecord = errors.New("record not found")

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) collection(name string) *mongo.Collection {
	return mdb.mongodbClient.Database(DBName).Collection(name)
}

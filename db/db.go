package db

import (
	"context"
	"log"
	"time"

	"Vitals360/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection        = "employees"
	ReviewCollection      = "reviews"
	AppointmentCollection = "appointments"
	SessionCollection     = "sessions"
)

func Connect(cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB:", cfg.DBName)
	return client.Database(cfg.DBName), nil
}

package db

import (
	"context"

	"Vitals360/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentStore struct {
	coll *mongo.Collection
}

func NewAppointmentStore(database *mongo.Database) *AppointmentStore {
	return &AppointmentStore{coll: database.Collection(AppointmentCollection)}
}

/*
* Find every appointment for the doctor
* Project only dateKey and timeSlot
 */
func (s *AppointmentStore) ListByDoctor(ctx context.Context, doctorId string) ([]models.Appointment, error) {
	opts := options.Find().SetProjection(bson.M{"dateKey": 1, "timeSlot": 1, "_id": 0})
	cursor, err := s.coll.Find(ctx, bson.M{"doctorId": doctorId}, opts)
	if err != nil {
		return nil, err
	}

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentStore) ListByDate(ctx context.Context, dateKey string) ([]models.Appointment, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"dateKey": dateKey})
	if err != nil {
		return nil, err
	}

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Create inserts unconditionally. There is no unique index on
// (doctorId, dateKey, timeSlot), so identical bookings can coexist.
func (s *AppointmentStore) Create(ctx context.Context, appointment models.Appointment) error {
	_, err := s.coll.InsertOne(ctx, appointment)
	return err
}

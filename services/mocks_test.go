package services

import (
	"context"
	"errors"
	"sort"

	"Vitals360/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

type fakeAppointmentStore struct {
	appointments []models.Appointment
	failList     bool
	failCreate   bool
}

func (f *fakeAppointmentStore) ListByDoctor(_ context.Context, doctorId string) ([]models.Appointment, error) {
	if f.failList {
		return nil, errStore
	}
	matched := []models.Appointment{}
	for _, a := range f.appointments {
		if a.DoctorId == doctorId {
			matched = append(matched, models.Appointment{DateKey: a.DateKey, TimeSlot: a.TimeSlot})
		}
	}
	return matched, nil
}

func (f *fakeAppointmentStore) Create(_ context.Context, appointment models.Appointment) error {
	if f.failCreate {
		return errStore
	}
	f.appointments = append(f.appointments, appointment)
	return nil
}

type fakeReviewStore struct {
	reviews    []models.Review
	failList   bool
	failCreate bool
}

func (f *fakeReviewStore) List(_ context.Context) ([]models.Review, error) {
	if f.failList {
		return nil, errStore
	}
	sorted := append([]models.Review{}, f.reviews...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	return sorted, nil
}

func (f *fakeReviewStore) Create(_ context.Context, review models.Review) error {
	if f.failCreate {
		return errStore
	}
	f.reviews = append(f.reviews, review)
	return nil
}

type fakeUserStore struct {
	users      []models.User
	failFind   bool
	failCreate bool
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if f.failFind {
		return nil, errStore
	}
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (string, error) {
	if f.failCreate {
		return "", errStore
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user.ID.Hex(), nil
}

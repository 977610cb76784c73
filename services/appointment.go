package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"Vitals360/models"

	"github.com/google/uuid"
)

// AppointmentStore is the persistence surface the slot availability and
// booking operations need.
type AppointmentStore interface {
	ListByDoctor(ctx context.Context, doctorId string) ([]models.Appointment, error)
	Create(ctx context.Context, appointment models.Appointment) error
}

var (
	ErrSlotFieldsRequired = errors.New("dateKey and timeSlot are required")
	ErrIdentityRequired   = errors.New("a logged-in user is required to book")
)

type AppointmentService struct {
	store AppointmentStore
}

func NewAppointmentService(store AppointmentStore) *AppointmentService {
	return &AppointmentService{store: store}
}

/*
* Fetch every appointment for the doctor
* Fold them into dateKey -> taken time slots
 */
func (s *AppointmentService) ListBookedSlots(ctx context.Context, doctorId string) (models.BookedSlotMap, error) {
	appointments, err := s.store.ListByDoctor(ctx, doctorId)
	if err != nil {
		log.Println("Error fetching appointments:", err)
		return nil, err
	}

	booked := models.BookedSlotMap{}
	for _, a := range appointments {
		booked[a.DateKey] = append(booked[a.DateKey], a.TimeSlot)
	}
	return booked, nil
}

/*
* Validate the required fields
* Apply the deployment defaults
* Persist the appointment as Confirmed
 */
func (s *AppointmentService) CreateBooking(ctx context.Context, req models.BookAppointmentRequest, userId string) error {
	if userId == "" {
		return ErrIdentityRequired
	}
	if strings.TrimSpace(req.DateKey) == "" || strings.TrimSpace(req.TimeSlot) == "" {
		return ErrSlotFieldsRequired
	}

	doctorId := req.DoctorId
	if doctorId == "" {
		doctorId = models.DefaultDoctorId
	}
	fee := req.Fee
	if fee == 0 {
		fee = models.DefaultFee
	}

	appointment := models.Appointment{
		Code:      uuid.NewString(),
		DoctorId:  doctorId,
		DateKey:   req.DateKey,
		TimeSlot:  req.TimeSlot,
		UserId:    userId,
		Fee:       fee,
		Status:    models.StatusConfirmed,
		CreatedAt: time.Now(),
	}

	// No check against existing bookings for the same slot: two identical
	// requests both insert and the slot ends up double booked.
	if err := s.store.Create(ctx, appointment); err != nil {
		log.Println("Error saving appointment:", err)
		return err
	}
	return nil
}

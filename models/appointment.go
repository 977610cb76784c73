package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deployment defaults for the single supported doctor.
const (
	DefaultDoctorId = "Dr.AmitSharma"
	DefaultFee      = 1200
	StatusConfirmed = "Confirmed"
)

type Appointment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code,omitempty" bson:"code,omitempty"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	DateKey   string             `json:"dateKey" bson:"dateKey"`
	TimeSlot  string             `json:"timeSlot" bson:"timeSlot"`
	UserId    string             `json:"userId,omitempty" bson:"userId,omitempty"`
	Fee       float64            `json:"fee,omitempty" bson:"fee,omitempty"`
	Status    string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// BookedSlotMap maps a dateKey to the time slots already taken on that date.
// Duplicate labels stay in place when the same slot was booked twice.
type BookedSlotMap map[string][]string

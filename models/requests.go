package models

// Typed request payloads for the endpoints, bound and validated at the
// boundary instead of pulling fields out of untyped maps.

type BookAppointmentRequest struct {
	DoctorId string  `json:"doctorId"`
	DateKey  string  `json:"dateKey"`
	TimeSlot string  `json:"timeSlot"`
	Fee      float64 `json:"fee"`
}

type CreateReviewRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type SignupRequest struct {
	Name     string `form:"name" json:"name"`
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

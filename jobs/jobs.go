package jobs

import (
	"context"
	"log"
	"time"

	"Vitals360/models"

	"github.com/robfig/cron/v3"
)

// AppointmentSource is the slice of the appointment store the scheduler needs.
type AppointmentSource interface {
	ListByDate(ctx context.Context, dateKey string) ([]models.Appointment, error)
}

func StartDailyScheduler(store AppointmentSource) {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Booking Summary...")
		RunDailySummary(store)
	})

	c.Start()
}

/*
* Fetch tomorrow's appointments
* Log a per-doctor booking count
 */
func RunDailySummary(store AppointmentSource) {
	dateKey := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	appointments, err := store.ListByDate(context.Background(), dateKey)
	if err != nil {
		log.Println("Error fetching appointments for summary:", err)
		return
	}

	counts := map[string]int{}
	for _, a := range appointments {
		counts[a.DoctorId]++
	}

	if len(counts) == 0 {
		log.Println("No bookings for", dateKey)
		return
	}
	for doctorId, n := range counts {
		log.Printf("%s has %d booking(s) on %s", doctorId, n, dateKey)
	}
}

package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"vedicjivan/config"
	"vedicjivan/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = time.Hour

// ReminderPayload is the task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// Scheduler enqueues reminder tasks against the asynq redis queue.
type Scheduler struct {
	client   *asynq.Client
	location *time.Location
}

// NewScheduler builds a Scheduler. Appointment times are interpreted in
// the given zone when computing the fire time.
func NewScheduler(location *time.Location) *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &Scheduler{client: client, location: location}
}

// Close releases the underlying queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

// ScheduleBookingReminder enqueues a reminder one hour before the
// appointment. Appointments too close (or past) get no reminder.
func (s *Scheduler) ScheduleBookingReminder(booking models.Booking) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %s", booking.Date, booking.TimeSlot), s.location)
	if err != nil {
		return fmt.Errorf("failed to parse booking time: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{BookingID: booking.ID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

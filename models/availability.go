package models

// DayHours is the open/closed window for one weekday (0=Monday .. 6=Sunday).
type DayHours struct {
	Day       int    `bson:"day" json:"day"`
	IsOpen    bool   `bson:"is_open" json:"is_open"`
	OpenTime  string `bson:"open_time" json:"open_time"`   // "HH:MM"
	CloseTime string `bson:"close_time" json:"close_time"` // "HH:MM"
}

// BusinessHours is the weekly schedule, stored as a single settings document.
type BusinessHours struct {
	Timezone    string     `bson:"timezone" json:"timezone"`
	WeeklyHours []DayHours `bson:"weekly_hours" json:"weekly_hours"`
}

// UnavailabilityBlock is either a full-day holiday (no times) or a
// partial-day blackout on Date.
type UnavailabilityBlock struct {
	ID        string `bson:"id" json:"id"`
	Date      string `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime string `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime   string `bson:"end_time,omitempty" json:"end_time,omitempty"`
	IsHoliday bool   `bson:"is_holiday" json:"is_holiday"`
	Reason    string `bson:"reason,omitempty" json:"reason"`
}

// AvailableSlot is one free 30-minute candidate window.
type AvailableSlot struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// DefaultBusinessHours returns the fallback schedule used when no settings
// document exists: Mon-Sat 10:00-18:00, Sunday closed, Asia/Kolkata.
func DefaultBusinessHours() BusinessHours {
	hours := BusinessHours{Timezone: "Asia/Kolkata"}
	for day := 0; day < 7; day++ {
		dh := DayHours{Day: day, IsOpen: day != 6, OpenTime: "10:00", CloseTime: "18:00"}
		if !dh.IsOpen {
			dh.OpenTime = ""
			dh.CloseTime = ""
		}
		hours.WeeklyHours = append(hours.WeeklyHours, dh)
	}
	return hours
}

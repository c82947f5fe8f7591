package schedule

import "time"

// Weekday is the day bucket classes are grouped under for the overlap check.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

var weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range weekdays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// WeekdayOf returns the weekday bucket of t in server local time.
func WeekdayOf(t time.Time) Weekday {
	return weekdays[int(t.Weekday())]
}

// Category separates the user's own classes from externally organized ones.
type Category string

const (
	CategoryPersonal Category = "PERSONAL"
	CategoryExternal Category = "EXTERNAL"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPersonal, CategoryExternal:
		return Category(s), true
	}
	return "", false
}

// SessionType classifies what kind of lesson a class is.
type SessionType string

const (
	TypeTheory     SessionType = "Theory"
	TypeRevision   SessionType = "Revision"
	TypePaperClass SessionType = "Paper Class"
)

func ParseSessionType(s string) (SessionType, bool) {
	switch SessionType(s) {
	case TypeTheory, TypeRevision, TypePaperClass:
		return SessionType(s), true
	}
	return "", false
}

package schedule

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"classboard/internal/models"

	"gorm.io/gorm"
)

// ClassInput carries the raw schedulable fields of a create or update request.
// Type may hold either a session type (Theory/Revision/Paper Class) or, from
// older clients, a category value (PERSONAL/EXTERNAL) used as an alias.
type ClassInput struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Day         string
	Category    string
	Type        string
	Medium      string
	Teacher     string
	ClassNumber *int
}

// ListFilter restricts List to matching classes; empty fields mean no restriction.
type ListFilter struct {
	Category string
	Day      string
}

// Service owns the class lifecycle and enforces the no-overlap invariant on
// every write. Checks always re-query the store; there is no in-memory state.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create validates and resolves input, rejects writes overlapping a stored
// class on the same day, and persists the new class.
//
// The check and the insert are not one transaction, so two concurrent writers
// can both pass the check. Accepted for single-admin usage.
func (s *Service) Create(input ClassInput) (*models.ClassSession, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	cls := resolve(input)
	if conflict, err := s.findOverlap(cls.Day, cls.StartTime, cls.EndTime, 0); err != nil {
		return nil, err
	} else if conflict != nil {
		return nil, &OverlapError{Conflict: *conflict}
	}

	if err := s.db.Create(&cls).Error; err != nil {
		return nil, err
	}
	return &cls, nil
}

// Update replaces the schedulable fields of the class with the given id,
// re-running the same validation and overlap check as Create. The stored
// notification latch is never touched here.
func (s *Service) Update(id uint, input ClassInput) (*models.ClassSession, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	next := resolve(input)
	if conflict, err := s.findOverlap(next.Day, next.StartTime, next.EndTime, id); err != nil {
		return nil, err
	} else if conflict != nil {
		return nil, &OverlapError{Conflict: *conflict}
	}

	var cls models.ClassSession
	if err := s.db.First(&cls, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cls.Title = next.Title
	cls.StartTime = next.StartTime
	cls.EndTime = next.EndTime
	cls.Location = next.Location
	cls.Day = next.Day
	cls.Category = next.Category
	cls.Type = next.Type
	cls.Medium = next.Medium
	cls.Teacher = next.Teacher
	cls.ClassNumber = next.ClassNumber

	if err := s.db.Save(&cls).Error; err != nil {
		return nil, err
	}
	return &cls, nil
}

func (s *Service) Get(id uint) (*models.ClassSession, error) {
	var cls models.ClassSession
	if err := s.db.First(&cls, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cls, nil
}

// List returns classes matching the filter, ascending by start time.
func (s *Service) List(filter ListFilter) ([]models.ClassSession, error) {
	q := s.db.Model(&models.ClassSession{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Day != "" {
		q = q.Where("day = ?", filter.Day)
	}

	var classes []models.ClassSession
	if err := q.Order("start_time asc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Service) Delete(id uint) (uint, error) {
	res := s.db.Delete(&models.ClassSession{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

// findOverlap looks for a stored class on day whose [start, end) interval
// intersects the given one: stored.start < end AND stored.end > start.
// excludeID skips the class being updated; 0 excludes nothing.
func (s *Service) findOverlap(day string, start, end time.Time, excludeID uint) (*models.ClassSession, error) {
	q := s.db.Where("day = ? AND start_time < ? AND end_time > ?", day, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflict models.ClassSession
	err := q.First(&conflict).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conflict, nil
}

func validate(input ClassInput) error {
	if input.Title == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if input.Location == "" {
		return &ValidationError{Field: "location", Reason: "required"}
	}
	if input.StartTime.IsZero() {
		return &ValidationError{Field: "startTime", Reason: "required"}
	}
	if input.EndTime.IsZero() {
		return &ValidationError{Field: "endTime", Reason: "required"}
	}
	if !input.EndTime.After(input.StartTime) {
		return &ValidationError{Field: "endTime", Reason: "must be after startTime"}
	}
	return nil
}

// resolve applies the ordered defaulting policy to every derived field.
func resolve(input ClassInput) models.ClassSession {
	return models.ClassSession{
		Title:       input.Title,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Day:         string(resolveDay(input.Day, input.StartTime)),
		Category:    string(resolveCategory(input.Category, input.Type)),
		Type:        string(resolveType(input.Type)),
		Medium:      defaultString(input.Medium, "English"),
		Teacher:     defaultString(input.Teacher, "Sir"),
		ClassNumber: resolveClassNumber(input.ClassNumber, input.Title),
	}
}

// resolveDay trusts a valid client-supplied weekday, otherwise derives it from
// the start instant in server local time. Clients send day explicitly so a
// server/client timezone mismatch cannot shift the bucket.
func resolveDay(raw string, start time.Time) Weekday {
	if day, ok := ParseWeekday(raw); ok {
		return day
	}
	return WeekdayOf(start)
}

// resolveCategory prefers an explicit category, then a legacy type field
// carrying PERSONAL/EXTERNAL, then the EXTERNAL default.
func resolveCategory(category, legacyType string) Category {
	if c, ok := ParseCategory(category); ok {
		return c
	}
	if c, ok := ParseCategory(legacyType); ok {
		return c
	}
	return CategoryExternal
}

func resolveType(raw string) SessionType {
	if t, ok := ParseSessionType(raw); ok {
		return t
	}
	return TypeTheory
}

var digitRun = regexp.MustCompile(`\d+`)

// resolveClassNumber keeps an explicit value, otherwise takes the first run of
// digits in the title (e.g. "Science - Grade 10" -> 10).
func resolveClassNumber(explicit *int, title string) *int {
	if explicit != nil {
		return explicit
	}
	if m := digitRun.FindString(title); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return &n
		}
	}
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

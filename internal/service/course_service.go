package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/model"
)

// CourseService loads academic year options and course listings.
type CourseService struct {
	client *api.Client
	limit  int
	log    zerolog.Logger
}

// NewCourseService creates a new CourseService. limit is the fixed page
// size for course listings.
func NewCourseService(client *api.Client, limit int, log zerolog.Logger) *CourseService {
	return &CourseService{
		client: client,
		limit:  limit,
		log:    log.With().Str("component", "course_service").Logger(),
	}
}

// LoadAcademicYears fetches the academic year catalog in backend order.
// Returns an empty slice on failure.
func (s *CourseService) LoadAcademicYears(ctx context.Context) []model.AcademicYearOption {
	raw := s.client.Call(ctx, http.MethodGet, "/components_data/academic_year_option_list", nil)
	if raw == nil {
		return []model.AcademicYearOption{}
	}

	var years []model.AcademicYearOption
	if err := json.Unmarshal(raw, &years); err != nil {
		s.log.Error().Err(err).Msg("unexpected academic year payload")
		return []model.AcademicYearOption{}
	}
	return years
}

// LoadCourses fetches the first page of the course listing for the given
// term. The backend answers in one of three shapes; see decodeCourseList.
func (s *CourseService) LoadCourses(ctx context.Context, academicYear string, semester int) []model.Course {
	endpoint := fmt.Sprintf(
		"/courses/evaluation?page=1&limit=%d&academic_year=%s&semester=%d",
		s.limit, url.QueryEscape(academicYear), semester,
	)

	raw := s.client.Call(ctx, http.MethodGet, endpoint, nil)
	courses := decodeCourseList(raw)
	s.log.Debug().
		Str("academic_year", academicYear).
		Int("semester", semester).
		Int("count", len(courses)).
		Msg("courses loaded")
	return courses
}

// decodeCourseList extracts the course array from any of the three known
// response shapes: {"records": [...]}, {"data": [...]}, or a bare array.
// Each shape gets its own decoding branch; anything unrecognized yields an
// empty slice rather than an error.
func decodeCourseList(raw json.RawMessage) []model.Course {
	if raw == nil {
		return []model.Course{}
	}

	var wrapped struct {
		Records []model.Course `json:"records"`
		Data    []model.Course `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Records != nil {
			return wrapped.Records
		}
		if wrapped.Data != nil {
			return wrapped.Data
		}
	}

	var bare []model.Course
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	return []model.Course{}
}

// FilterPending drops every course already evaluated, preserving order.
func FilterPending(courses []model.Course) []model.Course {
	pending := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.Pending() {
			pending = append(pending, c)
		}
	}
	return pending
}

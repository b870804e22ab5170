package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/model"
)

// QuestionService loads and memoizes the evaluation question catalog.
type QuestionService struct {
	client *api.Client
	log    zerolog.Logger

	// catalog is fetched once and reused for every wizard run of the
	// session. The shell is a single logical flow, so no locking is needed.
	catalog []model.QuestionCategory
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(client *api.Client, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		client: client,
		log:    log.With().Str("component", "question_service").Logger(),
	}
}

// LoadQuestions returns the question catalog, fetching it on first use.
// Returns nil on failure; a failed fetch is not memoized, so the next
// wizard run retries.
//
// The misspelled endpoint path is part of the backend's contract.
func (s *QuestionService) LoadQuestions(ctx context.Context) []model.QuestionCategory {
	if s.catalog != nil {
		return s.catalog
	}

	raw := s.client.Call(ctx, http.MethodGet, "/components_data/evalutation_questions_list", nil)
	if raw == nil {
		return nil
	}

	var catalog []model.QuestionCategory
	if err := json.Unmarshal(raw, &catalog); err != nil {
		s.log.Error().Err(err).Msg("unexpected question catalog payload")
		return nil
	}

	s.catalog = catalog
	s.log.Debug().Int("categories", len(catalog)).Msg("question catalog loaded")
	return s.catalog
}

// Reset drops the memoized catalog. Called on logout so a new session
// starts from a clean fetch.
func (s *QuestionService) Reset() {
	s.catalog = nil
}

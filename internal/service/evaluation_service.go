package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/model"
)

// Summary aggregates the outcome of one submission run.
type Summary struct {
	Success int
	Failed  int
}

// ProgressFunc is called after each submission completes, successful or
// not, with the number of processed courses and the run total.
type ProgressFunc func(done, total int)

// EvaluationService submits one evaluation per selected course.
type EvaluationService struct {
	client *api.Client
	log    zerolog.Logger
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(client *api.Client, log zerolog.Logger) *EvaluationService {
	return &EvaluationService{
		client: client,
		log:    log.With().Str("component", "evaluation_service").Logger(),
	}
}

// SubmitAll walks the selected courses strictly in order, one request at a
// time. For each course the shared answer set is deep-copied and every
// name-entry answer is overwritten with that course's confirmed lecturer
// name; a blank confirmed name falls back to the backend-suggested one.
//
// A failed submission is tallied and the loop moves on — remaining courses
// are always attempted, and there is no retry within the run. Progress is
// reported after every call so partial completion always reads as exactly
// "N of total processed".
func (s *EvaluationService) SubmitAll(
	ctx context.Context,
	courses []model.Course,
	common model.AnswerSet,
	lecturerNames []string,
	progress ProgressFunc,
) Summary {
	runID := uuid.New().String()
	log := s.log.With().Str("run_id", runID).Logger()
	log.Info().Int("courses", len(courses)).Msg("submission run started")

	var summary Summary
	for i, course := range courses {
		name := course.StaffFullname
		if i < len(lecturerNames) && lecturerNames[i] != "" {
			name = lecturerNames[i]
		}

		answers := common.Clone()
		answers.FillLecturerName(name)

		payload := model.EvaluationRequest{
			Answers: answers,
			ClassID: course.ClassID,
		}

		raw := s.client.Call(ctx, http.MethodPost, "/courses/evaluationadd", payload)
		if raw != nil {
			summary.Success++
			log.Debug().Str("course", course.Code).Msg("evaluation recorded")
		} else {
			summary.Failed++
			log.Warn().Str("course", course.Code).Msg("evaluation failed")
		}

		if progress != nil {
			progress(i+1, len(courses))
		}
	}

	log.Info().
		Int("success", summary.Success).
		Int("failed", summary.Failed).
		Msg("submission run finished")
	return summary
}

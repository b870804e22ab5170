package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pupujiger/autoeval/internal/api"
	"github.com/pupujiger/autoeval/internal/config"
	"github.com/pupujiger/autoeval/internal/model"
	"github.com/pupujiger/autoeval/internal/service"
	"github.com/pupujiger/autoeval/internal/session"
)

// TestScriptedSession drives a full session through the shell: login,
// about view, select-courses flow with an initially empty selection, one
// rated answer, one edited lecturer name, submission, quit.
func TestScriptedSession(t *testing.T) {
	catalogFetches := 0
	var submissions []model.EvaluationRequest
	var submissionAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"tok123"}`))
		case "/components_data/academic_year_option_list":
			w.Write([]byte(`[{"value":"2025/2026","label":"2025/2026"}]`))
		case "/courses/evaluation":
			w.Write([]byte(`{"records":[
				{"code":"CS101","title":"Programming","staff_fullname":"Dr. A","class_id":"10","evaluation_status":"0"},
				{"code":"CS102","title":"Databases","staff_fullname":"Dr. B","class_id":"11","evaluation_status":"1"},
				{"code":"CS103","title":"Networks","staff_fullname":"Dr. C","class_id":"12","evaluation_status":"0"}
			]}`))
		case "/components_data/evalutation_questions_list":
			catalogFetches++
			w.Write([]byte(`[
				{"questions_type":"LECTURER ASSESSMENT","questions":[
					{"question_id":1,"question":"Provide the name of the lecturer"},
					{"question_id":2,"question":"How do you rate the lecturer's punctuality?"}
				]},
				{"questions_type":"COMMENT SECTION","questions":[
					{"question_id":3,"question":"Mention at least three strengths of the lecturer"}
				]}
			]`))
		case "/courses/evaluationadd":
			submissionAuth = r.Header.Get("Authorization")
			var req model.EvaluationRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode submission: %v", err)
			}
			submissions = append(submissions, req)
			w.Write([]byte(`{"ok":true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{
		APIBaseURL: srv.URL,
		PortalURL:  "https://portal.example",
		PageLimit:  100,
	}
	client := api.NewClient(srv.URL, 0, zerolog.Nop())
	sess := session.New(client, zerolog.Nop())
	courseSvc := service.NewCourseService(client, cfg.PageLimit, zerolog.Nop())
	questionSvc := service.NewQuestionService(client, zerolog.Nop())
	evalSvc := service.NewEvaluationService(client, zerolog.Nop())

	script := strings.Join([]string{
		"student1",   // username
		"pass123",    // password (stdin is not a terminal in tests)
		"3",          // about view
		"2",          // select-courses view
		"1",          // academic year
		"1",          // semester
		"",           // empty selection, must be refused
		"1,2",        // CS101 and CS103 (CS102 is filtered out as evaluated)
		"1",          // rated question: Excellent
		"",           // keep suggested name for CS101
		"Dr. Custom", // edited name for CS103
		"5",          // quit
	}, "\n") + "\n"

	var out bytes.Buffer
	sh := New(cfg, sess, courseSvc, questionSvc, evalSvc, strings.NewReader(script), &out, zerolog.Nop())
	sh.readPassword = sh.readLine

	sh.Run(context.Background())

	if !strings.Contains(out.String(), "Please select at least one course.") {
		t.Error("empty selection was not refused")
	}
	if !strings.Contains(out.String(), "Successful: 2") {
		t.Errorf("summary missing from output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), cfg.PortalURL) {
		t.Error("portal link missing from summary")
	}

	if catalogFetches != 1 {
		t.Errorf("question catalog fetched %d times, want 1", catalogFetches)
	}
	if submissionAuth != "Bearer tok123" {
		t.Errorf("submission Authorization = %q", submissionAuth)
	}

	if len(submissions) != 2 {
		t.Fatalf("got %d submissions, want 2", len(submissions))
	}
	if string(submissions[0].ClassID) != `"10"` || string(submissions[1].ClassID) != `"12"` {
		t.Errorf("class IDs = %s, %s", submissions[0].ClassID, submissions[1].ClassID)
	}
	for i, sub := range submissions {
		if len(sub.Answers) != 2 {
			t.Fatalf("submission %d has %d categories, want the full catalog shape", i, len(sub.Answers))
		}
		if got := sub.Answers[0].Questions[1].Answer; got != "Excellent" {
			t.Errorf("submission %d rated answer = %q, want Excellent", i, got)
		}
		if got := sub.Answers[1].Questions[0].Answer; got != "" {
			t.Errorf("submission %d free-text answer = %q, want empty", i, got)
		}
	}
	if got := submissions[0].Answers[0].Questions[0].Answer; got != "Dr. A" {
		t.Errorf("first lecturer name = %q, want the suggested Dr. A", got)
	}
	if got := submissions[1].Answers[0].Questions[0].Answer; got != "Dr. Custom" {
		t.Errorf("second lecturer name = %q, want the edited Dr. Custom", got)
	}
}

// TestSwitchReloadsActiveView checks navigation idempotency: switching to
// the already-active data-backed view re-triggers its load routine.
func TestSwitchReloadsActiveView(t *testing.T) {
	yearRequests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/components_data/academic_year_option_list" {
			yearRequests++
		}
		// Empty year catalog sends the flow straight back home.
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 0, zerolog.Nop())
	courseSvc := service.NewCourseService(client, 100, zerolog.Nop())
	cfg := &config.Config{APIBaseURL: srv.URL}

	var out bytes.Buffer
	sh := New(cfg, session.New(client, zerolog.Nop()), courseSvc,
		service.NewQuestionService(client, zerolog.Nop()),
		service.NewEvaluationService(client, zerolog.Nop()),
		strings.NewReader(""), &out, zerolog.Nop())

	ctx := context.Background()
	sh.Switch(ctx, ViewEvaluateAll)
	if sh.Active() != ViewEvaluateAll {
		t.Fatalf("active view = %q", sh.Active())
	}
	sh.Switch(ctx, ViewEvaluateAll)

	if yearRequests != 2 {
		t.Fatalf("load routine ran %d times, want 2 (idempotent re-trigger)", yearRequests)
	}
}

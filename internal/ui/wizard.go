package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pupujiger/autoeval/internal/model"
	"github.com/pupujiger/autoeval/internal/service"
)

// loadEvaluateAll runs the evaluate-all flow: pick a term, then walk the
// wizard with every pending course of that term.
func (sh *Shell) loadEvaluateAll(ctx context.Context) {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "--- Evaluate All Lecturers ---")
	fmt.Fprintln(sh.out, "Loading...")

	year, semester, ok := sh.promptTerm(ctx)
	if !ok {
		return
	}

	pending := service.FilterPending(sh.courses.LoadCourses(ctx, year, semester))
	if len(pending) == 0 {
		sh.renderAllEvaluated()
		return
	}

	fmt.Fprintf(sh.out, "\nUnevaluated courses (%d):\n", len(pending))
	sh.renderCourseList(pending)

	fmt.Fprint(sh.out, "Start evaluation? (y/N): ")
	confirm, err := sh.readLine()
	if err != nil || !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		return
	}

	sh.runWizard(ctx, pending)
}

// loadSelectCourses runs the select-courses flow: pick a term, choose a
// subset of pending courses, then walk the wizard with that subset.
func (sh *Shell) loadSelectCourses(ctx context.Context) {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "--- Select Courses to Evaluate ---")
	fmt.Fprintln(sh.out, "Loading...")

	year, semester, ok := sh.promptTerm(ctx)
	if !ok {
		return
	}

	pending := service.FilterPending(sh.courses.LoadCourses(ctx, year, semester))
	if len(pending) == 0 {
		sh.renderAllEvaluated()
		return
	}

	sh.renderCourseList(pending)

	var selected []model.Course
	for {
		fmt.Fprint(sh.out, "Select courses (e.g. 1,3,4): ")
		line, err := sh.readLine()
		if err != nil {
			return
		}

		indices, err := parseSelection(line, len(pending))
		if err != nil {
			fmt.Fprintln(sh.out, err.Error())
			continue
		}
		if len(indices) == 0 {
			fmt.Fprintln(sh.out, "Please select at least one course.")
			continue
		}

		for _, idx := range indices {
			selected = append(selected, pending[idx])
		}
		break
	}

	sh.runWizard(ctx, selected)
}

// promptTerm asks for the academic year (from the backend catalog) and the
// semester. Returns ok=false when the catalog is empty or input ends.
func (sh *Shell) promptTerm(ctx context.Context) (string, int, bool) {
	years := sh.courses.LoadAcademicYears(ctx)
	if len(years) == 0 {
		fmt.Fprintln(sh.out, "No academic years available. Returning home.")
		return "", 0, false
	}

	fmt.Fprintln(sh.out, "Academic year:")
	for i, y := range years {
		fmt.Fprintf(sh.out, "  %d) %s\n", i+1, y.Label)
	}

	var year string
	for {
		fmt.Fprint(sh.out, "> ")
		line, err := sh.readLine()
		if err != nil {
			return "", 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(years) {
			fmt.Fprintf(sh.out, "Enter a number between 1 and %d.\n", len(years))
			continue
		}
		year = years[n-1].Value
		break
	}

	for {
		fmt.Fprint(sh.out, "Semester (1 or 2): ")
		line, err := sh.readLine()
		if err != nil {
			return "", 0, false
		}
		switch strings.TrimSpace(line) {
		case "1":
			return year, 1, true
		case "2":
			return year, 2, true
		}
		fmt.Fprintln(sh.out, "Enter 1 or 2.")
	}
}

func (sh *Shell) renderCourseList(courses []model.Course) {
	for i, c := range courses {
		fmt.Fprintf(sh.out, "  %d) %s — %s (Lecturer: %s)\n", i+1, c.Code, c.Title, c.StaffFullname)
	}
}

func (sh *Shell) renderAllEvaluated() {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "All courses evaluated!")
	fmt.Fprintln(sh.out, "You have completed all evaluations for this semester.")
}

// parseSelection turns a comma-separated list of 1-based indices into
// zero-based indices, deduplicated in first-seen order. n is the number of
// listed courses.
func parseSelection(input string, n int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if v < 1 || v > n {
			return nil, fmt.Errorf("course %d is not in the list", v)
		}
		if !seen[v-1] {
			seen[v-1] = true
			indices = append(indices, v-1)
		}
	}
	return indices, nil
}

// runWizard walks the remaining steps for the chosen courses: answer the
// common questions once, confirm lecturer names, then submit sequentially.
func (sh *Shell) runWizard(ctx context.Context, courses []model.Course) {
	catalog := sh.questions.LoadQuestions(ctx)
	if catalog == nil {
		fmt.Fprintln(sh.out)
		fmt.Fprintln(sh.out, "Error: failed to load evaluation questions.")
		fmt.Fprintln(sh.out, "Returning home.")
		return
	}

	answers := model.BuildAnswerSet(catalog)
	if !sh.collectAnswers(catalog, answers) {
		return
	}

	names, ok := sh.confirmLecturerNames(courses)
	if !ok {
		return
	}

	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "Submitting evaluations...")
	summary := sh.evaluations.SubmitAll(ctx, courses, answers, names, func(done, total int) {
		fmt.Fprintf(sh.out, "\r  %d / %d", done, total)
	})
	fmt.Fprintln(sh.out)

	sh.renderSummary(summary)
}

// collectAnswers walks every renderable question and records the picked
// option. A blank input leaves the question unanswered; unanswered rated
// questions are submitted as empty strings, matching the backend's
// tolerance. Returns false when input ends mid-questionnaire.
func (sh *Shell) collectAnswers(catalog []model.QuestionCategory, answers model.AnswerSet) bool {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "Answer the common questions. They apply to all selected lecturers.")
	fmt.Fprintln(sh.out, "Leave blank to skip a question.")

	for ci, cat := range catalog {
		if cat.Excluded() {
			continue
		}

		fmt.Fprintf(sh.out, "\n[%s]\n", cat.QuestionsType)
		for qi, q := range cat.Questions {
			cls := model.Classify(q.Text)
			if cls.Kind != model.KindRated {
				continue
			}

			fmt.Fprintf(sh.out, "Q: %s\n", q.Text)
			for i, opt := range cls.Options {
				fmt.Fprintf(sh.out, "  %d) %s\n", i+1, opt)
			}

			for {
				fmt.Fprint(sh.out, "> ")
				line, err := sh.readLine()
				if err != nil {
					return false
				}
				line = strings.TrimSpace(line)
				if line == "" {
					break
				}
				n, err := strconv.Atoi(line)
				if err != nil || n < 1 || n > len(cls.Options) {
					fmt.Fprintf(sh.out, "Enter a number between 1 and %d, or leave blank.\n", len(cls.Options))
					continue
				}
				answers.Select(ci, qi, cls.Options[n-1])
				break
			}
		}
	}
	return true
}

// confirmLecturerNames collects one editable name per course, pre-filled
// with the backend-suggested lecturer. Blank input keeps the suggestion.
func (sh *Shell) confirmLecturerNames(courses []model.Course) ([]string, bool) {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "Confirm lecturer names. Leave blank to keep the suggested name.")

	names := make([]string, len(courses))
	for i, c := range courses {
		fmt.Fprintf(sh.out, "%s — %s\n", c.Code, c.Title)
		fmt.Fprintf(sh.out, "Lecturer [%s]: ", c.StaffFullname)
		line, err := sh.readLine()
		if err != nil {
			return nil, false
		}
		names[i] = strings.TrimSpace(line)
	}
	return names, true
}

func (sh *Shell) renderSummary(summary service.Summary) {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "Evaluation complete!")
	fmt.Fprintf(sh.out, "  Successful: %d\n", summary.Success)
	fmt.Fprintf(sh.out, "  Failed:     %d\n", summary.Failed)
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "You can verify the recorded evaluations on the portal:")
	fmt.Fprintln(sh.out, " ", sh.cfg.PortalURL)
}

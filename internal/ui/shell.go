package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/pupujiger/autoeval/internal/config"
	"github.com/pupujiger/autoeval/internal/service"
	"github.com/pupujiger/autoeval/internal/session"
)

// View identifies one of the top-level screens.
type View string

const (
	ViewHome          View = "home"
	ViewEvaluateAll   View = "evaluate-all"
	ViewSelectCourses View = "select-courses"
	ViewAbout         View = "about"
)

// Shell is the interactive terminal frontend. It reads from in and writes
// to out so tests can script a full session. Exactly one view is active at
// a time; switching to a data-backed view re-triggers its load routine
// even when it is already active.
type Shell struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
	cfg *config.Config

	session     *session.Session
	courses     *service.CourseService
	questions   *service.QuestionService
	evaluations *service.EvaluationService

	active View

	// Overridable for tests.
	readPassword func() (string, error)
	now          func() time.Time

	notice   string
	noticeAt time.Time
}

// New creates the shell with all collaborators wired in.
func New(
	cfg *config.Config,
	sess *session.Session,
	courses *service.CourseService,
	questions *service.QuestionService,
	evaluations *service.EvaluationService,
	in io.Reader,
	out io.Writer,
	log zerolog.Logger,
) *Shell {
	sh := &Shell{
		in:          bufio.NewReader(in),
		out:         out,
		log:         log.With().Str("component", "shell").Logger(),
		cfg:         cfg,
		session:     sess,
		courses:     courses,
		questions:   questions,
		evaluations: evaluations,
		active:      ViewHome,
		now:         time.Now,
	}
	sh.readPassword = sh.defaultReadPassword
	return sh
}

// Run drives the whole application: login screen first, then the
// navigation loop until the user quits or input ends.
func (sh *Shell) Run(ctx context.Context) {
	for {
		if !sh.session.LoggedIn() {
			if !sh.loginScreen(ctx) {
				return
			}
		}
		if sh.navigate(ctx) {
			return
		}
	}
}

// navigate renders the home menu and dispatches view switches until the
// user logs out (returns false) or quits (returns true).
func (sh *Shell) navigate(ctx context.Context) bool {
	sh.active = ViewHome
	for {
		sh.renderHome()
		choice, err := sh.readLine()
		if err != nil {
			return true
		}

		switch strings.TrimSpace(choice) {
		case "1":
			sh.Switch(ctx, ViewEvaluateAll)
		case "2":
			sh.Switch(ctx, ViewSelectCourses)
		case "3":
			sh.Switch(ctx, ViewAbout)
		case "4":
			sh.session.Logout()
			sh.questions.Reset()
			return false
		case "5", "q":
			return true
		default:
			fmt.Fprintln(sh.out, "Unknown option.")
		}
	}
}

// Switch activates the given view. Data-backed views run their load
// routine on every switch, including a switch to the already-active view.
func (sh *Shell) Switch(ctx context.Context, v View) {
	sh.active = v
	sh.log.Debug().Str("view", string(v)).Msg("view switched")

	switch v {
	case ViewEvaluateAll:
		sh.loadEvaluateAll(ctx)
	case ViewSelectCourses:
		sh.loadSelectCourses(ctx)
	case ViewAbout:
		sh.renderAbout()
	}
}

// Active returns the currently active view.
func (sh *Shell) Active() View {
	return sh.active
}

func (sh *Shell) renderHome() {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "=== Course Evaluation ===")
	fmt.Fprintln(sh.out, "  1) Evaluate all lecturers")
	fmt.Fprintln(sh.out, "  2) Select courses to evaluate")
	fmt.Fprintln(sh.out, "  3) About")
	fmt.Fprintln(sh.out, "  4) Logout")
	fmt.Fprintln(sh.out, "  5) Quit")
	fmt.Fprint(sh.out, "> ")
}

func (sh *Shell) renderAbout() {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "Submits course/lecturer evaluations to the student portal backend.")
	fmt.Fprintln(sh.out, "Answers are collected once and applied to every selected course;")
	fmt.Fprintln(sh.out, "verify recorded evaluations at", sh.cfg.PortalURL)
}

func (sh *Shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (sh *Shell) defaultReadPassword() (string, error) {
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(sh.out)
		return string(b), err
	}
	// Not attached to a terminal (tests, pipes): fall back to line input.
	return sh.readLine()
}

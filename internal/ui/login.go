package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/pupujiger/autoeval/internal/model"
	"github.com/pupujiger/autoeval/internal/validator"
)

// noticeTTL is how long a login notice stays visible before auto-clearing.
const noticeTTL = 5 * time.Second

// loginScreen prompts for credentials until a login succeeds. Returns
// false when input ends before that happens. Entered credentials live only
// in this frame and are gone once it returns.
func (sh *Shell) loginScreen(ctx context.Context) bool {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "=== Login ===")

	for {
		if notice := sh.currentNotice(); notice != "" {
			fmt.Fprintln(sh.out, notice)
		}

		fmt.Fprint(sh.out, "Username: ")
		username, err := sh.readLine()
		if err != nil {
			return false
		}

		fmt.Fprint(sh.out, "Password: ")
		password, err := sh.readPassword()
		if err != nil {
			return false
		}

		req := model.LoginRequest{Username: username, Password: password}
		if fields := validator.Check(req); fields != nil {
			for field, msg := range fields {
				fmt.Fprintf(sh.out, "  %s: %s\n", field, msg)
			}
			continue
		}

		fmt.Fprintln(sh.out, "Logging in...")
		if sh.session.Login(ctx, username, password) {
			sh.notice = ""
			return true
		}

		sh.setNotice("Login failed. Please check your credentials.")
	}
}

// setNotice records a notice that auto-clears after noticeTTL.
func (sh *Shell) setNotice(msg string) {
	sh.notice = msg
	sh.noticeAt = sh.now()
}

// currentNotice returns the active notice, or "" once it has expired.
func (sh *Shell) currentNotice() string {
	if sh.notice == "" {
		return ""
	}
	if sh.now().Sub(sh.noticeAt) >= noticeTTL {
		sh.notice = ""
		return ""
	}
	return sh.notice
}

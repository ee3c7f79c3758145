// Package cli is a terminal front end over the controller. It is a thin
// presentation collaborator: every command maps onto a controller command
// and prints the returned notice.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/curio-app/curio/internal/controller"
)

type App struct {
	ctrl   *controller.Controller
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctrl *controller.Controller) *App {
	return &App{ctrl: ctrl, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Run starts the REPL and blocks until exit or EOF.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if email := a.ctrl.CurrentUserEmail(context.Background()); email != "" {
		return fmt.Sprintf("%s %s", email, a.ctrl.Route())
	}
	return "guest"
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.CurrentUserEmail(context.Background()) != ""
}

func (a *App) onDetailView() bool {
	return a.ctrl.CurrentCollection() != nil
}

// printResult renders a command outcome: the notice, then the navigation.
func (a *App) printResult(r controller.Result) {
	if r.Notice.Text != "" {
		fmt.Fprintf(a.out, "[%s] %s\n", r.Notice.Level, r.Notice.Text)
	}
	if r.Redirect != "" {
		fmt.Fprintf(a.out, "-> %s\n", r.Redirect)
	}
}

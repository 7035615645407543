// Package cli is the terminal front end of the admin client: a REPL whose
// commands map onto the admin UI's pages, with every page change passing
// through the session's route guard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jobport/adminctl/internal/api"
	"github.com/jobport/adminctl/internal/cache"
	"github.com/jobport/adminctl/internal/config"
	"github.com/jobport/adminctl/internal/logging"
	"github.com/jobport/adminctl/internal/services"
	"github.com/jobport/adminctl/internal/session"
	"github.com/jobport/adminctl/internal/token"
)

type App struct {
	cfg        *config.Config
	log        logging.Logger
	session    *session.Manager
	categories *services.CategoryService
	jobs       *services.JobService
	users      *services.UserService

	route  string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	tokens := token.NewFileStore(cfg.TokenFile, log)
	client := api.New(cfg.BaseURL, tokens, log, api.WithTimeout(cfg.RequestTimeout))
	store := cache.New(log)

	return &App{
		cfg:        cfg,
		log:        log,
		session:    session.NewManager(client, tokens, store, log),
		categories: services.NewCategoryService(client, store),
		jobs:       services.NewJobService(client, store),
		users:      services.NewUserService(client, store),
		route:      session.RouteHome,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "jobport admin console (type 'help' for commands)")

	a.session.Init(ctx)
	a.navigate(session.RouteHome)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is rendered into the prompt: the signed-in user and current route.
func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.route)
}

// navigate runs the route guard for the requested page. It reports whether
// the page may proceed; on redirect the new route is announced instead.
func (a *App) navigate(route string) bool {
	target, redirected := a.session.Guard(route)
	a.route = target
	if redirected {
		fmt.Fprintf(a.out, "redirected to %s\n", target)
	}
	return !redirected
}

// fail renders the extracted error message to the user and passes the error
// on unchanged.
func (a *App) fail(ctx context.Context, err error) error {
	a.log.Debug(ctx, "command failed", "error", err)
	fmt.Fprintf(a.out, "error: %s\n", err.Error())
	return err
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// pages is the command surface the REPL dispatches to. The real App type
// satisfies it; tests can provide a lightweight stub.
type pages interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Jobs(ctx context.Context) error
	Job(ctx context.Context, id string) error
	AddJob(ctx context.Context) error
	EditJob(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error

	Categories(ctx context.Context) error
	Category(ctx context.Context, id string) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, id string) error
	DeleteCategory(ctx context.Context, id string) error

	Favourites(ctx context.Context) error
	ToggleFavourite(ctx context.Context, jobID string) error

	Profile(ctx context.Context) error
	EditPersonalInfo(ctx context.Context) error
	AddExperience(ctx context.Context) error
	AddEducation(ctx context.Context) error
	EditSkills(ctx context.Context) error
	EditLanguages(ctx context.Context) error
	EditOverview(ctx context.Context) error
	EditCVResume(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, register, help, exit"
	helpSignedIn  = "Available commands: jobs, job <id>, addjob, editjob <id>, deljob <id>, " +
		"categories, cat <id>, addcat, editcat <id>, delcat <id>, " +
		"favs, fav <jobid>, profile, editinfo, addexp, addedu, skills, languages, overview, cv, " +
		"whoami, logout, exit"
)

// runREPL reads commands line by line and dispatches to p. The loop ends on
// EOF or on "exit"/"quit".
//
// Errors returned by the handlers are ignored here: every handler renders
// its own failure, keeping the loop focused on I/O.
func runREPL(ctx context.Context, p pages, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "jobport %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		// Commands that take an id.
		withID := func(usage string, fn func(context.Context, string) error) {
			if len(args) == 0 {
				fmt.Fprintln(w, "usage:", usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if p.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpSignedOut)
			}

		case "login":
			_ = p.Login(ctx)
		case "register":
			_ = p.Register(ctx)
		case "logout":
			_ = p.Logout(ctx)
		case "whoami":
			_ = p.WhoAmI(ctx)

		case "jobs":
			_ = p.Jobs(ctx)
		case "job":
			withID("job <id>", p.Job)
		case "addjob":
			_ = p.AddJob(ctx)
		case "editjob":
			withID("editjob <id>", p.EditJob)
		case "deljob":
			withID("deljob <id>", p.DeleteJob)

		case "categories":
			_ = p.Categories(ctx)
		case "cat":
			withID("cat <id>", p.Category)
		case "addcat":
			_ = p.AddCategory(ctx)
		case "editcat":
			withID("editcat <id>", p.EditCategory)
		case "delcat":
			withID("delcat <id>", p.DeleteCategory)

		case "favs", "favourites":
			_ = p.Favourites(ctx)
		case "fav":
			withID("fav <jobid>", p.ToggleFavourite)

		case "profile":
			_ = p.Profile(ctx)
		case "editinfo":
			_ = p.EditPersonalInfo(ctx)
		case "addexp":
			_ = p.AddExperience(ctx)
		case "addedu":
			_ = p.AddEducation(ctx)
		case "skills":
			_ = p.EditSkills(ctx)
		case "languages":
			_ = p.EditLanguages(ctx)
		case "overview":
			_ = p.EditOverview(ctx)
		case "cv":
			_ = p.EditCVResume(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

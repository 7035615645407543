package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/session"
)

func (a *App) Jobs(ctx context.Context) error {
	if !a.navigate(session.RouteJobs) {
		return nil
	}
	jobs, err := a.jobs.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	favs := map[string]bool{}
	if me, err := a.users.Me(ctx); err == nil {
		for _, id := range me.Favourites.IDs() {
			favs[id] = true
		}
	}

	renderJobTable(a.out, jobs, favs)
	return nil
}

func (a *App) Job(ctx context.Context, id string) error {
	if !a.navigate(session.RouteJobs) {
		return nil
	}
	j, err := a.jobs.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	renderJobDetail(a.out, j)
	return nil
}

func (a *App) AddJob(ctx context.Context) error {
	if !a.navigate(session.RouteJobs) {
		return nil
	}
	in, err := a.promptJobInput(models.JobInput{Status: models.JobOpen})
	if err != nil {
		return a.fail(ctx, err)
	}
	j, err := a.jobs.Create(ctx, in)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Created job %s (%s)\n", j.Title, j.ID)
	return nil
}

func (a *App) EditJob(ctx context.Context, id string) error {
	if !a.navigate(session.RouteJobs) {
		return nil
	}
	current, err := a.jobs.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	in, err := a.promptJobInput(models.JobInput{
		Title:          current.Title,
		JobType:        current.JobType,
		Experience:     current.Experience,
		Category:       current.Category,
		Status:         current.Status,
		Location:       current.Location,
		Info:           current.Info,
		Description:    current.Description,
		Qualifications: current.Qualifications,
		Benefits:       current.Benefits,
		IsNegotiable:   current.IsNegotiable,
		SalaryFrom:     current.SalaryFrom,
		SalaryTo:       current.SalaryTo,
	})
	if err != nil {
		return a.fail(ctx, err)
	}
	j, err := a.jobs.Update(ctx, id, in)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Updated job %s\n", j.ID)
	return nil
}

func (a *App) DeleteJob(ctx context.Context, id string) error {
	if !a.navigate(session.RouteJobs) {
		return nil
	}
	ok, err := promptBool(a.reader, fmt.Sprintf("Delete job %s?", id), false, a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.jobs.Delete(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Deleted job %s\n", id)
	return nil
}

// promptJobInput walks the job form. Defaults come from def so editing an
// existing job only requires touching the fields that change.
func (a *App) promptJobInput(def models.JobInput) (models.JobInput, error) {
	var in models.JobInput
	var err error

	if in.Title, err = promptDefault(a.reader, "Title", def.Title, a.out); err != nil {
		return in, err
	}
	jt, err := promptDefault(a.reader, "Job type (FULL_TIME/PART_TIME/REMOTE/FREELANCE)", string(def.JobType), a.out)
	if err != nil {
		return in, err
	}
	in.JobType = models.JobType(strings.ToUpper(jt))

	lvl, err := promptDefault(a.reader, "Experience (INTERN/JUNIOR/MID/SENIOR/EXECUTIVE)", string(def.Experience), a.out)
	if err != nil {
		return in, err
	}
	in.Experience = models.ExperienceLevel(strings.ToUpper(lvl))

	if in.Category, err = promptDefault(a.reader, "Category id", def.Category, a.out); err != nil {
		return in, err
	}

	st, err := promptDefault(a.reader, "Status (OPEN/CLOSED)", string(def.Status), a.out)
	if err != nil {
		return in, err
	}
	in.Status = models.JobStatus(strings.ToUpper(st))

	if in.Location, err = promptDefault(a.reader, "Location", def.Location, a.out); err != nil {
		return in, err
	}
	if in.Info, err = promptDefault(a.reader, "Info", def.Info, a.out); err != nil {
		return in, err
	}
	if in.Description, err = promptList(a.reader, "Description", a.out); err != nil {
		return in, err
	}
	if len(in.Description) == 0 {
		in.Description = def.Description
	}
	if in.Qualifications, err = promptList(a.reader, "Qualifications", a.out); err != nil {
		return in, err
	}
	if len(in.Qualifications) == 0 {
		in.Qualifications = def.Qualifications
	}
	if in.Benefits, err = promptList(a.reader, "Benefits", a.out); err != nil {
		return in, err
	}
	if len(in.Benefits) == 0 {
		in.Benefits = def.Benefits
	}

	if in.IsNegotiable, err = promptBool(a.reader, "Salary negotiable?", def.IsNegotiable, a.out); err != nil {
		return in, err
	}
	if !in.IsNegotiable {
		if in.SalaryFrom, err = promptOptionalInt(a.reader, "Salary from", def.SalaryFrom, a.out); err != nil {
			return in, err
		}
		if in.SalaryTo, err = promptOptionalInt(a.reader, "Salary to", def.SalaryTo, a.out); err != nil {
			return in, err
		}
	}
	return in, nil
}

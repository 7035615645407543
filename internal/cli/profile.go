package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/session"
)

func (a *App) Profile(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	renderProfile(a.out, u)
	return nil
}

func (a *App) EditPersonalInfo(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	def := models.PersonalInfo{}
	if u.PersonalInfo != nil {
		def = *u.PersonalInfo
	}

	info := def
	if info.FirstName, err = promptDefault(a.reader, "First name", def.FirstName, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.LastName, err = promptDefault(a.reader, "Last name", def.LastName, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.Phone, err = promptDefault(a.reader, "Phone", def.Phone, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.Occupation, err = promptDefault(a.reader, "Occupation", def.Occupation, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.Country, err = promptDefault(a.reader, "Country", def.Country, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.City, err = promptDefault(a.reader, "City", def.City, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.Address, err = promptDefault(a.reader, "Address", def.Address, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if info.LinkedinURL, err = promptDefault(a.reader, "LinkedIn URL", def.LinkedinURL, a.out); err != nil {
		return a.fail(ctx, err)
	}

	if _, err := a.users.Update(ctx, models.UserUpdate{PersonalInfo: &info}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Personal info updated")
	return nil
}

// AddExperience appends one entry. The section is a full replace on the
// wire, so the existing entries are resubmitted alongside the new one.
func (a *App) AddExperience(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	var in models.ExperienceInput
	if in.Position, err = getLine(a.reader, "Position", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.CompanyName, err = getLine(a.reader, "Company", a.out); err != nil {
		return a.fail(ctx, err)
	}
	jt, err := promptDefault(a.reader, "Job type (FULL_TIME/PART_TIME/REMOTE/FREELANCE)", string(models.JobFullTime), a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	in.JobType = models.JobType(strings.ToUpper(jt))
	if in.Country, err = getLine(a.reader, "Country", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.From, err = promptDate(a.reader, "From", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.CurrentlyWorking, err = promptBool(a.reader, "Currently working here?", false, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if !in.CurrentlyWorking {
		if in.To, err = promptDate(a.reader, "To", a.out); err != nil {
			return a.fail(ctx, err)
		}
	}
	if in.Description, err = getLine(a.reader, "Description", a.out); err != nil {
		return a.fail(ctx, err)
	}

	experience := append(models.ExperienceInputs(u.Experience), in)
	if _, err := a.users.Update(ctx, models.UserUpdate{Experience: experience}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Experience added")
	return nil
}

func (a *App) AddEducation(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	var in models.EducationInput
	if in.Qualification, err = getLine(a.reader, "Qualification", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.Institution, err = getLine(a.reader, "Institution", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.FieldOfStudy, err = getLine(a.reader, "Field of study", a.out); err != nil {
		return a.fail(ctx, err)
	}
	lvl, err := promptDefault(a.reader, "Level (DOCTORATE/MASTER/BACHELOR/POST_GRADUATE/DIPLOMA/OTHER)", string(models.EduBachelor), a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	in.EducationLevel = models.EducationLevel(strings.ToUpper(lvl))
	if in.Country, err = getLine(a.reader, "Country", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.From, err = promptDate(a.reader, "From", a.out); err != nil {
		return a.fail(ctx, err)
	}
	if in.To, err = promptDate(a.reader, "To", a.out); err != nil {
		return a.fail(ctx, err)
	}

	education := append(models.EducationInputs(u.Education), in)
	if _, err := a.users.Update(ctx, models.UserUpdate{Education: education}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Education added")
	return nil
}

// EditSkills replaces the whole skills section with freshly entered rows.
func (a *App) EditSkills(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	rows, err := promptList(a.reader, "Skills as 'name:HIGH|MODERATE|LOW'", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	var skills []models.SkillInput
	for _, row := range rows {
		name, prof, ok := strings.Cut(row, ":")
		if !ok {
			return a.fail(ctx, fmt.Errorf("expected 'name:proficiency', got %q", row))
		}
		skills = append(skills, models.SkillInput{
			Skill:       strings.TrimSpace(name),
			Proficiency: models.Proficiency(strings.ToUpper(strings.TrimSpace(prof))),
		})
	}
	if _, err := a.users.Update(ctx, models.UserUpdate{Skills: skills}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Skills updated")
	return nil
}

func (a *App) EditLanguages(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	rows, err := promptList(a.reader, "Languages as 'name:HIGH|MODERATE|LOW'", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	var languages []models.LanguageInput
	for _, row := range rows {
		name, prof, ok := strings.Cut(row, ":")
		if !ok {
			return a.fail(ctx, fmt.Errorf("expected 'name:proficiency', got %q", row))
		}
		languages = append(languages, models.LanguageInput{
			Language:    strings.TrimSpace(name),
			Proficiency: models.Proficiency(strings.ToUpper(strings.TrimSpace(prof))),
		})
	}
	if _, err := a.users.Update(ctx, models.UserUpdate{Languages: languages}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Languages updated")
	return nil
}

func (a *App) EditOverview(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	def := models.Overview{}
	if u.Overview != nil {
		def = *u.Overview
	}
	o := def
	if o.AboutYourself, err = promptDefault(a.reader, "About yourself", def.AboutYourself, a.out); err != nil {
		return a.fail(ctx, err)
	}
	if o.WhyShouldWeHireYou, err = promptDefault(a.reader, "Why should we hire you", def.WhyShouldWeHireYou, a.out); err != nil {
		return a.fail(ctx, err)
	}

	if _, err := a.users.Update(ctx, models.UserUpdate{Overview: &o}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "Overview updated")
	return nil
}

// EditCVResume stores links to the hosted documents.
func (a *App) EditCVResume(ctx context.Context) error {
	if !a.navigate(session.RouteProfile) {
		return nil
	}
	u, err := a.users.Me(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	cv, err := promptDefault(a.reader, "CV URL", u.CV, a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	resume, err := promptDefault(a.reader, "Resume URL", u.Resume, a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	if _, err := a.users.Update(ctx, models.UserUpdate{CV: &cv, Resume: &resume}); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintln(a.out, "CV and resume updated")
	return nil
}

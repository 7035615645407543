package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jobport/adminctl/internal/models"
)

func formatSalary(j models.Job) string {
	if j.IsNegotiable {
		return "negotiable"
	}
	from, to := "?", "?"
	if j.SalaryFrom != nil {
		from = fmt.Sprintf("%d", *j.SalaryFrom)
	}
	if j.SalaryTo != nil {
		to = fmt.Sprintf("%d", *j.SalaryTo)
	}
	return fmt.Sprintf("%s-%s", from, to)
}

func formatDate(e *models.EndDate) string {
	if e == nil {
		return ""
	}
	if e.Present {
		return "Present"
	}
	return e.Date.Format(dateLayout)
}

// renderJobTable writes the listing the jobs page shows: one row per job,
// with a star marking favourites.
func renderJobTable(w io.Writer, jobs []models.Job, favourites map[string]bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \tID\tTITLE\tTYPE\tLEVEL\tSTATUS\tLOCATION\tSALARY")
	for _, j := range jobs {
		star := " "
		if favourites[j.ID] {
			star = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			star, j.ID, j.Title, j.JobType, j.Experience, j.Status, j.Location, formatSalary(j))
	}
	tw.Flush()
}

func renderJobDetail(w io.Writer, j models.Job) {
	fmt.Fprintf(w, "%s (%s)\n", j.Title, j.ID)
	fmt.Fprintf(w, "  %s / %s / %s\n", j.JobType, j.Experience, j.Status)
	fmt.Fprintf(w, "  category: %s\n", j.Category)
	fmt.Fprintf(w, "  location: %s\n", j.Location)
	fmt.Fprintf(w, "  salary:   %s\n", formatSalary(j))
	if j.Info != "" {
		fmt.Fprintf(w, "  info:     %s\n", j.Info)
	}
	renderSection(w, "description", j.Description)
	renderSection(w, "qualifications", j.Qualifications)
	renderSection(w, "benefits", j.Benefits)
}

func renderSection(w io.Writer, name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", name)
	for _, it := range items {
		fmt.Fprintf(w, "    - %s\n", it)
	}
}

func renderCategoryTable(w io.Writer, categories []models.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCREATED")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.CreatedAt.Format(dateLayout))
	}
	tw.Flush()
}

func renderProfile(w io.Writer, u models.User) {
	fmt.Fprintf(w, "%s (%s)\n", u.Email, u.Role)
	if p := u.PersonalInfo; p != nil {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		if name != "" {
			fmt.Fprintf(w, "  name:       %s\n", name)
		}
		if p.Occupation != "" {
			fmt.Fprintf(w, "  occupation: %s\n", p.Occupation)
		}
		if p.Country != "" || p.City != "" {
			fmt.Fprintf(w, "  location:   %s %s\n", p.Country, p.City)
		}
		if p.Phone != "" {
			fmt.Fprintf(w, "  phone:      %s\n", p.Phone)
		}
	}
	if o := u.Overview; o != nil && o.AboutYourself != "" {
		fmt.Fprintf(w, "  about:      %s\n", o.AboutYourself)
	}
	if len(u.Experience) > 0 {
		fmt.Fprintln(w, "  experience:")
		for _, e := range u.Experience {
			from := ""
			if e.From != nil {
				from = e.From.Format(dateLayout)
			}
			fmt.Fprintf(w, "    %s at %s (%s .. %s)\n", e.Position, e.CompanyName, from, formatDate(e.To))
		}
	}
	if len(u.Education) > 0 {
		fmt.Fprintln(w, "  education:")
		for _, e := range u.Education {
			fmt.Fprintf(w, "    %s, %s (%s)\n", e.Qualification, e.Institution, e.EducationLevel)
		}
	}
	if len(u.Skills) > 0 {
		var ss []string
		for _, s := range u.Skills {
			ss = append(ss, fmt.Sprintf("%s (%s)", s.Skill, s.Proficiency))
		}
		fmt.Fprintf(w, "  skills:     %s\n", strings.Join(ss, ", "))
	}
	if len(u.Languages) > 0 {
		var ls []string
		for _, l := range u.Languages {
			ls = append(ls, fmt.Sprintf("%s (%s)", l.Language, l.Proficiency))
		}
		fmt.Fprintf(w, "  languages:  %s\n", strings.Join(ls, ", "))
	}
	if u.CV != "" {
		fmt.Fprintf(w, "  cv:         %s\n", u.CV)
	}
	if u.Resume != "" {
		fmt.Fprintf(w, "  resume:     %s\n", u.Resume)
	}
	fmt.Fprintf(w, "  favourites: %d\n", u.Favourites.Len())
}

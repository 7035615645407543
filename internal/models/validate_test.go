package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func timep(t time.Time) *time.Time { return &t }

func validJobInput() JobInput {
	return JobInput{
		Title:      "Backend Engineer",
		JobType:    JobFullTime,
		Experience: LevelSenior,
		Category:   "665f1c2e9b1d2a0012345678",
		Status:     JobOpen,
		Location:   "Berlin",
		SalaryFrom: intp(60000),
		SalaryTo:   intp(80000),
	}
}

func TestValidate_JobInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JobInput)
		wantErr string
	}{
		{
			name:   "valid with salary range",
			mutate: func(in *JobInput) {},
		},
		{
			name: "negotiable without salary",
			mutate: func(in *JobInput) {
				in.IsNegotiable = true
				in.SalaryFrom = nil
				in.SalaryTo = nil
			},
		},
		{
			name: "not negotiable missing salaryFrom",
			mutate: func(in *JobInput) {
				in.SalaryFrom = nil
			},
			wantErr: "SalaryFrom is required",
		},
		{
			name: "not negotiable missing salaryTo",
			mutate: func(in *JobInput) {
				in.SalaryTo = nil
			},
			wantErr: "SalaryTo is required",
		},
		{
			name: "inverted salary range",
			mutate: func(in *JobInput) {
				in.SalaryFrom = intp(90000)
				in.SalaryTo = intp(60000)
			},
			wantErr: "salaryTo must not be lower than salaryFrom",
		},
		{
			name: "missing title",
			mutate: func(in *JobInput) {
				in.Title = ""
			},
			wantErr: "Title is required",
		},
		{
			name: "unknown job type",
			mutate: func(in *JobInput) {
				in.JobType = "GIG"
			},
			wantErr: "JobType must be one of",
		},
		{
			name: "unknown status",
			mutate: func(in *JobInput) {
				in.Status = "PAUSED"
			},
			wantErr: "Status must be one of",
		},
		{
			name: "negative salary",
			mutate: func(in *JobInput) {
				in.SalaryFrom = intp(-1)
			},
			wantErr: "SalaryFrom must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validJobInput()
			tt.mutate(&in)

			err := Validate(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func validExperienceInput() ExperienceInput {
	from := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	return ExperienceInput{
		Position:    "SRE",
		CompanyName: "Acme",
		JobType:     JobRemote,
		From:        timep(from),
		To:          timep(to),
	}
}

func TestValidate_ExperienceInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExperienceInput)
		wantErr string
	}{
		{
			name:   "past position with end date",
			mutate: func(in *ExperienceInput) {},
		},
		{
			name: "current position without end date",
			mutate: func(in *ExperienceInput) {
				in.CurrentlyWorking = true
				in.To = nil
			},
		},
		{
			name: "current position with end date",
			mutate: func(in *ExperienceInput) {
				in.CurrentlyWorking = true
			},
			wantErr: "a current position must not carry an end date",
		},
		{
			name: "past position without end date",
			mutate: func(in *ExperienceInput) {
				in.To = nil
			},
			wantErr: "a past position requires an end date",
		},
		{
			name: "end date before start date",
			mutate: func(in *ExperienceInput) {
				in.To = timep(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
			},
			wantErr: "a past position requires an end date",
		},
		{
			name: "missing start date",
			mutate: func(in *ExperienceInput) {
				in.From = nil
			},
			wantErr: "From is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validExperienceInput()
			tt.mutate(&in)

			err := Validate(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AuthInput(t *testing.T) {
	assert.NoError(t, Validate(AuthInput{Email: "admin@jobport.example", Password: "secret-pass"}))

	err := Validate(AuthInput{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email must be a valid email address")
	assert.Contains(t, err.Error(), "Password must be at least 8 characters")
}

func TestValidate_UserUpdate_DivesIntoSections(t *testing.T) {
	upd := UserUpdate{
		Skills: []SkillInput{
			{Skill: "Go", Proficiency: ProficiencyHigh},
			{Skill: "SQL", Proficiency: "EXPERT"},
		},
	}

	err := Validate(upd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Proficiency must be one of")
}

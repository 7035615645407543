package models

import "time"

type JobType string

const (
	JobFullTime  JobType = "FULL_TIME"
	JobPartTime  JobType = "PART_TIME"
	JobRemote    JobType = "REMOTE"
	JobFreelance JobType = "FREELANCE"
)

type ExperienceLevel string

const (
	LevelIntern    ExperienceLevel = "INTERN"
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

type JobStatus string

const (
	JobOpen   JobStatus = "OPEN"
	JobClosed JobStatus = "CLOSED"
)

// Job is a job posting.
type Job struct {
	ID             string          `json:"_id"`
	Title          string          `json:"title"`
	JobType        JobType         `json:"jobType"`
	Experience     ExperienceLevel `json:"experience"`
	Category       string          `json:"category"`
	Status         JobStatus       `json:"status"`
	Location       string          `json:"location"`
	Info           string          `json:"info"`
	Description    []string        `json:"description"`
	Qualifications []string        `json:"qualifications"`
	Benefits       []string        `json:"benefits"`
	IsNegotiable   bool            `json:"isNegotiable"`
	SalaryFrom     *int            `json:"salaryFrom,omitempty"`
	SalaryTo       *int            `json:"salaryTo,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// JobInput creates a job or fully replaces an existing one.
//
// Salary invariant: unless IsNegotiable, both bounds must be present and
// SalaryTo must not undercut SalaryFrom. Enforced locally before submission:
// see validateJobInput.
type JobInput struct {
	Title          string          `json:"title" validate:"required"`
	JobType        JobType         `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME REMOTE FREELANCE"`
	Experience     ExperienceLevel `json:"experience" validate:"required,oneof=INTERN JUNIOR MID SENIOR EXECUTIVE"`
	Category       string          `json:"category" validate:"required"`
	Status         JobStatus       `json:"status,omitempty" validate:"omitempty,oneof=OPEN CLOSED"`
	Location       string          `json:"location" validate:"required"`
	Info           string          `json:"info"`
	Description    []string        `json:"description"`
	Qualifications []string        `json:"qualifications"`
	Benefits       []string        `json:"benefits"`
	IsNegotiable   bool            `json:"isNegotiable"`
	SalaryFrom     *int            `json:"salaryFrom,omitempty" validate:"omitempty,gte=0"`
	SalaryTo       *int            `json:"salaryTo,omitempty" validate:"omitempty,gte=0"`
}

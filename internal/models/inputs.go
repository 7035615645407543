package models

import (
	"encoding/json"
	"time"
)

// AuthInput carries login/register credentials.
type AuthInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserUpdate is a section-wise full replace of /user/me: only the sections
// present in the struct are sent, and each one overwrites the stored section
// entirely. There is no version check; concurrent writers last-write-win.
type UserUpdate struct {
	PersonalInfo *PersonalInfo     `json:"personalInfo,omitempty"`
	Experience   []ExperienceInput `json:"experience,omitempty" validate:"omitempty,dive"`
	Education    []EducationInput  `json:"education,omitempty" validate:"omitempty,dive"`
	Skills       []SkillInput      `json:"skills,omitempty" validate:"omitempty,dive"`
	Languages    []LanguageInput   `json:"languages,omitempty" validate:"omitempty,dive"`
	CV           *string           `json:"cv,omitempty"`
	Resume       *string           `json:"resume,omitempty"`
	Overview     *Overview         `json:"overview,omitempty"`
}

// ExperienceInput is one work-history entry as entered in the profile form.
//
// Date invariant: a currently-held position must not carry an end date, a
// past position must; enforced by validateExperienceInput before submission.
type ExperienceInput struct {
	Position         string     `json:"position" validate:"required"`
	CompanyName      string     `json:"companyName" validate:"required"`
	JobType          JobType    `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME REMOTE FREELANCE"`
	Country          string     `json:"country"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	From             *time.Time `json:"from" validate:"required"`
	To               *time.Time `json:"to,omitempty"`
	Description      string     `json:"description,omitempty"`
}

// MarshalJSON encodes the entry the way the backend stores it: the end date
// of a currently-held position goes out as the literal "Present".
func (e ExperienceInput) MarshalJSON() ([]byte, error) {
	exp := Experience{
		Position:         e.Position,
		CompanyName:      e.CompanyName,
		JobType:          e.JobType,
		Country:          e.Country,
		CurrentlyWorking: e.CurrentlyWorking,
		From:             e.From,
		Description:      e.Description,
	}
	switch {
	case e.CurrentlyWorking:
		exp.To = &EndDate{Present: true}
	case e.To != nil:
		exp.To = &EndDate{Date: *e.To}
	}
	return json.Marshal(exp)
}

// ExperienceInputs converts stored entries back into form inputs so a
// section edit can resubmit the existing entries alongside new ones.
func ExperienceInputs(entries []Experience) []ExperienceInput {
	var out []ExperienceInput
	for _, e := range entries {
		in := ExperienceInput{
			Position:         e.Position,
			CompanyName:      e.CompanyName,
			JobType:          e.JobType,
			Country:          e.Country,
			CurrentlyWorking: e.CurrentlyWorking,
			From:             e.From,
			Description:      e.Description,
		}
		if e.To != nil && !e.To.Present {
			d := e.To.Date
			in.To = &d
		}
		out = append(out, in)
	}
	return out
}

func EducationInputs(entries []Education) []EducationInput {
	var out []EducationInput
	for _, e := range entries {
		out = append(out, EducationInput{
			Qualification:  e.Qualification,
			Institution:    e.Institution,
			FieldOfStudy:   e.FieldOfStudy,
			EducationLevel: e.EducationLevel,
			Country:        e.Country,
			From:           e.From,
			To:             e.To,
			Description:    e.Description,
		})
	}
	return out
}

func SkillInputs(skills []Skill) []SkillInput {
	var out []SkillInput
	for _, s := range skills {
		out = append(out, SkillInput{Skill: s.Skill, Proficiency: s.Proficiency})
	}
	return out
}

func LanguageInputs(languages []Language) []LanguageInput {
	var out []LanguageInput
	for _, l := range languages {
		out = append(out, LanguageInput{Language: l.Language, Proficiency: l.Proficiency})
	}
	return out
}

type EducationInput struct {
	Qualification  string         `json:"qualification" validate:"required"`
	Institution    string         `json:"institution" validate:"required"`
	FieldOfStudy   string         `json:"fieldOfStudy"`
	EducationLevel EducationLevel `json:"educationLevel" validate:"required,oneof=DOCTORATE MASTER BACHELOR POST_GRADUATE DIPLOMA OTHER"`
	Country        string         `json:"country"`
	From           *time.Time     `json:"from" validate:"required"`
	To             *time.Time     `json:"to" validate:"required"`
	Description    string         `json:"description,omitempty"`
}

type SkillInput struct {
	Skill       string      `json:"skill" validate:"required"`
	Proficiency Proficiency `json:"proficiency" validate:"required,oneof=HIGH MODERATE LOW"`
}

type LanguageInput struct {
	Language    string      `json:"language" validate:"required"`
	Proficiency Proficiency `json:"proficiency" validate:"required,oneof=HIGH MODERATE LOW"`
}

package models

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Proficiency string

const (
	ProficiencyHigh     Proficiency = "HIGH"
	ProficiencyModerate Proficiency = "MODERATE"
	ProficiencyLow      Proficiency = "LOW"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type EducationLevel string

const (
	EduDoctorate    EducationLevel = "DOCTORATE"
	EduMaster       EducationLevel = "MASTER"
	EduBachelor     EducationLevel = "BACHELOR"
	EduPostGraduate EducationLevel = "POST_GRADUATE"
	EduDiploma      EducationLevel = "DIPLOMA"
	EduOther        EducationLevel = "OTHER"
)

// User is the profile record behind /user/me.
type User struct {
	ID           string        `json:"_id"`
	Email        string        `json:"email"`
	Role         Role          `json:"role"`
	PersonalInfo *PersonalInfo `json:"personalInfo,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	CV           string        `json:"cv,omitempty"`
	Resume       string        `json:"resume,omitempty"`
	Overview     *Overview     `json:"overview,omitempty"`
	Applications []string      `json:"applications,omitempty"`
	Favourites   FavouriteList `json:"favourites,omitempty"`
	CreatedAt    *time.Time    `json:"createdAt,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type PersonalInfo struct {
	FirstName   string     `json:"firstName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Occupation  string     `json:"occupation,omitempty"`
	Gender      Gender     `json:"gender,omitempty"`
	Country     string     `json:"country,omitempty"`
	City        string     `json:"city,omitempty"`
	Address     string     `json:"address,omitempty"`
	PostalCode  int        `json:"postalCode,omitempty"`
	LinkedinURL string     `json:"linkedinUrl,omitempty"`
}

// Experience is one work-history entry. The end date is absent (still
// working) or a concrete date; the wire encodes "still working" as the
// literal string "Present".
type Experience struct {
	Position         string     `json:"position,omitempty"`
	CompanyName      string     `json:"companyName,omitempty"`
	JobType          JobType    `json:"jobType,omitempty"`
	Country          string     `json:"country,omitempty"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	From             *time.Time `json:"from,omitempty"`
	To               *EndDate   `json:"to,omitempty"`
	Description      string     `json:"description,omitempty"`
}

type Education struct {
	Qualification  string         `json:"qualification,omitempty"`
	Institution    string         `json:"institution,omitempty"`
	FieldOfStudy   string         `json:"fieldOfStudy,omitempty"`
	EducationLevel EducationLevel `json:"educationLevel,omitempty"`
	Country        string         `json:"country,omitempty"`
	From           *time.Time     `json:"from,omitempty"`
	To             *time.Time     `json:"to,omitempty"`
	Description    string         `json:"description,omitempty"`
}

type Skill struct {
	Skill       string      `json:"skill"`
	Proficiency Proficiency `json:"proficiency"`
}

type Language struct {
	Language    string      `json:"language"`
	Proficiency Proficiency `json:"proficiency"`
}

type Overview struct {
	AboutYourself      string `json:"aboutYourself,omitempty"`
	WhyShouldWeHireYou string `json:"whyShouldWeHireYou,omitempty"`
}

// EndDate is either a concrete date or the marker "Present".
type EndDate struct {
	Present bool
	Date    time.Time
}

func (e EndDate) MarshalJSON() ([]byte, error) {
	if e.Present {
		return json.Marshal("Present")
	}
	return json.Marshal(e.Date)
}

func (e *EndDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == "Present" {
		*e = EndDate{Present: true}
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*e = EndDate{Date: t}
	return nil
}

// FavouriteList is the user's favourite jobs. Depending on the endpoint the
// wire carries either bare job ids or embedded job objects; both decode into
// the same list so membership tests never care about the shape.
type FavouriteList struct {
	ids  []string
	jobs []Job
}

// FavouriteIDs builds a list from bare ids. Mostly useful in tests.
func FavouriteIDs(ids ...string) FavouriteList {
	return FavouriteList{ids: ids}
}

func (f *FavouriteList) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		*f = FavouriteList{ids: ids}
		return nil
	}

	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return err
	}
	ids = make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	*f = FavouriteList{ids: ids, jobs: jobs}
	return nil
}

func (f FavouriteList) MarshalJSON() ([]byte, error) {
	if f.jobs != nil {
		return json.Marshal(f.jobs)
	}
	if f.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.ids)
}

// IDs returns the favourite job ids.
func (f FavouriteList) IDs() []string { return f.ids }

// Jobs returns the embedded job objects, when the source endpoint provided
// them. Empty for id-shaped lists.
func (f FavouriteList) Jobs() []Job { return f.jobs }

func (f FavouriteList) Len() int { return len(f.ids) }

// Contains reports whether jobID is in the favourites list.
func (f FavouriteList) Contains(jobID string) bool {
	for _, id := range f.ids {
		if id == jobID {
			return true
		}
	}
	return false
}

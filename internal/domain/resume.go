package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a labeled URL shown in the resume header (portfolio, LinkedIn, ...).
type Link struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Links        []Link `json:"links,omitempty"`
}

type WorkExperience struct {
	JobTitle         string `json:"jobTitle"`
	Organization     string `json:"organization,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	IsCurrent        bool   `json:"isCurrent,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// AdditionalInfo holds the free-text subsections of the editor's last step.
// Each value may contain embedded newlines.
type AdditionalInfo struct {
	VolunteerExperience string `json:"volunteerExperience,omitempty"`
	Projects            string `json:"projects,omitempty"`
	Awards              string `json:"awards,omitempty"`
}

// ResumeDocument is the persisted resume record. The rendering pipeline only
// reads it; the single mutation it triggers is the download-count increment,
// which is delegated back to the repository.
type ResumeDocument struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"userId"`
	PersonalInfo     PersonalInfo   `json:"personalInfo"`
	CareerObjective  string         `json:"careerObjective,omitempty"`
	WorkExperience   []WorkExperience `json:"workExperience,omitempty"`
	Skills           []string       `json:"skills,omitempty"`
	Education        []Education    `json:"education,omitempty"`
	Certifications   []Certification `json:"certifications,omitempty"`
	Languages        []Language     `json:"languages,omitempty"`
	AdditionalInfo   AdditionalInfo `json:"additionalInfo,omitempty"`
	SelectedTemplate string         `json:"selectedTemplate,omitempty"`
	DownloadCount    int            `json:"downloadCount"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Package inquiry implements the Global Engagement Office form-submission
// pipeline: decode a payload, render the staff notification and submitter
// confirmation documents, and dispatch both over SMTP.
package inquiry

import (
	"encoding/base64"
	"fmt"

	"github.com/kumaraguru-geo/geo-portal-api/internal/mail"
)

// Partnership is an institutional partnership inquiry.
type Partnership struct {
	Institution   string          `json:"institution" validate:"required"`
	Country       string          `json:"country" validate:"required"`
	ContactPerson string          `json:"contactPerson" validate:"required"`
	Designation   string          `json:"designation"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         string          `json:"phone"`
	Interests     map[string]bool `json:"interests"`
	Notes         string          `json:"notes"`
}

// Attachment is a base64-encoded file uploaded with a counseling request.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// Counseling is a student counseling request for outbound programs.
type Counseling struct {
	Name            string      `json:"name" validate:"required"`
	Email           string      `json:"email" validate:"required,email"`
	Year            string      `json:"year" validate:"required"`
	Program         string      `json:"program" validate:"required"`
	AreaOfInterest  string      `json:"areaOfInterest" validate:"required"`
	AdditionalNotes string      `json:"additionalNotes"`
	Attachment      *Attachment `json:"attachment"`

	decoded []byte
}

// Research is a research collaboration inquiry.
type Research struct {
	Name           string `json:"name" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	Country        string `json:"country" validate:"required"`
	ResearchDomain string `json:"researchDomain" validate:"required"`
	PreferredMode  string `json:"preferredMode" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	CV             string `json:"cv" validate:"omitempty,url"`
}

// GlobalFaculty is an inquiry from external faculty interested in teaching
// engagements.
type GlobalFaculty struct {
	Name        string   `json:"name" validate:"required"`
	Institution string   `json:"institution" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Expertise   string   `json:"expertise" validate:"required"`
	Engagement  []string `json:"engagement"`
	Email       string   `json:"email" validate:"required,email"`
	Message     string   `json:"message"`
}

// renderContext carries per-submission presentation values into templates.
type renderContext struct {
	Timestamp string
	Reference string
}

// Inquiry is one form submission. Implementations render both email
// documents; the service owns addressing and dispatch order.
type Inquiry interface {
	Kind() string
	SubmitterEmail() string
	staff(rc renderContext) (mail.Message, error)
	confirmation(rc renderContext) (mail.Message, error)
}

// normalizer lets payload types reject malformed embedded data before any
// dispatch is attempted.
type normalizer interface {
	normalize() error
}

func (p *Partnership) Kind() string           { return "partnership" }
func (p *Partnership) SubmitterEmail() string { return p.Email }

func (c *Counseling) Kind() string           { return "counseling" }
func (c *Counseling) SubmitterEmail() string { return c.Email }

// normalize decodes the optional base64 attachment payload.
func (c *Counseling) normalize() error {
	if c.Attachment == nil || c.Attachment.Data == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(c.Attachment.Data)
	if err != nil {
		return fmt.Errorf("decode attachment: %w", err)
	}
	c.decoded = raw
	return nil
}

func (r *Research) Kind() string           { return "research" }
func (r *Research) SubmitterEmail() string { return r.Email }

func (g *GlobalFaculty) Kind() string           { return "global-faculty" }
func (g *GlobalFaculty) SubmitterEmail() string { return g.Email }

package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	log "github.com/sirupsen/logrus"
)

const (
	registrationTemplateFile = "user_not_found_email.txt"
	pendingTemplateFile      = "fulfillment_pending_email.txt"

	registrationSubject = "Insurance Claim - Registration Required"
	pendingSubject      = "Insurance Claim - Additional Information Required"
)

// TemplateSet renders customer-facing email bodies from template files on
// disk. Every render has a deterministic minimal fallback so a missing or
// broken template asset never blocks a customer notification.
type TemplateSet struct {
	dir string
}

func NewTemplateSet(dir string) *TemplateSet {
	return &TemplateSet{dir: dir}
}

type templateData struct {
	UserEmail      string
	ClaimID        string
	SatisfiedItems string
	MissingItems   string
}

// RegistrationRequired renders the rejection notice for unregistered senders.
func (t *TemplateSet) RegistrationRequired(userEmail, claimID string) (string, string) {
	subject, body, err := t.render(registrationTemplateFile, registrationSubject, templateData{
		UserEmail: userEmail,
		ClaimID:   claimID,
	})
	if err != nil {
		log.WithError(err).Warn("Registration template unavailable, using fallback body")
		return registrationSubject, fmt.Sprintf(
			"Dear Customer,\n\nYour email %s is not registered in our system.\n\nClaim Reference: %s\n\nPlease contact customer service.\n\nBest regards,\nInsurance Claims Team",
			userEmail, claimID)
	}
	return subject, body
}

// PendingNotice renders the request for missing claim information, listing
// both what the customer already supplied and what is still needed.
func (t *TemplateSet) PendingNotice(claimID string, satisfied []string, missing string) (string, string) {
	satisfiedText := "None identified"
	if len(satisfied) > 0 {
		satisfiedText = "- " + strings.Join(satisfied, "\n- ")
	}

	subject, body, err := t.render(pendingTemplateFile, pendingSubject, templateData{
		ClaimID:        claimID,
		SatisfiedItems: satisfiedText,
		MissingItems:   missing,
	})
	if err != nil {
		log.WithError(err).Warn("Pending template unavailable, using fallback body")
		satisfiedInline := "None"
		if len(satisfied) > 0 {
			satisfiedInline = strings.Join(satisfied, ", ")
		}
		return pendingSubject, fmt.Sprintf(
			"Dear Customer,\n\nThank you for submitting your insurance claim. We have reviewed your submission:\n\nREQUIREMENTS SATISFIED: %s\n\nMISSING REQUIREMENTS: %s\n\nPlease reply with the missing information and supporting documents.\n\nBest regards,\nInsurance Claims Team",
			satisfiedInline, missing)
	}
	return subject, body
}

// render loads a template file whose first line may carry "Subject: ...",
// followed by a blank line and the body template.
func (t *TemplateSet) render(filename, defaultSubject string, data templateData) (string, string, error) {
	raw, err := os.ReadFile(filepath.Join(t.dir, filename))
	if err != nil {
		return "", "", err
	}

	subject := defaultSubject
	content := strings.TrimSpace(string(raw))

	lines := strings.SplitN(content, "\n", 2)
	if strings.HasPrefix(lines[0], "Subject: ") {
		subject = strings.TrimPrefix(lines[0], "Subject: ")
		if len(lines) > 1 {
			content = strings.TrimLeft(lines[1], "\n")
		} else {
			content = ""
		}
	}

	tmpl, err := template.New(filename).Parse(content)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", filename, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", filename, err)
	}

	return subject, body.String(), nil
}

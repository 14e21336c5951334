package service

import (
	"fmt"
	"regexp"
	"strings"

	"coverly.com/claimflow/internal/core/domain"
)

const missingItemsPlaceholder = "- Required fulfillment items missing"

var (
	statusRe  = regexp.MustCompile(`FULFILLMENT_STATUS:\s*(COMPLETED|PENDING)`)
	missingRe = regexp.MustCompile(`(?s)MISSING_ITEMS:\s*\n?(.*?)(?:\n\s*\n|FULFILLMENT_STATUS:|\z)`)

	// Monetary scan: currency-prefixed figures, labelled figures, or any
	// grouped number of plausible claim size.
	monetaryRes = []*regexp.Regexp{
		regexp.MustCompile(`\$\s*[\d,]+`),
		regexp.MustCompile(`(?i)rs\.?\s*[\d,]+`),
		regexp.MustCompile(`(?i)inr\s*[\d,]+`),
		regexp.MustCompile(`(?i)usd\s*[\d,]+`),
		regexp.MustCompile(`(?i)(amount|cost|claim|damage|total):?\s*[\d,]+`),
		regexp.MustCompile(`[\d,]{3,}`),
	}

	reasonKeywords = []string{"reason", "description", "what happened", "incident", "cause", "explain"}
	amountKeywords = []string{"amount", "cost", "value", "price", "sum", "money", "payment"}
	proofKeywords  = []string{"proof", "document", "attachment", "evidence", "receipt", "photo", "support"}
)

// ParseAssessment turns a raw reasoning response into a structured verdict,
// then reconciles it against the evidence in the email itself. Anything the
// response does not state explicitly defaults to pending.
func ParseAssessment(raw string, record *domain.EmailRecord) *domain.Assessment {
	status := domain.StatusPending
	if m := statusRe.FindStringSubmatch(raw); m != nil && m[1] == "COMPLETED" {
		status = domain.StatusCompleted
	}

	missing := ""
	if status == domain.StatusPending {
		missing = extractMissingItems(raw)
		if missing == "" {
			missing = missingItemsPlaceholder
		}
	}

	satisfied := satisfiedRequirements(record, missing)

	// Failsafe: when the ground-truth evidence covers at least four
	// requirements and nothing concrete is listed as missing, the verdict
	// is completed regardless of what the model said.
	if len(satisfied) >= 4 && (missing == "" || missing == missingItemsPlaceholder) {
		status = domain.StatusCompleted
		missing = ""
	}

	return &domain.Assessment{
		Status:         status,
		MissingItems:   missing,
		SatisfiedItems: satisfied,
	}
}

// extractMissingItems pulls the bullet block following the MISSING_ITEMS
// marker and normalizes every line to a "- " bullet.
func extractMissingItems(raw string) string {
	m := missingRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}

	var items []string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "-") {
			line = "- " + line
		}
		items = append(items, line)
	}
	return strings.Join(items, "\n")
}

// satisfiedRequirements derives the satisfied set from the email itself and
// from which requirement families the missing list names. The sender email
// is always satisfied.
func satisfiedRequirements(record *domain.EmailRecord, missing string) []string {
	lowerMissing := strings.ToLower(missing)

	satisfied := []string{"User email address provided"}

	if !containsAny(lowerMissing, reasonKeywords) {
		satisfied = append(satisfied, "Reason for claim provided")
	}

	if !containsAny(lowerMissing, amountKeywords) || hasMonetaryValue(record.Body) {
		satisfied = append(satisfied, "Claim amount specified")
	}

	if record.AttachmentCount > 0 {
		if !containsAny(lowerMissing, proofKeywords) {
			satisfied = append(satisfied, fmt.Sprintf("Supporting documents provided (%d attachments)", record.AttachmentCount))
		} else {
			satisfied = append(satisfied, fmt.Sprintf("Some documents provided (%d attachments, additional may be needed)", record.AttachmentCount))
		}
	}

	return satisfied
}

// hasMonetaryValue reports whether the text carries anything that reads as a
// monetary figure.
func hasMonetaryValue(text string) bool {
	for _, re := range monetaryRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

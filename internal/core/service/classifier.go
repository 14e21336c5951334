package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/core/port"
)

// insuranceKeywords is the fixed vocabulary for the deterministic fallback.
var insuranceKeywords = []string{"claim", "insurance", "policy", "coverage", "damage", "accident"}

const fallbackConfidence = 30

// ClassificationService decides whether an email is claim-relevant. The
// remote backend is authoritative when it answers with parseable JSON;
// everything else resolves to the keyword fallback. Classification never
// fails: when uncertain the pipeline prefers over-inclusion to losing a
// legitimate claim.
type ClassificationService struct {
	llm port.ReasoningClient
}

func NewClassificationService(llm port.ReasoningClient) *ClassificationService {
	return &ClassificationService{
		llm: llm,
	}
}

func (s *ClassificationService) Classify(ctx context.Context, record *domain.EmailRecord) domain.ClassificationResult {
	raw, err := s.llm.Complete(ctx, buildFilterPrompt(record))
	if err != nil {
		log.WithError(err).WithField("claimID", record.ClaimID).Warn("Classifier backend unavailable, using keyword fallback")
		return keywordFallback(record)
	}

	span, ok := extractJSONSpan(raw)
	if !ok {
		log.WithField("claimID", record.ClaimID).Warn("No JSON object in classifier response, using keyword fallback")
		return keywordFallback(record)
	}

	var result domain.ClassificationResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		log.WithError(err).WithField("claimID", record.ClaimID).Warn("Malformed classifier JSON, using keyword fallback")
		return keywordFallback(record)
	}

	return result
}

func buildFilterPrompt(record *domain.EmailRecord) string {
	var b strings.Builder
	b.WriteString("You are an expert insurance email classifier. Determine whether the email below is related to insurance matters: ")
	b.WriteString("claims, policy inquiries, coverage questions, premium payments or insurer communications. ")
	b.WriteString("Be conservative - when in doubt, classify as insurance-related to avoid missing important claims.\n\n")
	fmt.Fprintf(&b, "From: %s\n", record.Sender)
	fmt.Fprintf(&b, "Subject: %s\n", record.Subject)
	fmt.Fprintf(&b, "Content: %s\n", record.Body)
	fmt.Fprintf(&b, "Attachments: %d files\n\n", record.AttachmentCount)
	b.WriteString("Respond with JSON only:\n")
	b.WriteString(`{"is_insurance": true/false, "confidence": 0-100, "reasoning": "explanation", "category": "category_name"}`)
	return b.String()
}

// extractJSONSpan locates the outermost {...} span in a free-text response.
func extractJSONSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// keywordFallback declares relevance when at least two distinct keywords from
// the insurance vocabulary appear in subject or body. Confidence is fixed low
// so downstream logic can treat the judgment as tentative.
func keywordFallback(record *domain.EmailRecord) domain.ClassificationResult {
	haystack := strings.ToLower(record.Subject + " " + record.Body)

	matched := 0
	for _, keyword := range insuranceKeywords {
		if strings.Contains(haystack, keyword) {
			matched++
		}
	}

	return domain.ClassificationResult{
		IsRelevant: matched >= 2,
		Confidence: fallbackConfidence,
		Reasoning:  fmt.Sprintf("Fallback keyword check found %d insurance keywords", matched),
		Category:   "fallback_analysis",
	}
}

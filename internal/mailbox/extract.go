package mailbox

import (
	"io"
	"strings"

	"github.com/emersion/go-message/mail"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
)

// NoContentSentinel is used when a message carries no readable text/plain
// part. Downstream stages treat it as an ordinary body.
const NoContentSentinel = "No content found"

const unknownSender = "unknown@email.com"

// ExtractMail decodes one raw RFC 822 message into its pipeline shape:
// decoded subject, address-only sender, the first text/plain part that is
// not an attachment, and every attachment payload.
func ExtractMail(raw io.Reader) (*domain.InboundMail, error) {
	mr, err := mail.CreateReader(raw)
	if err != nil {
		return nil, err
	}

	m := &domain.InboundMail{
		Sender: unknownSender,
		Body:   NoContentSentinel,
	}

	if subject, err := mr.Header.Subject(); err == nil && subject != "" {
		m.Subject = subject
	} else {
		m.Subject = "No Subject"
	}

	if addrs, err := mr.Header.AddressList("From"); err == nil && len(addrs) > 0 {
		m.Sender = addrs[0].Address
	}

	bodyFound := false
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).Warn("Failed to read message part, skipping")
			continue
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			if bodyFound {
				continue
			}
			contentType, _, err := h.ContentType()
			if err != nil {
				continue
			}
			if contentType != "text/plain" {
				continue
			}
			data, err := io.ReadAll(p.Body)
			if err != nil {
				log.WithError(err).Warn("Failed to read text part")
				continue
			}
			if text := strings.TrimRight(string(data), "\r\n"); text != "" {
				m.Body = text
				bodyFound = true
			}
		case *mail.AttachmentHeader:
			filename, err := h.Filename()
			if err != nil || filename == "" {
				continue
			}
			data, err := io.ReadAll(p.Body)
			if err != nil {
				log.WithError(err).Warnf("Failed to read attachment %s", filename)
				continue
			}
			m.Attachments = append(m.Attachments, domain.Attachment{
				Filename: filename,
				Data:     data,
			})
		}
	}

	return m, nil
}

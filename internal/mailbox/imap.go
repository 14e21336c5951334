// Package mailbox adapts an IMAP inbox to the minimal contract the ingestion
// pipeline needs: a live message count and single-message fetch by sequence
// number.
package mailbox

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	_ "github.com/emersion/go-message/charset"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
)

const inboxName = "INBOX"

// IMAPMailbox wraps a single authenticated IMAP session. The monitor loop is
// the only caller, so the session is not guarded for concurrent use.
type IMAPMailbox struct {
	c *client.Client
}

// Dial connects over TLS, authenticates and selects the inbox. A failure
// here is a startup failure: the process must not enter the poll loop
// without a working mailbox session.
func Dial(addr, username, password string) (*IMAPMailbox, error) {
	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to IMAP server %s: %w", addr, err)
	}
	c.Timeout = 30 * time.Second

	if err := c.Login(username, password); err != nil {
		c.Logout()
		return nil, fmt.Errorf("IMAP login failed: %w", err)
	}

	if _, err := c.Select(inboxName, true); err != nil {
		c.Logout()
		return nil, fmt.Errorf("failed to select inbox: %w", err)
	}

	log.Info("Mail server connection established")
	return &IMAPMailbox{c: c}, nil
}

// Count re-selects the inbox to refresh and report the live message count.
func (m *IMAPMailbox) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	status, err := m.c.Select(inboxName, true)
	if err != nil {
		return 0, fmt.Errorf("failed to select inbox: %w", err)
	}

	return int(status.Messages), nil
}

// Fetch retrieves one message by sequence number and decodes it.
func (m *IMAPMailbox) Fetch(ctx context.Context, sequence uint32) (*domain.InboundMail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(sequence)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}

	messages := make(chan *imap.Message, 1)
	if err := m.c.Fetch(seqset, items, messages); err != nil {
		return nil, fmt.Errorf("failed to fetch message %d: %w", sequence, err)
	}

	msg := <-messages
	if msg == nil {
		return nil, fmt.Errorf("message %d not returned by server", sequence)
	}

	body := msg.GetBody(section)
	if body == nil {
		return nil, fmt.Errorf("message %d has no body section", sequence)
	}

	extracted, err := ExtractMail(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message %d: %w", sequence, err)
	}
	extracted.Sequence = sequence

	return extracted, nil
}

// Close logs out and drops the session.
func (m *IMAPMailbox) Close() error {
	return m.c.Logout()
}

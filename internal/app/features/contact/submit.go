// internal/app/features/contact/submit.go
package contact

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Receipt identifies an accepted contact message.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
}

// Submitter delivers a validated contact draft. Implementations must return
// promptly once ctx is done.
type Submitter interface {
	Submit(ctx context.Context, draft models.ContactDraft) (Receipt, error)
}

// LogSubmitter accepts every message and records it in the log. No email is
// sent.
type LogSubmitter struct {
	Log *zap.Logger
}

// NewLogSubmitter constructs a LogSubmitter.
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	return &LogSubmitter{Log: logger}
}

// Submit logs the message and issues a receipt.
func (s *LogSubmitter) Submit(ctx context.Context, draft models.ContactDraft) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	rc := Receipt{ID: uuid.NewString(), SubmittedAt: time.Now().UTC()}
	s.Log.Info("contact message received",
		zap.String("receipt", rc.ID),
		zap.String("name", draft.Name),
		zap.String("email", draft.Email),
		zap.Int("message_chars", utf8.RuneCountInString(draft.Message)))
	return rc, nil
}

// submitAsync runs the submission on its own goroutine and waits for it or
// for ctx. The result channel is buffered so the goroutine can always
// finish and exit even after the caller has given up.
func submitAsync(ctx context.Context, s Submitter, draft models.ContactDraft) (Receipt, error) {
	type result struct {
		rc  Receipt
		err error
	}
	done := make(chan result, 1)
	go func() {
		rc, err := s.Submit(ctx, draft)
		done <- result{rc, err}
	}()

	select {
	case res := <-done:
		return res.rc, res.err
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}
}

package preview

import (
	"context"
	"strings"

	"github.com/dmitrymomot/mailpreview/pkg/email"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
)

// SendTest mails the current render to "to", or to the configured test
// recipient when to is empty.
func (s *Shell) SendTest(ctx context.Context, to string) error {
	if s.sender == nil {
		return ErrSenderUnavailable
	}
	to = strings.TrimSpace(to)
	if to == "" {
		to = s.recipient
	}
	if to == "" {
		return ErrNoRecipient
	}

	st := s.State()
	if st.Email == nil {
		if st.SelectedID == "" {
			return ErrNothingSelected
		}
		return ErrNothingToSend
	}

	params := email.SendEmailParams{
		SendTo:   to,
		Subject:  st.Email.Subject,
		BodyHTML: st.Email.HTML,
		BodyText: st.Email.Text,
		Tag:      st.Email.TemplateID,
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := s.sender.SendEmail(ctx, params); err != nil {
		s.logger.ErrorContext(ctx, "test email failed",
			logger.TemplateID(st.Email.TemplateID),
			logger.Locale(st.Email.Locale),
			logger.Error(err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "test email sent",
		logger.TemplateID(st.Email.TemplateID),
		logger.Locale(st.Email.Locale),
	)
	s.notify(ctx, EventSent, st.Seq)
	return nil
}

package events

import (
	"fmt"

	"cvgen_backend/internal/email"
	"cvgen_backend/internal/i18n"
)

// NewEmailListener delivers the generated document to the user's inbox.
// Subject and body follow the document's output language.
func NewEmailListener(provider email.Provider, translator *i18n.Translator) Handler {
	return func(event CVGenerated) error {
		body := fmt.Sprintf("%s %s,\n\n%s",
			translator.T(event.Locale, "email.cv_greeting"),
			event.User.FirstName,
			translator.T(event.Locale, "email.cv_body"),
		)

		msg := &email.Email{
			To:      []string{event.User.Email},
			Subject: translator.T(event.Locale, "email.cv_subject"),
			Body:    body,
			Attachments: []email.Attachment{
				{
					Filename:    event.Filename,
					ContentType: "application/pdf",
					Data:        event.PDF,
				},
			},
		}
		return provider.Send(msg)
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSource is recorded when the submitting page did not say where it came from.
const DefaultSource = "unknown"

// Lead is an accepted contact request. Once appended to the lead log it is
// never modified. The JSON form is the on-disk record and the webhook body.
type Lead struct {
	ExternalID    uuid.UUID `json:"external_id"`
	ReceivedAt    time.Time `json:"received_at"`
	ClientIP      string    `json:"client_ip"`
	UserAgent     string    `json:"user_agent"`
	Name          *string   `json:"name"`
	Phone         string    `json:"phone"`
	Message       *string   `json:"message"`
	Source        string    `json:"source"`
	CategoryID    *string   `json:"category_id,omitempty"`
	CategoryTitle *string   `json:"category_title,omitempty"`
	IssueTitle    *string   `json:"issue_title,omitempty"`
}

// Topic joins category and issue titles for display. Empty when neither is set.
func (l Lead) Topic() string {
	switch {
	case l.CategoryTitle != nil && l.IssueTitle != nil:
		return *l.CategoryTitle + " / " + *l.IssueTitle
	case l.CategoryTitle != nil:
		return *l.CategoryTitle
	case l.IssueTitle != nil:
		return *l.IssueTitle
	}
	return ""
}

// InboxLead is a lead as recorded by the operator inbox.
type InboxLead struct {
	Lead
	CreatedAt time.Time `json:"created_at"`
}

package intake

// SubmitInput is a decoded submission plus request provenance.
type SubmitInput struct {
	ClientID  string
	ClientIP  string
	UserAgent string

	Name          *string
	Phone         string
	Message       *string
	Honeypot      string
	Source        *string
	CategoryID    *string
	CategoryTitle *string
	IssueTitle    *string
}

// Result is the outcome of an accepted submission.
type Result struct {
	ExternalID string
	Phone      string
	Delivered  bool
}

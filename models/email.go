package models

// EmailAttachment is a binary file included with an outbound email.
type EmailAttachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// OutboundEmail is a fully composed message ready for the mail provider.
// TextBody is always set; HTMLBody and Attachment are optional.
type OutboundEmail struct {
	To         string
	Subject    string
	TextBody   string
	HTMLBody   string
	Attachment *EmailAttachment
}

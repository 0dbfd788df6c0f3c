package models

// Message is one outbound email: plain-text body with an HTML alternative.
// Messages are built and dispatched within a single request; nothing is
// persisted about them.
type Message struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

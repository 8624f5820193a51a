// Package message models the contact-form messages users send through
// the public site. The client only ever reads them; replies go out
// through the email endpoint, not back into message storage.
package message

// Message is one inbound contact message.
type Message struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

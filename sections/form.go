package sections

import (
	"context"
	"net/mail"
	"strings"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/relay"
	"go.uber.org/zap"
)

// FormState is the submission state of a ContactForm.
type FormState uint8

const (
	FormIdle FormState = iota
	FormSending
	FormSent
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSending:
		return "sending"
	case FormSent:
		return "sent"
	case FormFailed:
		return "failed"
	}
	return "unknown"
}

// Submitter delivers a contact submission. relay.Client implements it.
type Submitter interface {
	Submit(ctx context.Context, s relay.Submission) (relay.Result, error)
}

// Inline messages for input the form refuses to send.
const (
	msgIncomplete   = "Please fill in every field."
	msgInvalidEmail = "Please enter a valid email address."
)

// ContactForm holds the visitor's input and the state of the last
// submission. Sending happens on a separate goroutine; the result is
// applied on the page's frame loop, so the form and its elements are only
// ever touched from the goroutine that drives the page.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string

	Status *comet.Element
	Button *comet.Element

	subjects  []string
	submitter Submitter
	log       *zap.Logger

	state   FormState
	errText string
	result  chan relay.Result
	ctx     context.Context
	cancel  context.CancelFunc
}

func newContactForm(scope *comet.Scope, submitter Submitter, subjects []string) *ContactForm {
	ctx, cancel := context.WithCancel(context.Background())
	f := &ContactForm{
		subjects:  subjects,
		submitter: submitter,
		log:       scope.Page().Logger(),
		ctx:       ctx,
		cancel:    cancel,
	}
	if len(subjects) > 0 {
		f.Subject = subjects[0]
	}

	f.Status = text("contact-form-status", "", 600, 24)
	f.Button = comet.NewBox("contact-form-submit", 200, 56, colorInk)
	f.Button.Text = "Send message"
	f.Button.Interactable = true

	scope.OnClick(func(ctx comet.ClickContext) {
		if ctx.Element == f.Button {
			f.Submit()
		}
	})
	scope.OnFrame(func(comet.FrameContext) { f.poll() })
	scope.Defer(cancel)
	return f
}

// State returns the current submission state.
func (f *ContactForm) State() FormState { return f.state }

// Error returns the inline error text, empty unless the last attempt
// failed.
func (f *ContactForm) Error() string { return f.errText }

// Subjects returns the selectable subjects.
func (f *ContactForm) Subjects() []string { return f.subjects }

// SelectSubject picks the i-th subject. Out of range indexes are ignored.
func (f *ContactForm) SelectSubject(i int) {
	if i >= 0 && i < len(f.subjects) {
		f.Subject = f.subjects[i]
	}
}

// Submit sends the current input unless a submission is already in
// flight. Input is kept until the relay confirms delivery, so a failed
// attempt can be retried as is.
func (f *ContactForm) Submit() {
	if f.state == FormSending || f.ctx.Err() != nil {
		return
	}
	if msg := f.validate(); msg != "" {
		f.fail(msg)
		return
	}
	if f.submitter == nil {
		f.fail("The contact form is unavailable.")
		return
	}
	f.state = FormSending
	f.errText = ""
	f.Status.Text = "Sending..."
	f.Button.Interactable = false

	sub := relay.Submission{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: f.Subject,
		Message: f.Message,
	}
	ch := make(chan relay.Result, 1)
	f.result = ch
	go func(ctx context.Context) {
		res, err := f.submitter.Submit(ctx, sub)
		if err != nil {
			f.log.Warn("contact submission failed", zap.Error(err))
			if res.Error == "" {
				res.Error = err.Error()
			}
		}
		ch <- res
	}(f.ctx)
}

// validate returns the inline message for unsendable input, or "".
func (f *ContactForm) validate() string {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Message) == "" {
		return msgIncomplete
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return msgInvalidEmail
	}
	return ""
}

// poll applies a finished submission. It runs once per frame.
func (f *ContactForm) poll() {
	if f.result == nil {
		return
	}
	select {
	case res := <-f.result:
		f.result = nil
		f.Button.Interactable = true
		if !res.Success {
			f.fail(res.Error)
			return
		}
		f.state = FormSent
		f.errText = ""
		f.Status.Text = "Message sent. We'll be in touch."
		f.Name, f.Email, f.Message = "", "", ""
		if len(f.subjects) > 0 {
			f.Subject = f.subjects[0]
		}
	default:
	}
}

func (f *ContactForm) fail(msg string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	f.state = FormFailed
	f.errText = msg
	f.Status.Text = msg
}

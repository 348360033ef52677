package notifxconsole

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coldcopy/coldcopy/pkg/logx"
	"github.com/coldcopy/coldcopy/pkg/notifx"
)

// ConsoleProvider writes emails to a terminal instead of delivering them.
// Used as the dry-run delivery path.
type ConsoleProvider struct {
	w io.Writer
}

// NewConsoleProvider creates a console email provider writing to stderr.
func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{w: os.Stderr}
}

// NewConsoleProviderWithWriter creates a console provider with a custom writer.
func NewConsoleProviderWithWriter(w io.Writer) *ConsoleProvider {
	return &ConsoleProvider{w: w}
}

// SendEmail prints the email instead of sending it.
func (p *ConsoleProvider) SendEmail(_ context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	logx.WithFields(logx.Fields{
		"to":      strings.Join(msg.To, ", "),
		"subject": msg.Subject,
	}).Info("notifx/console: email not delivered (dry run)")

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintf(p.w, "TO: %s\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(p.w, "SUBJECT: %s\n", msg.Subject)
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w)
	if msg.TextBody != "" {
		fmt.Fprintln(p.w, msg.TextBody)
	}

	return nil
}

package display

import (
	"context"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// CLINotifier prints notifications through a Printer.
type CLINotifier struct {
	log *logger.Logger
	out *Printer
}

// NewCLINotifier creates a notifier printing to out.
func NewCLINotifier(log *logger.Logger, out *Printer) *CLINotifier {
	return &CLINotifier{log: log, out: out}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.out.Println(infoStyle.Render(message))
	return nil
}

// NotifyUrgent prints an urgent notification in bold coral.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.out.Println(urgentStyle.Render(message))
	return nil
}

package toast

import (
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/platform"
)

// Notifier shows toasts on a printer, skipping duplicates of visible ones.
type Notifier struct {
	queue   *Queue
	printer *Printer
	logger  *zap.Logger
}

func NewNotifier(queue *Queue, printer *Printer, logger *zap.Logger) *Notifier {
	if queue == nil {
		queue = NewQueue()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{queue: queue, printer: printer, logger: logger}
}

func (n *Notifier) Success(message string) { n.show(message, Success) }
func (n *Notifier) Error(message string)   { n.show(message, Error) }
func (n *Notifier) Warning(message string) { n.show(message, Warning) }
func (n *Notifier) Info(message string)    { n.show(message, Info) }

// Fail shows the user facing message of err as an error toast.
func (n *Notifier) Fail(err error) {
	if err == nil {
		return
	}
	n.logger.Debug("action failed", zap.Error(err))
	n.show(platform.UserMessage(err), Error)
}

func (n *Notifier) Queue() *Queue {
	return n.queue
}

func (n *Notifier) show(message string, kind Kind) {
	n.queue.Expire(n.queue.now())

	t, added := n.queue.Show(message, kind)
	if !added {
		n.logger.Debug("duplicate toast skipped", zap.String("message", message))
		return
	}
	if n.printer != nil {
		n.printer.Print(t)
	}
}

package notify

import (
	"sync"

	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/logging"
)

// Kind identifies which email template the delivery side should use.
type Kind string

const (
	KindQuoteReceived  Kind = "quote-received"
	KindQuoteAccepted  Kind = "quote-accepted"
	KindQuoteRejected  Kind = "quote-rejected"
	KindQuoteRetracted Kind = "quote-retracted"
)

// Notification carries the recipient context for one outgoing message.
type Notification struct {
	Kind           Kind
	RecipientEmail string
	JobTitle       string
	SenderName     string
}

// Scheduler accepts notifications fire-and-forget. Implementations must never
// block the caller and must never surface delivery failures to it.
type Scheduler interface {
	Schedule(n Notification)
}

// Sender performs the actual delivery. Retry policy, if any, lives behind
// this interface, not in the scheduler.
type Sender interface {
	Send(n Notification) error
}

// AsyncScheduler queues notifications onto a buffered channel consumed by a
// single worker goroutine. A full queue drops the notification with a warning
// rather than blocking the request that triggered it.
type AsyncScheduler struct {
	queue  chan Notification
	log    *logging.Logger
	sender Sender

	closeOnce sync.Once
	done      chan struct{}
}

func NewAsyncScheduler(sender Sender, queueSize int, log *logging.Logger) *AsyncScheduler {
	s := &AsyncScheduler{
		queue:  make(chan Notification, queueSize),
		log:    log,
		sender: sender,
		done:   make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *AsyncScheduler) Schedule(n Notification) {
	select {
	case s.queue <- n:
	default:
		s.log.Warn("notification queue full, dropping", "kind", string(n.Kind), "recipient", n.RecipientEmail)
	}
}

func (s *AsyncScheduler) run() {
	defer close(s.done)

	for n := range s.queue {
		if err := s.sender.Send(n); err != nil {
			s.log.Error("notification delivery failed", "kind", string(n.Kind), "recipient", n.RecipientEmail, "err", err)
		}
	}
}

// Close stops accepting work and waits for the worker to drain the queue.
func (s *AsyncScheduler) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	<-s.done
}

// LogSender records deliveries in the log. Stands in for the mail gateway in
// environments without SMTP credentials.
type LogSender struct {
	log *logging.Logger
}

func NewLogSender(log *logging.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(n Notification) error {
	s.log.Info("notification sent", "kind", string(n.Kind), "recipient", n.RecipientEmail, "job", n.JobTitle)

	return nil
}

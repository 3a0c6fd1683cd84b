// Package notify holds the single transient notice shown to the user.
package notify

import (
	"time"

	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/scheduler"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityWarning, SeverityError, SeverityInfo:
		return true
	default:
		return false
	}
}

// Icon is the icon name for the severity; unknown severities fall back to info.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "check-circle"
	case SeverityWarning:
		return "exclamation-triangle"
	case SeverityError:
		return "times-circle"
	default:
		return "info-circle"
	}
}

func (s Severity) Color() string {
	switch s {
	case SeveritySuccess:
		return "#4caf50"
	case SeverityWarning:
		return "#ff9800"
	case SeverityError:
		return "#f44336"
	default:
		return "#2196f3"
	}
}

// Glyph is the terminal stand-in for Icon.
func (s Severity) Glyph() string {
	switch s.Icon() {
	case "check-circle":
		return "✔"
	case "exclamation-triangle":
		return "⚠"
	case "times-circle":
		return "✖"
	default:
		return "ℹ"
	}
}

type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseLeaving Phase = "leaving"
)

type Notice struct {
	Seq      int64
	Message  string
	Severity Severity
	Phase    Phase
	ShownAt  time.Time
}

// Timers schedules callbacks and hands back a handle for cancelling them.
type Timers interface {
	Schedule(ev scheduler.Event) (uint64, error)
	Cancel(id uint64) bool
}

// DesktopNotifier mirrors notices outside the terminal.
type DesktopNotifier interface {
	Send(icon, title, body string) error
}

const (
	DefaultDisplay = 3 * time.Second
	DefaultExit    = 300 * time.Millisecond
)

type Option func(*Service)

func WithDurations(display, exit time.Duration) Option {
	return func(s *Service) {
		if display > 0 {
			s.display = display
		}
		if exit > 0 {
			s.exit = exit
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithDesktop(d DesktopNotifier) Option {
	return func(s *Service) { s.desktop = d }
}

// Service keeps at most one notice. Showing a new one drops the current one
// at once, cancelling its timers; a notice that runs its course goes through
// PhaseLeaving for the exit duration before it disappears.
type Service struct {
	timers  Timers
	now     func() time.Time
	display time.Duration
	exit    time.Duration
	desktop DesktopNotifier

	current *Notice
	handle  uint64
	seq     int64
}

func NewService(timers Timers, opts ...Option) *Service {
	s := &Service{
		timers:  timers,
		now:     time.Now,
		display: DefaultDisplay,
		exit:    DefaultExit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Show(message string, severity Severity) Notice {
	if !severity.IsValid() {
		severity = SeverityInfo
	}
	s.cancelPending()
	s.seq++
	n := Notice{
		Seq:      s.seq,
		Message:  message,
		Severity: severity,
		Phase:    PhaseVisible,
		ShownAt:  s.now(),
	}
	s.current = &n
	s.arm(scheduler.KindNotificationDismiss, s.display)

	if s.desktop != nil {
		if err := s.desktop.Send(severity.Icon(), string(severity), message); err != nil {
			logging.Debug("notify", "desktop notification failed: %v", err)
		}
	}
	return n
}

// Current returns the notice on screen, if any.
func (s *Service) Current() (Notice, bool) {
	if s.current == nil {
		return Notice{}, false
	}
	return *s.current, true
}

// Handle applies a fired timer event. Events for notices that were already
// replaced are ignored; it reports whether the visible state changed.
func (s *Service) Handle(ev scheduler.Event) bool {
	if s.current == nil || ev.Ref != s.current.Seq {
		return false
	}
	switch ev.Kind {
	case scheduler.KindNotificationDismiss:
		if s.current.Phase != PhaseVisible {
			return false
		}
		s.handle = 0
		s.current.Phase = PhaseLeaving
		s.arm(scheduler.KindNotificationRemove, s.exit)
		return true
	case scheduler.KindNotificationRemove:
		s.handle = 0
		s.current = nil
		return true
	default:
		return false
	}
}

// Clear drops the current notice and its pending timers immediately.
func (s *Service) Clear() {
	s.cancelPending()
	s.current = nil
}

func (s *Service) arm(kind scheduler.Kind, after time.Duration) {
	if s.timers == nil {
		return
	}
	id, err := s.timers.Schedule(scheduler.Event{
		Kind:      kind,
		Ref:       s.current.Seq,
		TriggerAt: s.now().Add(after),
	})
	if err != nil {
		logging.Info("notify", "schedule %s: %v", kind, err)
		return
	}
	s.handle = id
}

func (s *Service) cancelPending() {
	if s.handle != 0 && s.timers != nil {
		s.timers.Cancel(s.handle)
	}
	s.handle = 0
}

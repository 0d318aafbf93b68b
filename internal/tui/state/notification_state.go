package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status bar.
// Only the latest notification is kept; any key press in normal mode dismisses it.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add replaces the current notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Info is shorthand for Add(LevelInfo, message)
func (s *NotificationState) Info(message string) {
	s.Add(LevelInfo, message)
}

// Warn is shorthand for Add(LevelWarning, message)
func (s *NotificationState) Warn(message string) {
	s.Add(LevelWarning, message)
}

// Error is shorthand for Add(LevelError, message)
func (s *NotificationState) Error(message string) {
	s.Add(LevelError, message)
}

// Clear removes the notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification and whether there is one.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasAny returns true if there is a notification.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Level is the severity of a notice.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelDanger  Level = "DANGER"
)

// maxMessageLength keeps notices to a single line above the table.
const maxMessageLength = 280

var (
	ErrInvalidLevel = errors.New("invalid notice level")
	ErrEmptyMessage = errors.New("notice message is empty")
	ErrTooLong      = errors.New("notice message is too long")
	ErrNegativeTTL  = errors.New("notice ttl must not be negative")
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelDanger:
		return true
	}
	return false
}

// Class is the CSS modifier used by the page.
func (l Level) Class() string {
	return strings.ToLower(string(l))
}

// Notice is an operator message displayed above the tracking table.
type Notice struct {
	Message string `json:"message"`
	Level   Level  `json:"level"`
	// TTLSeconds is the lifetime requested at publish time. 0 keeps the notice until cleared.
	TTLSeconds int       `json:"ttl_seconds,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	// ExpiresInSeconds is filled on read from the store's remaining TTL.
	ExpiresInSeconds int `json:"expires_in_seconds,omitempty"`
}

// NewNotice validates its input and builds a Notice. Level is matched case-insensitively.
func NewNotice(message string, level Level, ttlSeconds int, now time.Time) (*Notice, error) {
	message = strings.TrimSpace(message)
	level = Level(strings.ToUpper(string(level)))

	switch {
	case message == "":
		return nil, ErrEmptyMessage
	case len([]rune(message)) > maxMessageLength:
		return nil, ErrTooLong
	case !level.Valid():
		return nil, ErrInvalidLevel
	case ttlSeconds < 0:
		return nil, ErrNegativeTTL
	}

	return &Notice{
		Message:    message,
		Level:      level,
		TTLSeconds: ttlSeconds,
		CreatedAt:  now.UTC(),
	}, nil
}

// TTL returns the requested lifetime.
func (n *Notice) TTL() time.Duration {
	return time.Duration(n.TTLSeconds) * time.Second
}

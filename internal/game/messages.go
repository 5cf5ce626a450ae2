package game

import (
	"strings"

	"github.com/spacehole-rogue/orrery/internal/render"
)

// MsgPriority picks the colour of a line in the HUD log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // HUD blue
	MsgWarning                    // red
	MsgArrival                    // green
)

// Color returns the HUD colour for p.
func (p MsgPriority) Color() uint32 {
	switch p {
	case MsgWarning:
		return render.ColorHUDAlert
	case MsgArrival:
		return render.ColorHUDAccent
	default:
		return render.ColorHUD
	}
}

// Message is one wrapped line of the HUD log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of wrapped lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog keeps the most recent maxSize lines, wrapping text at width
// characters.
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  max(maxSize, 1),
		width:    max(width, 1),
	}
}

// Add wraps text and appends each line, evicting the oldest when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, l.width) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n lines, or fewer if the log is shorter.
func (l *MessageLog) Recent(n int) []Message {
	n = min(max(n, 0), len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits s on whitespace into lines of at most width characters.
// A single word longer than width gets a line of its own.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

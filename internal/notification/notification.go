// Package notification builds the system notification that accompanies a
// flagged caller's overlay.
package notification

import (
	"callguard/internal/models"
	"callguard/internal/providers"
	"fmt"
	"time"
)

const (
	ChannelID = "jinsang_warning"

	PriorityHigh = "high"
)

// VibrationPattern alternates off/on durations in milliseconds.
var VibrationPattern = []int64{0, 500, 200, 500}

// Notification is one system notification request.
type Notification struct {
	ID         int64   `json:"id"`
	ChannelID  string  `json:"channel_id"`
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Priority   string  `json:"priority"`
	AutoCancel bool    `json:"auto_cancel"`
	Vibration  []int64 `json:"vibration"`
}

// Sink posts notifications to the platform.
type Sink interface {
	Notify(n Notification) error
}

type NotifierInterface interface {
	Warn(outcome models.Flagged, maskedNumber string)
}

type Notifier struct {
	sink   Sink
	logger providers.Logger
	now    func() time.Time
}

func NewNotifier(sink Sink, logger providers.Logger) NotifierInterface {
	return &Notifier{sink: sink, logger: logger, now: time.Now}
}

// Build renders the warning for a flagged outcome. IDs come from the wall
// clock so consecutive warnings do not replace each other.
func Build(outcome models.Flagged, maskedNumber string, now time.Time) Notification {
	return Notification{
		ID:         now.UnixMilli(),
		ChannelID:  ChannelID,
		Title:      fmt.Sprintf("🚨 진상 감지 — %s", maskedNumber),
		Text:       fmt.Sprintf("%d개 업소 주의: %s", models.TotalCount(outcome.Records), models.TagSummary(outcome.Records)),
		Priority:   PriorityHigh,
		AutoCancel: true,
		Vibration:  append([]int64(nil), VibrationPattern...),
	}
}

// Warn posts the warning. Sink failures are logged and never propagate.
func (n *Notifier) Warn(outcome models.Flagged, maskedNumber string) {
	note := Build(outcome, maskedNumber, n.now())
	if err := n.sink.Notify(note); err != nil {
		n.logger.Warnf(providers.TypeOverlay, "notification %d not posted: %s", note.ID, err)
		return
	}
	n.logger.Debugf(providers.TypeOverlay, "notification %d posted on %s", note.ID, note.ChannelID)
}

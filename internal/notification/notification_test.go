package notification

import (
	"callguard/internal/models"
	"callguard/internal/testutil"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	sent []Notification
	err  error
}

func (s *recordingSink) Notify(n Notification) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

var flagged = models.Flagged{Records: []models.ReputationRecord{
	{Tag: "noshow", Count: 3},
	{Tag: "abusive", Count: 1},
}}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	n := Build(flagged, "*******5678", now)

	assert.Equal(t, now.UnixMilli(), n.ID)
	assert.Equal(t, "jinsang_warning", n.ChannelID)
	assert.Equal(t, "🚨 진상 감지 — *******5678", n.Title)
	assert.Equal(t, "4개 업소 주의: noshow 3건, abusive 1건", n.Text)
	assert.Equal(t, PriorityHigh, n.Priority)
	assert.True(t, n.AutoCancel)
	assert.Equal(t, []int64{0, 500, 200, 500}, n.Vibration)
}

func TestBuild_VibrationIsCopied(t *testing.T) {
	n := Build(flagged, "x", time.Now())
	n.Vibration[0] = 99
	assert.Equal(t, int64(0), VibrationPattern[0])
}

func TestNotifier_Warn(t *testing.T) {
	sink := &recordingSink{}
	logger := &testutil.MockLogger{}
	n := NewNotifier(sink, logger).(*Notifier)
	n.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	n.Warn(flagged, "*******5678")

	require.Len(t, sink.sent, 1)
	assert.Equal(t, int64(1_700_000_000_000), sink.sent[0].ID)
	assert.True(t, logger.Contains("debug", "posted"))
}

func TestNotifier_SinkFailureIsLogged(t *testing.T) {
	sink := &recordingSink{err: errors.New("notifications disabled")}
	logger := &testutil.MockLogger{}

	assert.NotPanics(t, func() { NewNotifier(sink, logger).Warn(flagged, "x") })
	assert.True(t, logger.Contains("warn", "notifications disabled"))
}

// Package bridge holds the daemon's implementations of the render, notify
// and host hand-off collaborators. They log what a device bridge would draw.
package bridge

import (
	"callguard/internal/notification"
	"callguard/internal/presenter"
	"callguard/internal/providers"
	"callguard/internal/structures"
	"strings"
	"sync"
)

// LogSurface records visible overlays and logs their content.
type LogSurface struct {
	mu        sync.Mutex
	permitted bool
	visible   map[uint64]presenter.OverlayView
	logger    providers.Logger
}

func NewLogSurface(conf *structures.Config, logger providers.Logger) *LogSurface {
	return &LogSurface{
		permitted: conf.Overlay.PermissionGranted,
		visible:   make(map[uint64]presenter.OverlayView),
		logger:    logger,
	}
}

func (s *LogSurface) Show(view presenter.OverlayView) error {
	if !s.permitted {
		return presenter.ErrPermissionUnavailable
	}
	s.mu.Lock()
	s.visible[view.ID] = view
	s.mu.Unlock()

	s.logger.Infof(providers.TypeOverlay, "[%d] %s %s | %s", view.ID, view.Content.Title, view.Content.Number, strings.Join(view.Content.Lines, " | "))
	return nil
}

func (s *LogSurface) Remove(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visible[id]; !ok {
		return presenter.ErrSurfaceGone
	}
	delete(s.visible, id)
	return nil
}

// Visible returns the views currently drawn.
func (s *LogSurface) Visible() []presenter.OverlayView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]presenter.OverlayView, 0, len(s.visible))
	for _, v := range s.visible {
		out = append(out, v)
	}
	return out
}

// LogNotifier is a notification.Sink that logs each notification.
type LogNotifier struct {
	logger providers.Logger
}

func NewLogNotifier(logger providers.Logger) notification.Sink {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(note notification.Notification) error {
	n.logger.Infof(providers.TypeOverlay, "notify %s #%d: %s / %s", note.ChannelID, note.ID, note.Title, note.Text)
	return nil
}

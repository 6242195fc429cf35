package controllers

import (
	"callguard/internal/bridge"
	"callguard/internal/models"
	"callguard/internal/presenter"
	"context"
)

// --- local mocks (scoped to controller tests) ---

type mockScreener struct {
	events []models.CallEvent
}

func (m *mockScreener) Screen(event models.CallEvent) models.CallDecision {
	m.events = append(m.events, event)
	return models.PassThrough()
}

func (m *mockScreener) Shutdown(_ context.Context) error { return nil }

type dismissCall struct {
	id     uint64
	byID   bool
	reason presenter.Reason
}

type mockPresenter struct {
	state    presenter.OverlayState
	active   bool
	dismissals []dismissCall
}

func (m *mockPresenter) Present(_ models.Outcome, _ string) (presenter.OverlayState, bool) {
	return m.state, m.active
}

func (m *mockPresenter) Dismiss(reason presenter.Reason) bool {
	m.dismissals = append(m.dismissals, dismissCall{reason: reason})
	return m.active
}

func (m *mockPresenter) DismissOverlay(id uint64, reason presenter.Reason) bool {
	m.dismissals = append(m.dismissals, dismissCall{id: id, byID: true, reason: reason})
	return m.active && id == m.state.ID
}

func (m *mockPresenter) Active() (presenter.OverlayState, bool) { return m.state, m.active }

func (m *mockPresenter) MaskChar() rune { return presenter.DefaultMaskChar }

type mockHandoffs struct {
	intents []bridge.Intent
}

func (m *mockHandoffs) Recent() []bridge.Intent { return m.intents }

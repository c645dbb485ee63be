// Package states implements the app's views and the transitions between them.
package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Action is a navigation intent decoded from input.
type Action int

const (
	ActionNone Action = iota
	// ActionNavigate leaves the hero for the content view.
	ActionNavigate
	// ActionBack returns from the content view to the hero.
	ActionBack
)

// State represents a view (hero, content).
type State interface {
	// Name labels the state in logs and screenshots.
	Name() string

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleAction processes a navigation action.
	HandleAction(a Action) error
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		from := "none"
		if m.current != nil {
			from = m.current.Name()
		}
		m.current = m.next
		m.next = nil
		logger.Info("state change", zap.String("from", from), zap.String("to", m.current.Name()))
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleAction forwards a to the current state.
func (m *Manager) HandleAction(a Action) error {
	if m.current != nil && a != ActionNone {
		return m.current.HandleAction(a)
	}
	return nil
}

// Close exits the current state, if any.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	cur := m.current
	m.current = nil
	return cur.Exit()
}

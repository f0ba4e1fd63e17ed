package state

import (
	"errors"
	"fmt"

	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

var ErrEmptyStack = errors.New("state: empty stack")

// State is one screen of the game. States receive their Manager at
// construction and may replace themselves from Update.
type State interface {
	Update(dt float64) error
	Render(batch render.Batch)
	Dispose()
	Name() string
}

// Manager is a stack of states. Only the top state is updated and drawn.
type Manager struct {
	states   []State
	session  *Session
	releaser render.Releaser
}

// NewManager returns an empty manager. releaser frees the backend resources
// of textures owned by disposed states.
func NewManager(session *Session, releaser render.Releaser) *Manager {
	if session == nil {
		session = &Session{}
	}
	return &Manager{session: session, releaser: releaser}
}

func (m *Manager) Session() *Session {
	return m.session
}

func (m *Manager) Releaser() render.Releaser {
	return m.releaser
}

func (m *Manager) Push(s State) {
	if s == nil {
		return
	}
	m.states = append(m.states, s)
}

// Pop disposes and removes the top state.
func (m *Manager) Pop() {
	if len(m.states) == 0 {
		return
	}
	top := m.states[len(m.states)-1]
	m.states[len(m.states)-1] = nil
	m.states = m.states[:len(m.states)-1]
	top.Dispose()
}

// Set replaces the top state with s.
func (m *Manager) Set(s State) {
	m.Pop()
	m.Push(s)
}

func (m *Manager) Current() State {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[len(m.states)-1]
}

func (m *Manager) Len() int {
	return len(m.states)
}

func (m *Manager) Update(dt float64) error {
	top := m.Current()
	if top == nil {
		return ErrEmptyStack
	}
	if err := top.Update(dt); err != nil {
		return fmt.Errorf("state: update %s: %w", top.Name(), err)
	}
	return nil
}

func (m *Manager) Render(batch render.Batch) {
	if top := m.Current(); top != nil && batch != nil {
		top.Render(batch)
	}
}

// Restart replaces the top state with a fresh play session.
func (m *Manager) Restart() error {
	next, err := NewPlayState(m)
	if err != nil {
		return err
	}
	m.Set(next)
	return nil
}

// Dispose disposes every state, top first.
func (m *Manager) Dispose() {
	for len(m.states) > 0 {
		m.Pop()
	}
}

// Reload rereads the prefabs and restarts play with them. On error the
// current spec and state are kept.
func (m *Manager) Reload() error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	m.session.SetSpec(spec)
	return m.Restart()
}

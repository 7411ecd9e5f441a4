package theme

import (
	"fmt"
	"strings"
	"sync"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Toggle returns the opposite theme. Anything that is not Dark toggles to
// Dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Source is a host-provided color scheme preference. Presentation code
// reads Current and may Subscribe to changes; the pricing core never does.
type Source interface {
	Current() Theme
	Subscribe(fn func(Theme)) (unsubscribe func())
}

// Preference is a Source whose value is pushed in by the host through Set.
type Preference struct {
	mu      sync.Mutex
	current Theme
	nextID  int
	subs    map[int]func(Theme)
}

func NewPreference(initial Theme) *Preference {
	if initial != Dark {
		initial = Light
	}
	return &Preference{
		current: initial,
		subs:    make(map[int]func(Theme)),
	}
}

func (p *Preference) Current() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Set records a new preference and notifies subscribers synchronously when
// it differs from the current one.
func (p *Preference) Set(t Theme) {
	p.mu.Lock()
	if t == p.current {
		p.mu.Unlock()
		return
	}
	p.current = t
	subs := make([]func(Theme), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}

func (p *Preference) Subscribe(fn func(Theme)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// FromEnvironment guesses the terminal preference from COLORFGBG
// ("fg;bg"), where a background of 0-6 or 8 is dark.
func FromEnvironment(colorfgbg string) Theme {
	parts := strings.Split(colorfgbg, ";")
	switch parts[len(parts)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return Dark
	}
	return Light
}

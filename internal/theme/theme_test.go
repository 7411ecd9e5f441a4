package theme

import "testing"

func TestToggle(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Error("toggle does not flip between light and dark")
	}
}

func TestParse(t *testing.T) {
	if got, err := Parse(" Dark "); err != nil || got != Dark {
		t.Errorf("Parse(Dark) = %q, %v", got, err)
	}
	if _, err := Parse("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestPreference_Subscribe(t *testing.T) {
	p := NewPreference(Light)

	var got []Theme
	unsubscribe := p.Subscribe(func(th Theme) { got = append(got, th) })

	p.Set(Dark)
	p.Set(Dark)
	p.Set(Light)
	unsubscribe()
	p.Set(Dark)

	if len(got) != 2 || got[0] != Dark || got[1] != Light {
		t.Errorf("notifications = %v, want [dark light]", got)
	}
	if p.Current() != Dark {
		t.Errorf("current = %s, want dark", p.Current())
	}
}

func TestFromEnvironment(t *testing.T) {
	tests := map[string]Theme{
		"15;0":         Dark,
		"0;15":         Light,
		"":             Light,
		"7;8":          Dark,
		"15;default;0": Dark,
	}
	for in, want := range tests {
		if got := FromEnvironment(in); got != want {
			t.Errorf("FromEnvironment(%q) = %s, want %s", in, got, want)
		}
	}
}

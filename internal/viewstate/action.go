package viewstate

import (
	"fmt"
	"strings"

	"pricing-bot/internal/pricing"
)

type ActionKind string

const (
	ActionSelectProduct ActionKind = "product"
	ActionChooseBracket ActionKind = "bracket"
	ActionSubmit        ActionKind = "submit"
	ActionBack          ActionKind = "back"
	ActionEditBracket   ActionKind = "edit"
	ActionSwitchTab     ActionKind = "tab"
)

// Action is a discrete user action. Product is set for select/tab, Bracket
// for choose.
type Action struct {
	Kind    ActionKind
	Product pricing.Product
	Bracket pricing.RevenueBracket
}

func SelectProduct(p pricing.Product) Action { return Action{Kind: ActionSelectProduct, Product: p} }

func ChooseBracket(b pricing.RevenueBracket) Action {
	return Action{Kind: ActionChooseBracket, Bracket: b}
}

func SwitchTab(p pricing.Product) Action { return Action{Kind: ActionSwitchTab, Product: p} }

var (
	Submit      = Action{Kind: ActionSubmit}
	Back        = Action{Kind: ActionBack}
	EditBracket = Action{Kind: ActionEditBracket}
)

// String encodes the action as "kind" or "kind:arg", the format carried in
// callback data.
func (a Action) String() string {
	switch a.Kind {
	case ActionSelectProduct, ActionSwitchTab:
		return string(a.Kind) + ":" + a.Product.String()
	case ActionChooseBracket:
		return string(a.Kind) + ":" + a.Bracket.String()
	default:
		return string(a.Kind)
	}
}

func ParseAction(data string) (Action, error) {
	const operation = "viewstate.ParseAction"

	kind, arg, hasArg := strings.Cut(data, ":")
	a := Action{Kind: ActionKind(kind)}

	switch a.Kind {
	case ActionSelectProduct, ActionSwitchTab:
		if !hasArg {
			return Action{}, fmt.Errorf("%s: %q: missing product", operation, data)
		}
		p, err := pricing.ParseProduct(arg)
		if err != nil {
			return Action{}, fmt.Errorf("%s: %w", operation, err)
		}
		a.Product = p
	case ActionChooseBracket:
		if !hasArg {
			return Action{}, fmt.Errorf("%s: %q: missing bracket", operation, data)
		}
		b, err := pricing.ParseBracket(arg)
		if err != nil {
			return Action{}, fmt.Errorf("%s: %w", operation, err)
		}
		a.Bracket = b
	case ActionSubmit, ActionBack, ActionEditBracket:
		if hasArg {
			return Action{}, fmt.Errorf("%s: %q: unexpected argument", operation, data)
		}
	default:
		return Action{}, fmt.Errorf("%s: unknown action %q", operation, data)
	}
	return a, nil
}

// Apply runs the transition named by a.
func (c *Controller) Apply(a Action) error {
	switch a.Kind {
	case ActionSelectProduct:
		return c.SelectProduct(a.Product)
	case ActionChooseBracket:
		return c.ChooseBracket(a.Bracket)
	case ActionSubmit:
		return c.Submit()
	case ActionBack:
		return c.Back()
	case ActionEditBracket:
		return c.EditBracket()
	case ActionSwitchTab:
		return c.SwitchTab(a.Product)
	default:
		return fmt.Errorf("action %q: %w", a.Kind, ErrIllegalTransition)
	}
}

package viewstate

import (
	"errors"
	"fmt"

	"pricing-bot/internal/pricing"
)

// View is the screen currently shown.
type View string

const (
	ViewSelection View = "selection"
	ViewInput     View = "input"
	ViewPricing   View = "pricing"
)

func (v View) Valid() bool {
	switch v {
	case ViewSelection, ViewInput, ViewPricing:
		return true
	}
	return false
}

var ErrIllegalTransition = errors.New("illegal view transition")

// State is the serializable session state owned by a Controller.
type State struct {
	View    View                   `json:"view"`
	Product pricing.Product        `json:"product"`
	Bracket pricing.RevenueBracket `json:"bracket"`
}

// Validate checks the enums and that the pricing view has a product.
func (s State) Validate() error {
	if !s.View.Valid() {
		return fmt.Errorf("view %q: %w", s.View, pricing.ErrContractViolation)
	}
	if !s.Product.Valid() {
		return fmt.Errorf("product %s: %w", s.Product, pricing.ErrContractViolation)
	}
	if err := pricing.CheckBracket(s.Bracket); err != nil {
		return err
	}
	if s.View == ViewPricing && s.Product == pricing.ProductNone {
		return fmt.Errorf("pricing view without product: %w", pricing.ErrContractViolation)
	}
	return nil
}

// Controller is the only writer of the view state. Transition methods
// return ErrIllegalTransition and leave the state untouched when the move
// is not allowed from the current view.
type Controller struct {
	state State
}

// New returns a controller on the selection screen with the lowest bracket
// preselected.
func New() *Controller {
	return &Controller{state: State{
		View:    ViewSelection,
		Product: pricing.ProductNone,
		Bracket: pricing.BracketLow,
	}}
}

// Restore rebuilds a controller from a stored snapshot.
func Restore(s State) (*Controller, error) {
	const operation = "viewstate.Restore"

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return &Controller{state: s}, nil
}

func (c *Controller) State() State { return c.state }

func (c *Controller) View() View { return c.state.View }

func (c *Controller) ActiveProduct() pricing.Product { return c.state.Product }

func (c *Controller) Bracket() pricing.RevenueBracket { return c.state.Bracket }

func (c *Controller) SelectProduct(p pricing.Product) error {
	if err := c.require("select product", ViewSelection); err != nil {
		return err
	}
	if err := requireProduct(p); err != nil {
		return err
	}
	c.state.Product = p
	c.state.View = ViewInput
	return nil
}

// ChooseBracket changes the held bracket without leaving the input screen.
func (c *Controller) ChooseBracket(b pricing.RevenueBracket) error {
	if err := c.require("choose bracket", ViewInput); err != nil {
		return err
	}
	if err := pricing.CheckBracket(b); err != nil {
		return err
	}
	c.state.Bracket = b
	return nil
}

func (c *Controller) Submit() error {
	if err := c.require("submit", ViewInput); err != nil {
		return err
	}
	if c.state.Product == pricing.ProductNone {
		return fmt.Errorf("submit without product: %w", ErrIllegalTransition)
	}
	c.state.View = ViewPricing
	return nil
}

// EditBracket returns to the input screen keeping the active product.
func (c *Controller) EditBracket() error {
	if err := c.require("edit bracket", ViewPricing); err != nil {
		return err
	}
	c.state.View = ViewInput
	return nil
}

// Back returns to product selection. The bracket is kept.
func (c *Controller) Back() error {
	if err := c.require("back", ViewInput); err != nil {
		return err
	}
	c.state.Product = pricing.ProductNone
	c.state.View = ViewSelection
	return nil
}

func (c *Controller) SwitchTab(p pricing.Product) error {
	if err := c.require("switch tab", ViewPricing); err != nil {
		return err
	}
	if err := requireProduct(p); err != nil {
		return err
	}
	c.state.Product = p
	return nil
}

func (c *Controller) require(action string, want View) error {
	if c.state.View != want {
		return fmt.Errorf("%s from %s: %w", action, c.state.View, ErrIllegalTransition)
	}
	return nil
}

func requireProduct(p pricing.Product) error {
	if p != pricing.ProductCasino && p != pricing.ProductSportsbook {
		return fmt.Errorf("product %s: %w", p, pricing.ErrContractViolation)
	}
	return nil
}

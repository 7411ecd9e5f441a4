package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pricing-bot/internal/pricing"
	"pricing-bot/internal/render"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

var (
	showBracket string
	showLayout  string
	showTheme   string
	showNoColor bool
)

var showCmd = &cobra.Command{
	Use:       "show [casino|sportsbook]",
	Short:     "Print the pricing table for a revenue bracket",
	Long:      `Print pricing for one product, or both when none is given.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"casino", "sportsbook"},
	RunE:      runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showBracket, "bracket", "b", "0-1M", "expected monthly GGR: 0-1M, 1-3M or 3M+")
	showCmd.Flags().StringVarP(&showLayout, "layout", "l", string(render.LayoutTable), "table or cards")
	showCmd.Flags().StringVar(&showTheme, "theme", "", "light or dark (default: guessed from the terminal)")
	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "disable terminal colors")
}

func runShow(cmd *cobra.Command, args []string) error {
	bracket, err := pricing.ParseBracket(showBracket)
	if err != nil {
		return err
	}
	layout, err := render.ParseLayout(showLayout)
	if err != nil {
		return err
	}
	t := theme.FromEnvironment(os.Getenv("COLORFGBG"))
	if showTheme != "" {
		if t, err = theme.Parse(showTheme); err != nil {
			return err
		}
	}

	products := []pricing.Product{pricing.ProductCasino, pricing.ProductSportsbook}
	if len(args) == 1 {
		p, err := pricing.ParseProduct(args[0])
		if err != nil {
			return err
		}
		products = []pricing.Product{p}
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	screens, err := pricingScreens(cat, bracket, products, render.Options{Layout: layout, Theme: t})
	if err != nil {
		return err
	}
	if !showNoColor {
		for i := range screens {
			screens[i] = render.Colorize(screens[i], t)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(screens, "\n\n"))
	return nil
}

// pricingScreens walks the controller through the same steps as a chat
// user (select, choose, submit, then switch tabs) and renders each
// pricing screen.
func pricingScreens(cat *pricing.Catalog, b pricing.RevenueBracket, products []pricing.Product, opts render.Options) ([]string, error) {
	c := viewstate.New()
	if err := c.SelectProduct(products[0]); err != nil {
		return nil, err
	}
	if err := c.ChooseBracket(b); err != nil {
		return nil, err
	}
	if err := c.Submit(); err != nil {
		return nil, err
	}

	screens := make([]string, 0, len(products))
	for i, p := range products {
		if i > 0 {
			if err := c.SwitchTab(p); err != nil {
				return nil, err
			}
		}
		vm, err := viewstate.Derive(c.State(), cat)
		if err != nil {
			return nil, err
		}
		screens = append(screens, render.Screen(vm, opts))
	}
	return screens, nil
}

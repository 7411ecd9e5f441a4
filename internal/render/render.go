package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/tabwriter"

	"pricing-bot/internal/pricing"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

const Title = "IQ Play Platform Pricing"

// Layout picks between the wide table and the narrow per-product cards.
type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutTable:
		return LayoutTable, nil
	case LayoutCards:
		return LayoutCards, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

func (l Layout) Toggle() Layout {
	if l == LayoutCards {
		return LayoutTable
	}
	return LayoutCards
}

// Options control how a view model is turned into text. HTML output is
// escaped and wraps tables in <pre> for Telegram.
type Options struct {
	Layout Layout
	Theme  theme.Theme
	HTML   bool
}

// Screen renders the whole screen for vm.
func Screen(vm viewstate.ViewModel, opts Options) string {
	p := PaletteFor(opts.Theme)
	w := &writer{html: opts.HTML}

	w.bold(p.Icon + " " + Title)
	w.line("")

	switch vm.View {
	case viewstate.ViewSelection:
		selection(w)
	case viewstate.ViewInput:
		input(w, vm, p)
	case viewstate.ViewPricing:
		pricingScreen(w, vm, opts, p)
	}
	return strings.TrimRight(w.String(), "\n")
}

func selection(w *writer) {
	w.line("🎰 " + w.strong("Casino"))
	w.line("Explore our competitive casino game pricing")
	w.line("")
	w.line("⚽ " + w.strong("Sportsbook"))
	w.line("View our sportsbook platform pricing")
}

func input(w *writer, vm viewstate.ViewModel, p Palette) {
	w.line("Expected Monthly GGR (Gross Gaming Revenue)")
	w.line("")
	for _, o := range vm.Options {
		marker := p.Unselected
		if o.Selected {
			marker = p.Selected
		}
		w.line(marker + " " + w.esc(o.Label))
	}
}

func pricingScreen(w *writer, vm viewstate.ViewModel, opts Options, p Palette) {
	w.line(w.esc("Monthly GGR: " + vm.BracketLabel))

	tabs := make([]string, 0, 2)
	for _, prod := range []pricing.Product{pricing.ProductCasino, pricing.ProductSportsbook} {
		if prod == vm.ActiveProduct {
			tabs = append(tabs, "["+prod.Title()+"]")
		} else {
			tabs = append(tabs, prod.Title())
		}
	}
	w.line(strings.Join(tabs, "  "))
	w.line("")

	switch vm.ActiveProduct {
	case pricing.ProductCasino:
		if opts.Layout == LayoutCards {
			casinoCards(w, vm.Casino, p)
			return
		}
		rows := make([][]string, 0, len(vm.Casino))
		for _, r := range vm.Casino {
			row := make([]string, len(r.Cells))
			for i, c := range r.Cells {
				row[i] = c.Text
			}
			rows = append(rows, row)
		}
		w.pre(Table(vm.CasinoHeaders, rows, p))
	case pricing.ProductSportsbook:
		if opts.Layout == LayoutCards {
			sportsbookCards(w, vm.Sportsbook, p)
			return
		}
		rows := make([][]string, 0, len(vm.Sportsbook))
		for _, r := range vm.Sportsbook {
			rows = append(rows, []string{r.Product, r.RevShare})
		}
		w.pre(Table(vm.SportsbookHeaders, rows, p))
	}
}

func casinoCards(w *writer, rows []pricing.CasinoDisplayRow, p Palette) {
	for i, r := range rows {
		w.line(p.stripe(i) + " " + w.strong(r.Product))
		for _, c := range r.CardCells() {
			w.line("   " + w.esc(c.Header) + ": " + w.esc(c.Text))
		}
		w.line("")
	}
}

func sportsbookCards(w *writer, rows []pricing.SportsbookDisplayRow, p Palette) {
	for i, r := range rows {
		w.line(p.stripe(i) + " " + w.strong(r.Product))
		w.line("   Rev Share: " + w.esc(r.RevShare))
		w.line("")
	}
}

// Table lays out headers and rows in aligned columns. Even rows carry the
// palette's stripe rune in the left gutter.
func Table(headers []string, rows [][]string, p Palette) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "  "+strings.Join(headers, "\t")+"\t")
	for i, row := range rows {
		gutter := " "
		if i%2 == 0 {
			gutter = p.TableStripe
		}
		fmt.Fprintln(tw, gutter+" "+strings.Join(row, "\t")+"\t")
	}
	_ = tw.Flush()

	return strings.TrimRight(buf.String(), "\n")
}

type writer struct {
	buf  strings.Builder
	html bool
}

func (w *writer) String() string { return w.buf.String() }

func (w *writer) line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *writer) esc(s string) string {
	if w.html {
		return html.EscapeString(s)
	}
	return s
}

func (w *writer) strong(s string) string {
	if w.html {
		return "<b>" + html.EscapeString(s) + "</b>"
	}
	return s
}

func (w *writer) bold(s string) {
	if w.html {
		w.line(w.strong(s))
		return
	}
	w.line(strings.ToUpper(s))
}

func (w *writer) pre(s string) {
	if w.html {
		w.line("<pre>" + html.EscapeString(s) + "</pre>")
		return
	}
	w.line(s)
}

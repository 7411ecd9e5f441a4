package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pricing-bot/internal/pricing"
	"pricing-bot/internal/render"
	"pricing-bot/internal/theme"
	"pricing-bot/internal/viewstate"
)

// Callback data for buttons that change presentation only and never reach
// the view state controller.
const (
	dataToggleTheme  = "ui:theme"
	dataToggleLayout = "ui:layout"
	dataExport       = "ui:export"
)

func keyboardFor(vm viewstate.ViewModel, t theme.Theme, l render.Layout) tgbotapi.InlineKeyboardMarkup {
	switch vm.View {
	case viewstate.ViewInput:
		return inputKeyboard(vm, t)
	case viewstate.ViewPricing:
		return pricingKeyboard(vm, t, l)
	default:
		return selectionKeyboard(t)
	}
}

func selectionKeyboard(t theme.Theme) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎰 Casino", viewstate.SelectProduct(pricing.ProductCasino).String()),
			tgbotapi.NewInlineKeyboardButtonData("⚽ Sportsbook", viewstate.SelectProduct(pricing.ProductSportsbook).String()),
		),
		tgbotapi.NewInlineKeyboardRow(themeButton(t)),
	)
}

func inputKeyboard(vm viewstate.ViewModel, t theme.Theme) tgbotapi.InlineKeyboardMarkup {
	p := render.PaletteFor(t)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(vm.Options)+1)
	for _, o := range vm.Options {
		marker := p.Unselected
		if o.Selected {
			marker = p.Selected
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(marker+" "+o.Label, viewstate.ChooseBracket(o.Bracket).String()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", viewstate.Back.String()),
		tgbotapi.NewInlineKeyboardButtonData("View Pricing ➡️", viewstate.Submit.String()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func pricingKeyboard(vm viewstate.ViewModel, t theme.Theme, l render.Layout) tgbotapi.InlineKeyboardMarkup {
	tabs := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, prod := range []pricing.Product{pricing.ProductCasino, pricing.ProductSportsbook} {
		label := prod.Title()
		if prod == vm.ActiveProduct {
			label = "✅ " + label
		}
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(label, viewstate.SwitchTab(prod).String()))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tabs,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit", viewstate.EditBracket.String()),
			layoutButton(l),
		),
		tgbotapi.NewInlineKeyboardRow(
			themeButton(t),
			tgbotapi.NewInlineKeyboardButtonData("📊 Export", dataExport),
		),
	)
}

// themeButton offers the theme the chat would switch to.
func themeButton(t theme.Theme) tgbotapi.InlineKeyboardButton {
	next := t.Toggle()
	label := "Light theme"
	if next == theme.Dark {
		label = "Dark theme"
	}
	return tgbotapi.NewInlineKeyboardButtonData(render.PaletteFor(next).Icon+" "+label, dataToggleTheme)
}

func layoutButton(l render.Layout) tgbotapi.InlineKeyboardButton {
	if l == render.LayoutCards {
		return tgbotapi.NewInlineKeyboardButtonData("📋 Table", dataToggleLayout)
	}
	return tgbotapi.NewInlineKeyboardButtonData("🗂 Cards", dataToggleLayout)
}

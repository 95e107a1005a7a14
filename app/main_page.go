package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/searchfield/component/search"
	uisearch "github.com/xhd2015/searchfield/ui/search"
)

// rows taken by the header, field, status bar and hint
const reservedRows = 9

func MainPage(state *State, window *dom.Window) *dom.Node {
	items := uisearch.FilterItemsQuery(state.Items, state.Query)

	maxItems := len(items)
	if window != nil && window.Height > 0 {
		maxItems = window.Height - reservedRows
		if maxItems < 3 {
			maxItems = 3
		}
	}
	shown := items
	if len(shown) > maxItems {
		shown = shown[:maxItems]
	}

	children := make([]*dom.Node, 0, len(shown)+1)
	for _, item := range shown {
		if len(item.MatchTexts) == 0 {
			children = append(children, dom.Text("• "+item.Text))
			continue
		}
		parts := []*dom.Node{dom.Text("• ")}
		for _, m := range item.MatchTexts {
			color := ""
			if m.Match {
				color = colors.GREEN_SUCCESS
			}
			parts = append(parts, dom.Text(m.Text, styles.Style{
				Bold:  m.Match,
				Color: color,
			}))
		}
		children = append(children, dom.Div(dom.DivProps{}, parts...))
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		children = append(children, dom.Text(fmt.Sprintf("... %d more", hidden), styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}

	return dom.Fragment(
		search.SearchField(search.Props{
			Placeholder: state.Placeholder,
			Error:       &state.ExternalError,
			Ref:         bindRef(state),
			State:       &state.Search,
			OnSearch:    state.Submit,
		}),
		func() *dom.Node {
			if state.Query != "" && len(items) == 0 {
				return dom.Text("no match for "+state.Query, styles.Style{
					Color: colors.GREY_TEXT,
				})
			}
			return nil
		}(),
		dom.Ul(dom.DivProps{}, children...),
	)
}

package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	nodes = append(nodes, dom.Text(fmt.Sprintf(" %d items", len(state.Items)), styles.Style{
		Color: colors.GREY_TEXT,
	}))
	if state.Query != "" {
		nodes = append(nodes, dom.Text("  query: "+state.Query, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.ExternalError {
		nodes = append(nodes, dom.Text("  error flag on", styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}
	if state.StatusBar.Message != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Message, styles.Style{
			Color: colors.GREEN_SUCCESS,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}

	return dom.Div(dom.DivProps{}, nodes...)
}

package search

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/searchfield/models"
)

var matchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

func FilterItems(items []string, fn func(item *models.ItemView) bool) []*models.ItemView {
	filtered := make([]*models.ItemView, 0, len(items))
	for _, text := range items {
		item := &models.ItemView{Text: text}
		if fn == nil || fn(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterItemsQuery keeps the items containing query, case-insensitively,
// and splits each kept item into matched and unmatched segments.
// An empty query keeps everything.
func FilterItemsQuery(items []string, query string) []*models.ItemView {
	if query == "" {
		return FilterItems(items, nil)
	}
	query = strings.ToLower(query)

	return FilterItems(items, func(item *models.ItemView) bool {
		item.MatchTexts = splitMatch(item.Text, query)
		return item.MatchTexts != nil
	})
}

func splitMatch(text string, lowerQuery string) []models.MatchText {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, lowerQuery)
	if idx < 0 {
		return nil
	}
	// lowering can change byte lengths; fall back to a whole-item match
	if len(lower) != len(text) {
		return []models.MatchText{{Text: text, Match: true}}
	}
	end := idx + len(lowerQuery)
	return []models.MatchText{
		{Text: text[:idx]},
		{Text: text[idx:end], Match: true},
		{Text: text[end:]},
	}
}

// RenderItem renders an item as a plain string, matched segments
// highlighted.
func RenderItem(item *models.ItemView) string {
	if len(item.MatchTexts) == 0 {
		return "• " + item.Text
	}
	var b strings.Builder
	b.WriteString("• ")
	for _, m := range item.MatchTexts {
		if m.Match {
			b.WriteString(matchStyle.Render(m.Text))
		} else {
			b.WriteString(m.Text)
		}
	}
	return b.String()
}

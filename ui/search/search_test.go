package search

import (
	"strings"
	"testing"

	"github.com/xhd2015/searchfield/models"
)

var testItems = []string{
	"Persian cats",
	"Siamese",
	"CATS musical",
	"dogs",
}

func TestFilterItemsQuery(t *testing.T) {
	filtered := FilterItemsQuery(testItems, "cats")
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 items for 'cats', got %d", len(filtered))
	}
	if filtered[0].Text != "Persian cats" {
		t.Errorf("Expected 'Persian cats', got '%s'", filtered[0].Text)
	}
	if filtered[1].Text != "CATS musical" {
		t.Errorf("Expected 'CATS musical', got '%s'", filtered[1].Text)
	}

	match := filtered[1].MatchTexts
	if len(match) != 3 {
		t.Fatalf("Expected 3 match segments, got %d", len(match))
	}
	if match[0].Text != "" || match[1].Text != "CATS" || !match[1].Match || match[2].Text != " musical" {
		t.Errorf("Unexpected segments: %+v", match)
	}
}

func TestFilterItemsQuery_Empty(t *testing.T) {
	filtered := FilterItemsQuery(testItems, "")
	if len(filtered) != len(testItems) {
		t.Errorf("Expected all %d items for empty query, got %d", len(testItems), len(filtered))
	}
	for _, item := range filtered {
		if item.MatchTexts != nil {
			t.Errorf("Expected no match segments for empty query, got %+v", item.MatchTexts)
		}
	}
}

func TestFilterItemsQuery_NoMatch(t *testing.T) {
	filtered := FilterItemsQuery(testItems, "parrot")
	if len(filtered) != 0 {
		t.Errorf("Expected no items, got %d", len(filtered))
	}
}

func TestRenderItem(t *testing.T) {
	plain := RenderItem(&models.ItemView{Text: "dogs"})
	if plain != "• dogs" {
		t.Errorf("Expected '• dogs', got %q", plain)
	}

	filtered := FilterItemsQuery(testItems, "sia")
	out := RenderItem(filtered[0])
	if !strings.HasPrefix(out, "• ") || !strings.Contains(out, "Sia") || !strings.HasSuffix(out, "mese") {
		t.Errorf("Unexpected render %q", out)
	}
}

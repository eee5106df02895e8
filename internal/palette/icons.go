package palette

import "github.com/Veraticus/spend/internal/model"

// Icon is a symbolic icon reference. Name identifies a vector icon for
// graphical surfaces; Glyph is the terminal rendering.
type Icon struct {
	Name  string
	Glyph string
}

var icons = map[model.Category]Icon{
	model.CategoryFood:          {Name: "utensils", Glyph: "🍴"},
	model.CategoryTransport:     {Name: "bus", Glyph: "🚌"},
	model.CategoryBills:         {Name: "file-text", Glyph: "🧾"},
	model.CategoryEntertainment: {Name: "film", Glyph: "🎬"},
	model.CategoryShopping:      {Name: "shopping-cart", Glyph: "🛒"},
	model.CategoryOther:         {Name: "layout-grid", Glyph: "📦"},
}

// IconOf returns the icon for a category, falling back to Other.
func IconOf(category model.Category) Icon {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return icons[model.CategoryOther]
}

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/model"
)

// Presentation metadata for category enums lives here, not on the domain
// types: the model stays free of visual attributes.

// CategoryMeta is the glyph and color used when rendering a category.
type CategoryMeta struct {
	Glyph string
	Color lipgloss.Color
}

var expenseCategoryMeta = map[model.ExpenseCategory]CategoryMeta{
	model.CategoryFood:          {"🍽", ColorOrange},
	model.CategoryTransport:     {"🚗", ColorBlue},
	model.CategoryEntertainment: {"🎬", ColorAccent},
	model.CategoryUtilities:     {"🏠", ColorYellow},
	model.CategoryHealthcare:    {"➕", ColorRed},
	model.CategoryShopping:      {"🛍", ColorAccent},
	model.CategoryEducation:     {"📚", ColorGreen},
	model.CategoryInvestment:    {"📈", ColorBlue},
	model.CategoryOther:         {"·", ColorTextMuted},
}

var taskCategoryMeta = map[model.TaskCategory]CategoryMeta{
	model.TaskFinancial: {"$", ColorYellow},
	model.TaskPersonal:  {"◉", ColorGreen},
	model.TaskWork:      {"💼", ColorBlue},
	model.TaskHealth:    {"♥", ColorRed},
	model.TaskLearning:  {"📚", ColorAccent},
	model.TaskHousehold: {"🏠", ColorOrange},
}

var priorityColor = map[model.TaskPriority]lipgloss.Color{
	model.PriorityLow:    ColorGreen,
	model.PriorityMedium: ColorYellow,
	model.PriorityHigh:   ColorOrange,
	model.PriorityUrgent: ColorRed,
}

// ExpenseCategoryMeta returns the presentation hints for an expense or
// bill category.
func ExpenseCategoryMeta(c model.ExpenseCategory) CategoryMeta {
	if m, ok := expenseCategoryMeta[c]; ok {
		return m
	}
	return CategoryMeta{Glyph: "·", Color: ColorTextMuted}
}

// TaskCategoryMeta returns the presentation hints for a task category.
func TaskCategoryMeta(c model.TaskCategory) CategoryMeta {
	if m, ok := taskCategoryMeta[c]; ok {
		return m
	}
	return CategoryMeta{Glyph: "·", Color: ColorTextMuted}
}

// PriorityLabel renders a priority label in its color.
func PriorityLabel(p model.TaskPriority) string {
	color, ok := priorityColor[p]
	if !ok {
		color = ColorTextMuted
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(p))
}

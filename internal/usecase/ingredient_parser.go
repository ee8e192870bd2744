package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/logger"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// IngredientParser turns recipe ingredient lines into list items
type IngredientParser struct {
	ignored         map[string]bool
	useAbbreviation bool
	log             *logger.Logger
}

// NewIngredientParser creates a parser. Ignored names are compared case-insensitively.
func NewIngredientParser(ignored []string, useAbbreviation bool, log *logger.Logger) *IngredientParser {
	set := make(map[string]bool, len(ignored))
	for _, name := range ignored {
		if name = normalize(name); name != "" {
			set[strings.ToLower(name)] = true
		}
	}

	return &IngredientParser{
		ignored:         set,
		useAbbreviation: useAbbreviation,
		log:             log.Component("ingredient_parser"),
	}
}

// Parse converts every usable ingredient of the recipe. Ingredients without
// a name or on the ignore list are skipped.
func (p *IngredientParser) Parse(recipe *domain.Recipe) []*domain.Ingredient {
	if recipe == nil {
		return nil
	}

	ingredients := make([]*domain.Ingredient, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		ingredient := p.parseLine(line, recipe.Settings.DisableAmount)
		if ingredient == nil {
			continue
		}
		if p.ignored[strings.ToLower(ingredient.Name)] {
			p.log.Debug().Str("ingredient", ingredient.Name).Msg("Ignoring ingredient")
			continue
		}
		ingredients = append(ingredients, ingredient)
	}

	p.log.Debug().
		Str("recipe", recipe.Name).
		Int("lines", len(recipe.Ingredients)).
		Int("ingredients", len(ingredients)).
		Msg("Parsed recipe")

	return ingredients
}

func (p *IngredientParser) parseLine(line domain.RecipeIngredient, amountsDisabled bool) *domain.Ingredient {
	// Without parsed amounts Mealie keeps the whole line in the note
	if amountsDisabled || line.DisableAmount || line.Food == nil || normalize(line.Food.Name) == "" {
		name := normalize(line.Note)
		if name == "" {
			return nil
		}
		return &domain.Ingredient{Name: name}
	}

	var spec []string
	if line.Quantity > 0 {
		spec = append(spec, formatQuantity(line.Quantity))
	}
	if unit := p.unitName(line.Unit); unit != "" {
		spec = append(spec, unit)
	}
	if note := normalize(line.Note); note != "" {
		spec = append(spec, note)
	}

	return &domain.Ingredient{
		Name:          normalize(line.Food.Name),
		Specification: strings.Join(spec, " "),
	}
}

func (p *IngredientParser) unitName(unit *domain.RecipeUnit) string {
	if unit == nil {
		return ""
	}
	if p.useAbbreviation {
		if abbr := normalize(unit.Abbreviation); abbr != "" {
			return abbr
		}
	}
	return normalize(unit.Name)
}

// formatQuantity drops trailing zeros: 2 -> "2", 0.5 -> "0.5"
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// normalize trims and collapses whitespace
func normalize(s string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
}

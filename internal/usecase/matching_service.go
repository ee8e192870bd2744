package usecase

import (
	"context"
	"sort"

	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/logger"
)

// DefaultMatchThreshold is the lowest score at which an ingredient is renamed
const DefaultMatchThreshold = 85

// perfectScore marks an exact match; the original name is then not kept
const perfectScore = 100

// MatchConfig holds configuration for the translator
type MatchConfig struct {
	Threshold int
}

// Translator rewrites free-text ingredient names to Bring's product names
type Translator struct {
	scorer    Scorer
	threshold int
	log       *logger.Logger
}

// NewTranslator creates a translator. A nil scorer uses WeightedRatio and a
// non-positive threshold uses DefaultMatchThreshold.
func NewTranslator(scorer Scorer, config MatchConfig, log *logger.Logger) *Translator {
	if scorer == nil {
		scorer = WeightedRatio{}
	}

	threshold := config.Threshold
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	return &Translator{
		scorer:    scorer,
		threshold: threshold,
		log:       log.Component("translator"),
	}
}

// TranslateItemNames matches every ingredient against the product names of
// the catalog's first locale and rewrites it in place:
//
//   - threshold <= score < 100: name replaced, original name prepended to the specification
//   - score == 100: name replaced, specification untouched
//   - score < threshold: ingredient untouched
//
// An empty catalog is not an error; nothing happens.
func (t *Translator) TranslateItemNames(ctx context.Context, catalog domain.ProductCatalog, ingredients []*domain.Ingredient) error {
	t.log.Debug().Int("ingredients", len(ingredients)).Msg("Translating item names")

	candidates := productNames(catalog)
	if len(candidates) == 0 {
		return nil
	}

	for _, ingredient := range ingredients {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if ingredient == nil {
			continue
		}
		t.translate(ingredient, candidates)
	}

	return nil
}

func (t *Translator) translate(ingredient *domain.Ingredient, candidates []string) {
	original := ingredient.Name

	match, score, ok := t.scorer.ExtractOne(original, candidates)
	if !ok || score < t.threshold {
		t.log.Debug().
			Str("ingredient", original).
			Str("best", match).
			Int("score", score).
			Msg("No good match found")
		return
	}

	if score < perfectScore {
		ingredient.Specification = original + " " + ingredient.Specification
	}
	ingredient.Name = match

	t.log.Debug().
		Str("ingredient", original).
		Str("match", match).
		Int("score", score).
		Str("specification", ingredient.Specification).
		Msg("Translated ingredient")
}

// productNames returns the distinct names of the first locale, sorted.
// Locales are ordered lexically so "first" is stable.
func productNames(catalog domain.ProductCatalog) []string {
	if len(catalog) == 0 {
		return nil
	}

	locales := make([]string, 0, len(catalog))
	for locale := range catalog {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	seen := make(map[string]bool)
	var names []string
	for _, name := range catalog[locales[0]] {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

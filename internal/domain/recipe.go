package domain

// Recipe is the subset of a Mealie recipe needed to fill a shopping list
type Recipe struct {
	Name        string             `json:"name"`
	Slug        string             `json:"slug,omitempty"`
	Ingredients []RecipeIngredient `json:"recipe_ingredient"`
	Settings    RecipeSettings     `json:"settings"`
}

// RecipeSettings carries per-recipe display flags
type RecipeSettings struct {
	DisableAmount bool `json:"disable_amount"`
}

// RecipeIngredient is a single ingredient line of a recipe
type RecipeIngredient struct {
	Quantity      float64     `json:"quantity"`
	Unit          *RecipeUnit `json:"unit"`
	Food          *RecipeFood `json:"food"`
	Note          string      `json:"note"`
	Title         string      `json:"title,omitempty"`
	DisableAmount bool        `json:"disable_amount"`
}

// RecipeUnit is the unit of measure of an ingredient
type RecipeUnit struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// RecipeFood is the food an ingredient refers to
type RecipeFood struct {
	Name string `json:"name"`
}

// WebhookPayload is the body Mealie posts when a recipe is sent to the list
type WebhookPayload struct {
	Content *Recipe `json:"content" binding:"required"`
}

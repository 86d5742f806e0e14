package validators

import "errors"

var (
	ErrRecipeIDEmpty     = errors.New("no recipe id provided")
	ErrTitleEmpty        = errors.New("no title provided")
	ErrIngredientsEmpty  = errors.New("at least one ingredient is required")
	ErrInstructionsEmpty = errors.New("no instructions provided")
)

// RecipeRefValidator checks the external recipe reference shared by
// favorites and viewed history entries. Image is optional
func RecipeRefValidator(recipeID, title string) error {
	if recipeID == "" {
		return ErrRecipeIDEmpty
	}

	if title == "" {
		return ErrTitleEmpty
	}

	return nil
}

func CustomRecipeValidator(title string, ingredients []string, instructions string) error {
	if title == "" {
		return ErrTitleEmpty
	}

	if len(ingredients) == 0 {
		return ErrIngredientsEmpty
	}

	for _, i := range ingredients {
		if i == "" {
			return ErrIngredientsEmpty
		}
	}

	if instructions == "" {
		return ErrInstructionsEmpty
	}

	return nil
}

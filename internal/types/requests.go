package types

// RecipeRequest holds the pet details a recipe is generated for
type RecipeRequest struct {
	Age       int    `json:"age" binding:"required,gt=0"`
	Breed     string `json:"breed" binding:"required"`
	Weight    int    `json:"weight" binding:"required,gt=0"`
	UseMonths bool   `json:"months"`
}

package service

import (
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

// PetRecipeToolName is the function the model is forced to call.
const PetRecipeToolName = "PetRecipe"

// PetRecipeTool declares the structured answer every generation must follow.
func PetRecipeTool() llm.Tool {
	return llm.Tool{
		Name:        PetRecipeToolName,
		Description: "For storing the recipe details for a pet.",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				types.FieldTitle: {
					Type:        jsonschema.String,
					Description: "The name of recipe",
				},
				types.FieldDescription: {
					Type:        jsonschema.String,
					Description: "A short description of recipe",
				},
				types.FieldIngredients: {
					Type:        jsonschema.Array,
					Description: "List of ingredients required for recipe",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
				types.FieldRecipe: {
					Type:        jsonschema.Array,
					Description: "List of steps stating the whole recipe splitted",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
			},
			Required:             types.RequiredRecipeFields,
			AdditionalProperties: false,
		},
	}
}

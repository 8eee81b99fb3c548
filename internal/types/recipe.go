package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field names of the structured recipe the model must produce.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIngredients = "ingredients"
	FieldRecipe      = "recipe"
)

// RequiredRecipeFields lists every key a decoded PetRecipe must carry.
var RequiredRecipeFields = []string{FieldTitle, FieldDescription, FieldIngredients, FieldRecipe}

// PetRecipe represents the recipe details generated for a pet
type PetRecipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Recipe      []string `json:"recipe"`
}

// DecodePetRecipe parses the raw arguments of a structured model answer.
// Every required key has to be present and non-null; a present but empty
// sequence is accepted.
func DecodePetRecipe(data []byte) (*PetRecipe, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewSchemaViolation("response is not a JSON object", err)
	}

	for _, field := range RequiredRecipeFields {
		value, ok := raw[field]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return nil, NewSchemaViolation(fmt.Sprintf("missing required field %q", field), nil)
		}
	}

	var recipe PetRecipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, NewSchemaViolation("field has the wrong type", err)
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Validate checks that both ordered sequences are present.
func (r *PetRecipe) Validate() error {
	if r.Ingredients == nil {
		return NewSchemaViolation(fmt.Sprintf("missing required field %q", FieldIngredients), nil)
	}
	if r.Recipe == nil {
		return NewSchemaViolation(fmt.Sprintf("missing required field %q", FieldRecipe), nil)
	}
	return nil
}

// ToMap returns the recipe as a plain mapping with exactly the four recipe keys.
func (r *PetRecipe) ToMap() map[string]any {
	return map[string]any{
		FieldTitle:       r.Title,
		FieldDescription: r.Description,
		FieldIngredients: cloneSteps(r.Ingredients),
		FieldRecipe:      cloneSteps(r.Recipe),
	}
}

func cloneSteps(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package service

import (
	"fmt"

	"github.com/pageza/pet-recipe/backend/internal/llm"
	"github.com/pageza/pet-recipe/backend/internal/types"
)

// PuppyQualifier is appended to the breed for animals younger than a year.
const PuppyQualifier = "puppy"

const (
	systemPrompt = "you are a pet nutritionist, don't give false information to the user and if you are not sure about something please don't add it in your answer."
	// Breed and qualifier are joined without a separator: "german shepherdpuppy".
	userPromptTemplate = "give me a balanced diet recipe for my %s old %s%s who weighs %d kg."
)

// AgePhrase renders the age in months or years
func AgePhrase(age int, useMonths bool) string {
	if useMonths {
		return fmt.Sprintf("%d months", age)
	}
	return fmt.Sprintf("%d years", age)
}

// Qualifier returns PuppyQualifier for month-based ages under 12, otherwise "".
func Qualifier(age int, useMonths bool) string {
	if useMonths && age < 12 {
		return PuppyQualifier
	}
	return ""
}

// BuildMessages renders the system instruction and the user request for req
func BuildMessages(req types.RecipeRequest) []llm.Message {
	return []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: systemPrompt,
		},
		{
			Role: llm.RoleUser,
			Content: fmt.Sprintf(userPromptTemplate,
				AgePhrase(req.Age, req.UseMonths),
				req.Breed,
				Qualifier(req.Age, req.UseMonths),
				req.Weight),
		},
	}
}

// Package seed holds the built-in starter vocabulary used when the store is
// empty and no import file was given.
package seed

import "github.com/example/vocabsrs/pkg/models"

// Entries returns the default first-run word list for Hindi speakers.
func Entries() []models.VocabEntry {
	return []models.VocabEntry{
		{Word: "hello", Meaning: "a greeting used when meeting someone", Translation: "नमस्ते"},
		{Word: "thank you", Meaning: "an expression of gratitude", Translation: "धन्यवाद"},
		{Word: "water", Meaning: "the clear liquid we drink", Translation: "पानी"},
		{Word: "food", Meaning: "what we eat to live", Translation: "खाना"},
		{Word: "friend", Meaning: "a person you like and trust", Translation: "दोस्त"},
		{Word: "family", Meaning: "parents, children and relatives", Translation: "परिवार"},
		{Word: "school", Meaning: "a place where children learn", Translation: "विद्यालय"},
		{Word: "book", Meaning: "pages with writing bound together", Translation: "किताब"},
		{Word: "morning", Meaning: "the early part of the day", Translation: "सुबह"},
		{Word: "beautiful", Meaning: "pleasing to look at", Translation: "सुंदर"},
		{Word: "happy", Meaning: "feeling pleasure or joy", Translation: "खुश"},
		{Word: "work", Meaning: "activity done to earn a living", Translation: "काम"},
	}
}

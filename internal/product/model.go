package product

import (
	"errors"
	"strings"
)

// Category is the closed set of package categories.
type Category string

const (
	CategoryPilates          Category = "pilates"
	CategoryYoga             Category = "yoga"
	CategoryPersonalTraining Category = "personal_training"
	CategoryGroupTraining    Category = "group_training"
	CategoryNutrition        Category = "nutrition"
	CategoryWellness         Category = "wellness"
	CategoryOther            Category = "other"
)

var ErrUnknownCategory = errors.New("unknown product category")

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case CategoryPilates, CategoryYoga, CategoryPersonalTraining,
		CategoryGroupTraining, CategoryNutrition, CategoryWellness, CategoryOther:
		return Category(strings.ToLower(s)), nil
	}
	return "", ErrUnknownCategory
}

// Product is a purchasable training package.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ImageURL         string   `json:"image_url"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	NumberOfClasses  int      `json:"number_of_classes"`
	Category         Category `json:"category"`
	Trainer          *string  `json:"trainer,omitempty"`
	DurationPerClass int      `json:"duration_per_class"`
	ValidityPeriod   int      `json:"validity_period"`
	Features         []string `json:"features"`
}

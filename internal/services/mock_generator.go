package services

import (
	"context"
	"math/rand/v2"
	"strings"

	"blurbgen/internal/models"
)

// MockTemplates are pre-formed single sentences with {product} and {category} placeholders.
var MockTemplates = []string{
	"Revolutionize your daily routine with {product}, the ultimate {category} that delivers unmatched quality and style.",
	"Experience the future of {category} with {product}, designed for those who demand excellence.",
	"Transform the way you think about {category} with {product}, where innovation meets perfection.",
	"{product} is not just a {category}, it's a lifestyle choice for the modern world.",
	"Discover {product}, the {category} that combines cutting-edge technology with timeless design.",
	"Elevate your experience with {product}, the premium {category} you've been waiting for.",
	"{product} redefines what a {category} can be, bringing you power, elegance, and efficiency.",
	"Meet {product}, the {category} that seamlessly blends functionality with sophistication.",
}

// MockGenerator fills a randomly chosen template. It needs no model.
type MockGenerator struct {
	pick func(n int) int
}

// NewMockGenerator returns a generator choosing templates uniformly at random.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{pick: rand.IntN}
}

func (g *MockGenerator) Name() string { return "mock" }

func (g *MockGenerator) Generate(_ context.Context, req models.GenerationRequest) (string, error) {
	return g.Describe(req.ProductName, req.Category), nil
}

// Describe renders one template with the given product and category.
func (g *MockGenerator) Describe(productName, category string) string {
	template := MockTemplates[g.pick(len(MockTemplates))]
	r := strings.NewReplacer("{product}", productName, "{category}", category)
	return r.Replace(template)
}

var _ Generator = (*MockGenerator)(nil)

package models

// MaxInputLength is the longest product name or category accepted, in characters.
const MaxInputLength = 100

// GenerationRequest is the JSON body of POST /generate.
type GenerationRequest struct {
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
}

// GenerationResult is returned for a successful generation. Description is derived
// per request and never stored.
type GenerationResult struct {
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Sample is an example input pair served by GET /samples.
type Sample struct {
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
}

// Request converts the sample into a generation request.
func (s Sample) Request() GenerationRequest {
	return GenerationRequest{ProductName: s.ProductName, Category: s.Category}
}

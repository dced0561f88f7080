package ai

// GeneratedImage is the result of a successful image generation call.
type GeneratedImage struct {
	// URL is the direct URL of the generated image.
	URL string

	// Description is a short caption describing what was generated.
	Description string
}

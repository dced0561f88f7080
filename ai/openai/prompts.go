package openai

// searchSystemPrompt instructs the model to behave like an image search
// index. The discovery engine parses direct URLs out of the raw response,
// so the prompt asks for plain URLs rather than structured output.
const searchSystemPrompt = `You are an image search assistant for an editorial system.
Given a search request, reply with a plain-text list of direct image URLs
that match the request, one URL per line. Only use images from free stock
photography sources such as unsplash.com, pexels.com, pixabay.com or
wikimedia.org. Every URL must point directly at an image file (jpg, jpeg,
png, webp or gif). Do not add commentary, numbering or markdown.`

// generationSystemPrompt instructs the model to return a single JSON object
// describing the generated image.
const generationSystemPrompt = `You are an image generation service for an editorial system.
Given a description of the desired image, generate it and respond with a
single JSON object of the form:

{"url": "<direct URL of the generated image>", "description": "<one sentence caption>"}

Respond with the JSON object only. Do not add commentary or markdown.`

// Package openai implements the ai provider interfaces using OpenAI-compatible
// chat APIs via langchaingo.
//
// Search issues a chat completion asking the model to list direct image URLs
// as plain text; the discovery engine owns parsing and allow-list filtering.
// Generation issues a JSON-mode completion and parses the response into a
// GeneratedImage, repairing common model JSON defects and retrying malformed
// output up to three times.
//
// The package works against any OpenAI-compatible endpoint (OpenAI, Ollama,
// LocalAI, vLLM) selected through ai.Config hosts.
package openai

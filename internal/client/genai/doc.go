// Package genai is the client for the generative-AI provider.
//
// It speaks the OpenAI-compatible chat completions protocol used by
// OpenRouter and implements the generation capabilities the tracker needs:
// cover letters, interview guides, resume parsing, avatar images and the
// assistant chat. Prompts come from an embedded YAML catalog (prompts.yaml)
// rendered with text/template.
//
// Every call may fail or return degraded content; callers decide how to
// degrade (see the regen package for the placeholder policy).
package genai

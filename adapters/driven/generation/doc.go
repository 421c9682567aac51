// Package generation provides the shared machinery for Generator
// adapters: prompt construction, response parsing, and request
// throttling. Provider-specific transports live in the subpackages
// (openai, anthropic, ollama, static).
package generation

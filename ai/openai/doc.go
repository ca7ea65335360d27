// Package openai implements the ai interfaces against OpenAI-compatible APIs
// (OpenAI, Ollama, LocalAI, vLLM).
//
// Embeddings use the embeddings endpoint via langchaingo. Sentiment
// classification uses a chat completion with JSON mode and temperature 0;
// responses are fence-stripped, repaired, and validated, with up to three
// parse attempts before the call fails. Classifier input is truncated
// deterministically to the configured token budget.
package openai

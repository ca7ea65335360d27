// Package mock provides deterministic test doubles for the ai interfaces.
//
// The mock embedder derives unit-length vectors from an FNV hash of the
// input, so identical text always embeds identically. The mock classifier
// counts fixed positive/negative lexicon words. Both support behavior
// injection via function fields for error-path testing.
package mock

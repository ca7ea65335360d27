// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It specifically handles missing opening quotes before keys in JSON objects,
// e.g. `{label": "POSITIVE"}` becomes `{"label": "POSITIVE"}`.
func repairJSON(s string) string {
	src := []rune(s)
	fixed := make([]rune, 0, len(src)+16)

	i := 0
	for i < len(src) {
		ch := src[i]

		// After { or , look for unquoted keys
		if ch == '{' || ch == ',' {
			fixed = append(fixed, ch)
			i++

			// Skip whitespace
			for i < len(src) && (src[i] == ' ' || src[i] == '\n' || src[i] == '\t') {
				fixed = append(fixed, src[i])
				i++
			}

			// An unquoted key starts with a letter instead of a quote
			if i < len(src) && src[i] != '"' && isLetter(src[i]) {
				keyStart := i
				for i < len(src) && (isLetter(src[i]) || src[i] == '_') {
					i++
				}
				keyEnd := i

				// Skip trailing whitespace between key and colon
				j := i
				for j < len(src) && src[j] == ' ' {
					j++
				}

				// Only treat it as a key if a quote-colon or colon follows
				if j < len(src) && (src[j] == ':' || (src[j] == '"' && j+1 < len(src) && src[j+1] == ':')) {
					fixed = append(fixed, '"')
					fixed = append(fixed, src[keyStart:keyEnd]...)
					if src[j] != '"' {
						fixed = append(fixed, '"')
					}
					continue
				}

				fixed = append(fixed, src[keyStart:keyEnd]...)
				continue
			}
			continue
		}

		fixed = append(fixed, ch)
		i++
	}

	return string(fixed)
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

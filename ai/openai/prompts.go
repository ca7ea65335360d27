package openai

const sentimentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "label": {
      "type": "string",
      "enum": ["POSITIVE", "NEGATIVE", "NEUTRAL"]
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    }
  },
  "required": ["label", "confidence"],
  "additionalProperties": false
}`

const sentimentPromptTemplate = `Classify the overall sentiment of the given customer review text and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

` + sentimentResponseSchema + `

Rules:
- "label" is POSITIVE if the text overall expresses satisfaction, NEGATIVE if it overall expresses
  dissatisfaction, NEUTRAL only if no polarity can be determined.
- "confidence" is a number from 0 (pure guess) to 1 (certain).
- The text may contain several concatenated reviews; classify the overall sentiment of the whole text.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: the pasta was cold and the waiter ignored us
Output: {"label": "NEGATIVE", "confidence": 0.94}`

func sentimentSystemPrompt() string {
	return sentimentPromptTemplate
}

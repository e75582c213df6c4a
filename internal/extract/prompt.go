package extract

import (
	"fmt"
	"strings"
)

// BuildPrompt builds the system and user prompts for the extraction backend.
// The instruction pins down the schema, the Sex constraint, the Unknown
// sentinel and the exact response format so the reply can be parsed
// mechanically.
func BuildPrompt(transcript string) (string, string) {
	systemPrompt := "You are a knowledgeable doctor, providing accurate, and helpful medical advice based on the information given."

	userPrompt := fmt.Sprintf(`You will be given a dialogue taken from a medical consultation. Process it to fill out a medical intake record with the following specifications.

1. Fields to fill, in this exact order: %s.
2. Rules:
- If a field has no explicit information in the dialogue, fill it with '%s'.
- The field Sex may only be '%s' or '%s' (or '%s' if it cannot be determined).
- Diagnosis, Observations and Treatment must be filled from your own analysis of the dialogue, even when they are not stated literally. Make Treatment as detailed as possible.
3. Response format: answer ONLY with the eleven field values, separated by a semicolon (;), in the order above, and nothing else.
4. Example output: John Doe;Masculino;45;Abdominal pain;Gastritis;Unknown;Unknown;Unknown;Gastritis;Unknown;Omeprazole 20mg
If the dialogue does not correspond to a medical consultation at all, answer every field with %s and nothing else.

Dialogue:
%s`,
		strings.Join(Columns(), ", "), Unknown, SexMale, SexFemale, Unknown, Unknown, transcript)

	return systemPrompt, userPrompt
}

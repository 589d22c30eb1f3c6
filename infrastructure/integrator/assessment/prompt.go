package assessment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

const systemPrompt = "You are a JSON generator that grades restaurant marketing material. Output only a JSON object."

const rubricInstructions = `Grade each criterion from 0 to 100, where 100 means the business fully meets it.
Return strictly this JSON, without markdown:
{
	"sub_scores": {"<criterion key>": <number 0-100>},
	"notes": ["short observation", "short observation"]
}
Use exactly the criterion keys listed above. Keep at most three notes.`

// buildMessages monta a conversa enviada ao modelo para uma rubrica
func buildMessages(request domain.RubricRequest) []*schema.Message {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Business: %s\n", request.BusinessName))
	sb.WriteString(fmt.Sprintf("Category: %s\n\n", request.Category))

	sb.WriteString("Criteria:\n")
	for _, criterion := range request.Criteria {
		sb.WriteString(fmt.Sprintf("- %s (%d points): %s\n", criterion.Key, criterion.Points, criterion.Description))
	}

	if len(request.Facts) > 0 {
		keys := make([]string, 0, len(request.Facts))
		for key := range request.Facts {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString("\nFacts:\n")
		for _, key := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", key, request.Facts[key]))
		}
	}

	if request.Content != "" {
		sb.WriteString("\nContent:\n")
		sb.WriteString(request.Content)
		sb.WriteString("\n")
	}

	return []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: sb.String() + "\n" + rubricInstructions},
	}
}

// cleanContent remove as cercas de markdown que alguns modelos devolvem
func cleanContent(content string) string {
	clean := strings.TrimSpace(content)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

package reasoning

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"droscher.com/BottleButler/pkg/model"
)

const systemPrompt = "You are Bob, an AI whisky butler expert. Your task is to analyze a user's whisky collection " +
	"and recommend bottles from a candidate list. Provide detailed reasoning for each recommendation."

const promptTemplate = `
I need you to analyze a user's whisky collection and recommend the best bottles from a candidate list.

USER'S COLLECTION:
%s

CANDIDATE BOTTLES:
%s

Based on the user's collection, select %d bottles from the candidate list that would best complement their collection.
For each recommended bottle, provide:
1. A match score between 0.0 and 1.0
2. 2-3 specific reasons for the recommendation, considering:
   - Flavor profile similarity or complementary nature
   - Price value relative to the user's spending habits
   - Collection diversity (regions, distillers, types)
   - Popularity and ratings

Format your response as a JSON object with this structure:
{
  "recommendations": [
    {
      "bottleId": "id of the bottle",
      "matchScore": 0.85,
      "reasons": [
        {
          "type": "similar",
          "description": "Reason text here"
        },
        {
          "type": "value",
          "description": "Reason text here"
        }
      ]
    }
  ]
}

The "type" for each reason should be one of: "similar", "complementary", "value", or "trending".
`

func userPrompt(owned []model.Bottle, candidates []model.Bottle, limit int) (string, error) {
	ownedJSON, err := json.MarshalIndent(owned, "", "  ")
	if err != nil {
		return "", err
	}

	candidatesJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(fmt.Sprintf(promptTemplate, ownedJSON, candidatesJSON, min(len(candidates), limit))), nil
}

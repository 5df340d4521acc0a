package recommend

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"droscher.com/BottleButler/pkg/model"
)

// ErrReasoningUnavailable covers every way the reasoning service can fail
// to produce usable recommendations. Callers fall back on it.
var ErrReasoningUnavailable = errors.New("external reasoning unavailable")

const defaultReasonedScore = 0.5

type reasonedEntry struct {
	BottleID   string   `json:"bottleId"`
	MatchScore *float64 `json:"matchScore"`
	Reasons    []Reason `json:"reasons"`
}

// Rehydrate turns a reasoning response into recommendations by looking each
// entry's bottle up among the candidates. Entries naming an unknown bottle
// are dropped, as are reasons of an unknown kind.
func Rehydrate(raw []byte, candidates []model.Bottle, limit int) ([]BottleRecommendation, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %w", ErrReasoningUnavailable, err)
	}

	list, found := envelope["recommendations"]
	if !found {
		return nil, fmt.Errorf("%w: response has no recommendations", ErrReasoningUnavailable)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(list, &entries); err != nil || entries == nil {
		return nil, fmt.Errorf("%w: recommendations is not a list", ErrReasoningUnavailable)
	}

	byID := make(map[string]*model.Bottle, len(candidates))
	for index := range candidates {
		if _, seen := byID[candidates[index].ID]; !seen {
			byID[candidates[index].ID] = &candidates[index]
		}
	}

	results := make([]BottleRecommendation, 0, len(entries))

	for _, rawEntry := range entries {
		if limit > 0 && len(results) >= limit {
			break
		}

		var entry reasonedEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			continue
		}

		bottle, found := byID[entry.BottleID]
		if !found {
			continue
		}

		score := defaultReasonedScore
		if entry.MatchScore != nil && *entry.MatchScore != 0 {
			score = clampScore(*entry.MatchScore)
		}

		reasons := make([]Reason, 0, len(entry.Reasons))
		for _, reason := range entry.Reasons {
			if reason.Kind.Valid() {
				reasons = append(reasons, reason)
			}
		}

		results = append(results, BottleRecommendation{Bottle: *bottle, Reasons: reasons, MatchScore: score})
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no recommendation matched a candidate", ErrReasoningUnavailable)
	}

	return results, nil
}

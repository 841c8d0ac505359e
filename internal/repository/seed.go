package repository

import (
	"context"

	"github.com/ideaboard/ideaboard-go/internal/model"
)

// seedIdeas are the sample ideas inserted into an empty board so a fresh
// deployment has something to show. They carry no author (legacy rows).
var seedIdeas = []model.Idea{
	{
		What:         "A personal finance tracker that automatically categorizes expenses.",
		Who:          "Young professionals who want to understand their spending habits.",
		Features:     "1. Auto-categorize transactions\n2. Monthly budget vs actuals view\n3. Export to CSV",
		DoneCriteria: "Users can securely connect their bank, view categorized transactions for the last 30 days, and set budget limits.",
		Inspiration:  "Mint, YNAB, Copilot",
	},
	{
		What:         "An AI-powered recipe generator based on ingredients you have in your fridge.",
		Who:          "Home cooks looking to reduce food waste and try new meals.",
		Features:     "1. Input list of ingredients\n2. Generate 3 recipe options\n3. Save favorite recipes",
		DoneCriteria: "Users can input 'chicken, rice, broccoli' and receive a fully formatted recipe with step-by-step instructions.",
		Inspiration:  "Supercook, various recipe blogs",
	},
}

// SeedIdeas inserts the sample ideas when the board is empty. Callers treat
// failures as non-fatal; the tables may simply not be migrated yet.
func SeedIdeas(ctx context.Context, ideas *IdeaRepository) error {
	count, err := ideas.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range seedIdeas {
		idea := seedIdeas[i]
		if err := ideas.Insert(ctx, &idea); err != nil {
			return err
		}
	}
	return nil
}

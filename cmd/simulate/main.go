// Command simulate replays a rating sequence for one word through the
// scheduler and prints the interval trajectory. With -feedback it also
// replays session feedback through the difficulty controller. Useful for
// eyeballing ladder and controller tunings without touching any storage.
//
//	simulate -word ubiquitous -ratings GOOD,GOOD,AGAIN,GOOD,EASY
//	simulate -feedback TOO_HARD,TOO_HARD,TOO_HARD,OK
//
// Scheduler and controller parameters come from configuration (CONFIG_PATH /
// env); -ladder overrides the configured ladder. Exit codes: 0 = success,
// 1 = error.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/config"
	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

func main() {
	word := flag.String("word", "example", "word to simulate")
	ratingsRaw := flag.String("ratings", "GOOD,GOOD,GOOD,GOOD,GOOD", "comma-separated ratings (AGAIN, HARD, GOOD, EASY, UNKNOWN)")
	ladderRaw := flag.String("ladder", "", "override configured interval ladder, e.g. 1,3,7,14,30,60")
	feedbackRaw := flag.String("feedback", "", "comma-separated feedback signals to replay (TOO_EASY, OK, TOO_HARD)")
	flag.Parse()

	cfg, err := config.LoadStudy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	params := cfg.Review.Params()
	if *ladderRaw != "" {
		ladder, err := review.ParseLadder(*ladderRaw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ladder: %v\n", err)
			os.Exit(1)
		}
		params.Ladder = ladder
	}

	ratings, err := parseRatings(*ratingsRaw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ratings: %v\n", err)
		os.Exit(1)
	}

	simulateReviews(params, *word, ratings)

	if *feedbackRaw != "" {
		signals, err := parseFeedback(*feedbackRaw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "feedback: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		simulateFeedback(cfg.Difficulty.EWMAParams(), signals)
	}
}

func simulateReviews(params review.Params, word string, ratings []domain.Rating) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	state := review.Initialize(params, uuid.New(), word, now)
	fmt.Printf("%-8s %-10s fam=%d due=%s\n", "init", "-", state.Familiarity, state.NextDueAt.Format("2006-01-02"))

	for i, rating := range ratings {
		// Review exactly when the word comes due.
		now = *state.NextDueAt
		var interval int
		state, interval = review.Update(params, state, rating, now)
		fmt.Printf("%-8s %-10s fam=%d interval=%dd due=%s\n",
			fmt.Sprintf("step %d", i+1), rating, state.Familiarity, interval, state.NextDueAt.Format("2006-01-02"))
	}
}

func simulateFeedback(params difficulty.EWMAParams, signals []domain.Feedback) {
	profile := domain.DefaultProfile()
	var state difficulty.State
	fmt.Printf("%-8s %-10s level=%s bias=%+.2f budget=%d\n", "init", "-", profile.Level, profile.DifficultyBias, profile.UnknownBudget)

	for i, fb := range signals {
		adj := difficulty.AdjustLevelAndBudget(params, profile, fb, state)
		profile, state = adj.Profile, adj.State
		marker := ""
		if adj.Changed {
			marker = " *"
		}
		fmt.Printf("%-8s %-10s level=%s bias=%+.2f pressure=%+.3f%s\n",
			fmt.Sprintf("step %d", i+1), fb, profile.Level, profile.DifficultyBias, state.Pressure, marker)
	}
}

func parseRatings(raw string) ([]domain.Rating, error) {
	parts := strings.Split(raw, ",")
	ratings := make([]domain.Rating, 0, len(parts))
	for _, p := range parts {
		r := domain.Rating(strings.ToUpper(strings.TrimSpace(p)))
		if !r.IsValid() {
			return nil, fmt.Errorf("unknown rating %q", p)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}

func parseFeedback(raw string) ([]domain.Feedback, error) {
	parts := strings.Split(raw, ",")
	signals := make([]domain.Feedback, 0, len(parts))
	for _, p := range parts {
		f := domain.Feedback(strings.ToUpper(strings.TrimSpace(p)))
		if !f.IsValid() {
			return nil, fmt.Errorf("unknown feedback %q", p)
		}
		signals = append(signals, f)
	}
	return signals, nil
}

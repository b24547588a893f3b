// ABOUTME: Cobra command for the interactive word guessing game.
// ABOUTME: Launches a bubbletea TUI that scores guesses through the service.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/2389-research/wordsim/internal/tui"
	"github.com/2389-research/wordsim/internal/vectors"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the word guessing game",
	Long: `Guess the hidden word. Each guess is scored against the answer by the
similarity service and ranked; the closer the score to 100%, the warmer.

The answer defaults to the word of the day.`,
	RunE: runPlay,
}

// Flags
var (
	playAnswer string
	playDate   string
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playAnswer, "answer", "", "Hidden answer (default: word of the day)")
	playCmd.Flags().StringVar(&playDate, "date", "", "Use the word of this day (YYYY-MM-DD)")
	playCmd.Flags().StringVar(&serviceURL, "url", "", "Service URL (overrides client.url)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("play needs an interactive terminal")
	}

	answer, err := resolveAnswer(playAnswer, playDate, time.Now())
	if err != nil {
		return err
	}

	c := serviceClient()
	readyCtx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	if !c.Ready(readyCtx) {
		return fmt.Errorf("service at %s is not ready; start it with 'wordsim serve'", c.BaseURL())
	}

	model := tui.NewGameModel(answer, func(ctx context.Context, guess, answer string) (float64, error) {
		resp, err := c.Similarity(ctx, guess, answer)
		if err != nil {
			return 0, err
		}
		return resp.Similarity, nil
	})

	result, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.GameModel)
	switch {
	case final.Won():
		fmt.Printf("Solved in %d guesses.\n", len(final.Guesses()))
	case final.GaveUp():
		fmt.Printf("The answer was %s.\n", final.Answer())
	}
	return nil
}

// resolveAnswer picks the hidden word from flags, defaulting to today's word.
func resolveAnswer(answer, date string, now time.Time) (string, error) {
	if answer != "" {
		return answer, nil
	}
	if date == "" {
		return vectors.DailyWord(now), nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid --date %q: %w", date, err)
	}
	return vectors.DailyWord(day), nil
}

// ABOUTME: Interactive word guessing game built on the similarity service.
// ABOUTME: Bubbletea model that scores guesses against a hidden answer and ranks them.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// visibleGuesses caps how many ranked guesses the view lists.
const visibleGuesses = 10

// ScoreFn scores a guess against the answer.
type ScoreFn func(ctx context.Context, guess, answer string) (float64, error)

// Guess is one scored attempt.
type Guess struct {
	Word       string
	Similarity float64
	Attempt    int
}

// scoreResultMsg carries the result of an async scoring call.
type scoreResultMsg struct {
	word       string
	similarity float64
	err        error
}

// cancelHolder shares a cancel function across bubbletea model copies.
// It must stay a pointer field so value-receiver methods see the same func.
type cancelHolder struct {
	cancel context.CancelFunc
}

// GameModel is the bubbletea model for the guessing game.
type GameModel struct {
	sessionID uuid.UUID
	answer    string
	input     textinput.Model
	spinner   spinner.Model
	scoreFn   ScoreFn
	cancelCtx *cancelHolder

	guesses  []Guess
	latest   *Guess
	pending  string
	notice   string
	scoreErr error

	won      bool
	gaveUp   bool
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	latestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// NewGameModel creates a game with the given hidden answer.
func NewGameModel(answer string, scoreFn ScoreFn) GameModel {
	input := textinput.New()
	input.Placeholder = "단어를 입력하세요"
	input.Focus()
	input.Width = 30
	input.CharLimit = 32

	s := spinner.New()
	s.Spinner = spinner.Dot

	return GameModel{
		sessionID: uuid.New(),
		answer:    answer,
		input:     input,
		spinner:   s,
		scoreFn:   scoreFn,
		cancelCtx: &cancelHolder{},
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			m.cancelScoring()
			return m, tea.Quit
		case tea.KeyCtrlG:
			m.gaveUp = true
			m.cancelScoring()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case scoreResultMsg:
		m.cancelScoring()
		m.cancelCtx.cancel = nil
		m.pending = ""
		if msg.err != nil {
			m.scoreErr = msg.err
			return m, nil
		}
		m.scoreErr = nil
		m.record(msg.word, msg.similarity)
		if msg.word == m.answer {
			m.won = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending != "" {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m GameModel) submit() (tea.Model, tea.Cmd) {
	word := strings.TrimSpace(m.input.Value())
	if word == "" || m.pending != "" {
		return m, nil
	}

	m.input.SetValue("")
	m.notice = ""
	for i := range m.guesses {
		if m.guesses[i].Word == word {
			m.notice = fmt.Sprintf("이미 입력한 단어입니다: %s", word)
			g := m.guesses[i]
			m.latest = &g
			return m, nil
		}
	}

	m.pending = word
	return m, tea.Batch(m.startScoring(word), m.spinner.Tick)
}

func (m GameModel) startScoring(word string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCtx.cancel = cancel
	answer := m.answer
	fn := m.scoreFn
	return func() tea.Msg {
		sim, err := fn(ctx, word, answer)
		return scoreResultMsg{word: word, similarity: sim, err: err}
	}
}

func (m GameModel) cancelScoring() {
	if m.cancelCtx.cancel != nil {
		m.cancelCtx.cancel()
	}
}

// record inserts a guess and keeps the list sorted by similarity, best first.
func (m *GameModel) record(word string, similarity float64) {
	g := Guess{Word: word, Similarity: similarity, Attempt: len(m.guesses) + 1}
	m.guesses = append(m.guesses, g)
	sort.SliceStable(m.guesses, func(i, j int) bool {
		return m.guesses[i].Similarity > m.guesses[j].Similarity
	})
	m.latest = &g
}

// Rank returns the 1-based rank of word among guesses, or 0 if not guessed.
func (m GameModel) Rank(word string) int {
	for i, g := range m.guesses {
		if g.Word == word {
			return i + 1
		}
	}
	return 0
}

// View implements tea.Model.
func (m GameModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   단어 유사도 게임"))
	b.WriteString(titleStyle.Render(" - wordsim"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("   session %s", m.sessionID.String()[:8])))
	b.WriteString("\n\n")

	switch {
	case m.won:
		b.WriteString(successStyle.Render(fmt.Sprintf("✓ 정답! %s (%d번 만에)", m.answer, len(m.guesses))))
		b.WriteString("\n")
		return b.String()
	case m.gaveUp:
		b.WriteString(errorStyle.Render(fmt.Sprintf("정답은 %s 였습니다.", m.answer)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.pending != "" {
		b.WriteString(m.spinner.View())
		b.WriteString(fmt.Sprintf(" %s 계산 중...", m.pending))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(dimStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.scoreErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", m.scoreErr)))
		b.WriteString("\n")
	}

	if m.latest != nil {
		b.WriteString("\n")
		b.WriteString(latestStyle.Render(formatGuess(m.Rank(m.latest.Word), *m.latest)))
		b.WriteString("\n")
	}

	if len(m.guesses) > 0 {
		b.WriteString("\n")
		for i, g := range m.guesses {
			if i >= visibleGuesses {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more", len(m.guesses)-visibleGuesses)))
				b.WriteString("\n")
				break
			}
			b.WriteString(formatGuess(i+1, g))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[enter] 제출  [ctrl+g] 포기  [esc] 종료"))
	b.WriteString("\n")
	return b.String()
}

func formatGuess(rank int, g Guess) string {
	filled := min(max(int(g.Similarity*20+0.5), 0), 20)
	bar := barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", 20-filled))
	return fmt.Sprintf("%3d. %-8s %6.2f%% %s  #%d", rank, g.Word, g.Similarity*100, bar, g.Attempt)
}

// Guesses returns scored guesses, best first.
func (m GameModel) Guesses() []Guess {
	out := make([]Guess, len(m.guesses))
	copy(out, m.guesses)
	return out
}

// Answer returns the hidden answer.
func (m GameModel) Answer() string {
	return m.answer
}

// Won reports whether the answer was guessed.
func (m GameModel) Won() bool {
	return m.won
}

// GaveUp reports whether the player revealed the answer.
func (m GameModel) GaveUp() bool {
	return m.gaveUp
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
	"github.com/vovakirdan/arcade-pathfinder/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// styled reports whether stdout is a terminal worth colouring.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(s lipgloss.Style, text string) string {
	if !styled() {
		return text
	}
	return s.Render(text)
}

func title(text string) {
	fmt.Println(render(titleStyle, text))
	fmt.Println()
}

func outcome(o search.Outcome) string {
	if o == search.OutcomeFound {
		return render(okStyle, string(o))
	}
	return render(failStyle, string(o))
}

func printStats(s search.Stats) {
	fmt.Printf("  %-10s %s\n", "Outcome", outcome(s.Outcome))
	fmt.Printf("  %-10s %d\n", "Rounds", s.Rounds)
	fmt.Printf("  %-10s %d\n", "Expanded", s.Expanded)
	fmt.Printf("  %-10s %d\n", "Visited", s.Visited)
	fmt.Printf("  %-10s %s\n", "Elapsed", s.Elapsed.Round(time.Millisecond))
}

func printPath(path []search.Step) {
	if len(path) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-5s  %-10s  %10s  %10s  %s\n", "Tick", "Action", "X", "Y", "Health")
	fmt.Printf("  %-5s  %-10s  %10s  %10s  %s\n", "----", "------", "-", "-", "------")
	for i, st := range path {
		act := physics.Action{Move: st.Move, Shift: st.Shift}
		fmt.Printf("  %-5d  %-10s  %10.2f  %10.2f  %s\n", i+1, act, st.Player.X, st.Player.Y,
			render(dimStyle, fmt.Sprintf("%.2f", st.Player.Health)))
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

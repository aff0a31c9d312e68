package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/dodge"
	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
	"github.com/vovakirdan/arcade-pathfinder/internal/physics"
)

var (
	flagMove  string
	flagShift bool
)

var dodgeCmd = &cobra.Command{
	Use:   "dodge <dir>",
	Short: "Pick an action that survives incoming projectiles",
	Long: `Check whether the intended action leaves the avatar a way to survive
the next 25 ticks of projectile movement. If it does not, print the first
surviving alternative, preferring ones without a jump.

Only the settings, initial state and static world of dir are used.

Examples:
  pathfinder dodge ./problem --move NONE
  pathfinder dodge ./problem --move D --shift`,
	Args:        cobra.ExactArgs(1),
	RunE:        runDodge,
	Annotations: roundsValues,
}

var stepCmd = &cobra.Command{
	Use:   "step <dir>",
	Short: "Advance the initial state by one tick",
	Long: `Apply one action to the initial state of dir against its static world
and print the resulting avatar as JSON.

Examples:
  pathfinder step ./problem --move W
  pathfinder step ./problem --move WD --shift`,
	Args:        cobra.ExactArgs(1),
	RunE:        runStep,
	Annotations: roundsValues,
}

func init() {
	for _, c := range []*cobra.Command{dodgeCmd, stepCmd} {
		c.Flags().StringVar(&flagMove, "move", "NONE", "Move: NONE, A, D, W, WA, WD, S, SA, SD")
		c.Flags().BoolVar(&flagShift, "shift", false, "Hold shift")
	}
}

func loadIntent(dir string) (encoding.Bundle, physics.Move, error) {
	b, err := encoding.LoadDir(dir)
	if err != nil {
		return b, "", err
	}
	move, err := physics.ParseMove(flagMove)
	if err != nil {
		return b, "", err
	}
	b.SyncSettings()
	return b, move, nil
}

func runDodge(_ *cobra.Command, args []string) error {
	b, move, err := loadIntent(args[0])
	if err != nil {
		return err
	}

	engine := dodge.New(dodge.Config{Workers: appCfg.Engine.Workers, Logger: logger})
	gotMove, gotShift := engine.Search(b.Settings, b.Initial, b.Static, move, flagShift)

	intended := physics.Action{Move: move, Shift: flagShift}
	chosen := physics.Action{Move: gotMove, Shift: gotShift}
	if chosen == intended {
		fmt.Printf("%s %s\n", chosen, render(okStyle, "(kept)"))
	} else {
		fmt.Printf("%s %s\n", chosen, render(failStyle, fmt.Sprintf("(instead of %s)", intended)))
	}
	return nil
}

func runStep(_ *cobra.Command, args []string) error {
	b, move, err := loadIntent(args[0])
	if err != nil {
		return err
	}

	player := physics.Advance(b.Settings, b.Static, b.Initial, move, flagShift)
	return printJSON(player)
}

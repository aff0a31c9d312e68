package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-pathfinder/internal/rround"
)

var roundCmd = &cobra.Command{
	Use:   "round <value> [digits]",
	Short: "Round a value half to even",
	Long: `Round value to digits decimal places (default 2), resolving ties to
the even neighbour on the exact binary value, as the physics model does.

Examples:
  pathfinder round 2.675        # 2.67
  pathfinder round 0.125        # 0.12
  pathfinder round 2.5 0        # 2`,
	Args:        cobra.RangeArgs(1, 2),
	RunE:        runRound,
	Annotations: roundsValues,
}

func parseRoundArgs(args []string) (value float64, digits int, err error) {
	value, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, fmt.Errorf("invalid value %q: must be finite", args[0])
	}

	digits = rround.FastDigits
	if len(args) == 2 {
		digits, err = strconv.Atoi(args[1])
		if err != nil || digits < 0 {
			return 0, 0, fmt.Errorf("invalid digits %q: must be a non-negative integer", args[1])
		}
	}
	return value, digits, nil
}

func runRound(_ *cobra.Command, args []string) error {
	value, digits, err := parseRoundArgs(args)
	if err != nil {
		return err
	}

	fmt.Println(strconv.FormatFloat(rround.Round(value, digits), 'f', -1, 64))
	return nil
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
	"github.com/abatilo/checkmate/internal/reward"
)

// cardsCmd implements 'checkmate cards' command group.
func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Celebration scratch cards",
	}

	cmd.AddCommand(
		cardsListCmd(),
		cardsScratchCmd(),
	)

	return cmd
}

// cardsListCmd implements 'checkmate cards list'.
func cardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the scratch card deck",
		Run: func(cmd *cobra.Command, _ []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			deck := reward.NewDeck(cmd.Context(), a.adapter, a.rng)
			printOutput(formatter.FormatCards(deck.Cards()))
		},
	}
}

// cardsScratchCmd implements 'checkmate cards scratch'.
func cardsScratchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scratch <card>",
		Short: "Scratch a card (1-4) to reveal its reward",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			index, err := parseCard(args[0])
			if err != nil {
				printError(err)
			}

			a := mustOpenApp(cmd)
			defer a.close()

			deck := reward.NewDeck(cmd.Context(), a.adapter, a.rng)
			r, fresh, err := deck.Scratch(cmd.Context(), index)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatReward(reward.Card{Index: index, Revealed: true, Reward: r}, fresh))
		},
	}
}

// parseCard converts a 1-based card argument to a deck index.
func parseCard(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, cmerrors.InvalidCardError{Value: arg}
	}
	return n - 1, nil
}

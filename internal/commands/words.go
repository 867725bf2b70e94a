package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"billkit/internal/billing"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Print an amount in Indian-system words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), billing.AmountToWords(amount))
			return err
		},
	}
}

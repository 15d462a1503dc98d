package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/fetch-protocol/fetch/x/sale/types"
)

// GetTxCmd returns the transaction commands for the sale module
func GetTxCmd() *cobra.Command {
	saleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Sale transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	saleTxCmd.AddCommand(
		CmdBuy(),
		CmdFundReserve(),
		CmdDeepen(),
	)

	return saleTxCmd
}

// CmdBuy returns a CLI command handler for buying sale tokens
func CmdBuy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy [amount-in]",
		Short: "Buy sale tokens at the amm quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[0])
			}

			msg := &types.MsgBuy{
				Buyer:    clientCtx.GetFromAddress().String(),
				AmountIn: amountIn,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFundReserve returns a CLI command handler for topping up the sale reserve
func CmdFundReserve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-reserve [amount]",
		Short: "Transfer sale tokens into the sale reserve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[0])
			}

			msg := &types.MsgFundReserve{
				Sender: clientCtx.GetFromAddress().String(),
				Amount: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeepen returns a CLI command handler for triggering liquidity deepening
func CmdDeepen() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deepen",
		Short: "Convert accumulated deepening funds into amm liquidity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgDeepen{
				Sender: clientCtx.GetFromAddress().String(),
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

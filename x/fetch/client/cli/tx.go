package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/fetch-protocol/fetch/x/fetch/types"
)

// GetTxCmd returns the transaction commands for the fetch module
func GetTxCmd() *cobra.Command {
	fetchTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Fetch transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	fetchTxCmd.AddCommand(
		CmdDeposit(),
		CmdDepositPair(),
	)

	return fetchTxCmd
}

// CmdDeposit returns a CLI command handler for single-sided deposits
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [native-amount]",
		Short: "Deposit native tokens; the router converts, provisions, stakes, and burns",
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

			msg := &types.MsgDeposit{
				Depositor:    clientCtx.GetFromAddress().String(),
				NativeAmount: amount,
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

// CmdDepositPair returns a CLI command handler for two-sided deposits
func CmdDepositPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-pair [native-amount] [token-amount]",
		Short: "Deposit both legs directly; no conversion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nativeAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid native amount: %s (must be integer)", args[0])
			}

			tokenAmount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid token amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgDepositPair{
				Depositor:    clientCtx.GetFromAddress().String(),
				NativeAmount: nativeAmount,
				TokenAmount:  tokenAmount,
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

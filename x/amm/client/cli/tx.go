package cli

import (
	"fmt"
	"strconv"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/fetch-protocol/fetch/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [amount-a] [token-b] [amount-b]",
		Short: "Create a new liquidity pool",
		Long: `Create a new liquidity pool with an initial deposit of both tokens.

Example:
  $ fetchd tx amm create-pool ubnb 1000000 ufet 2000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}

			amountB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[3])
			}

			msg := &types.MsgCreatePool{
				Creator: clientCtx.GetFromAddress().String(),
				TokenA:  args[0],
				TokenB:  args[2],
				AmountA: amountA,
				AmountB: amountB,
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

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Add liquidity to an existing pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}

			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgAddLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				AmountA:  amountA,
				AmountB:  amountB,
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

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Remove liquidity from a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			msg := &types.MsgRemoveLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				Shares:   shares,
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

// CmdSwap returns a CLI command handler for swapping tokens
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [amount-in] [token-out] [min-amount-out]",
		Short: "Swap tokens through a pool",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			minAmountOut, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[4])
			}

			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}
			if deadline == 0 {
				deadline = time.Now().Add(5 * time.Minute).Unix()
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				PoolId:       poolID,
				TokenIn:      args[1],
				TokenOut:     args[3],
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				Deadline:     deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Unix timestamp after which the swap is rejected (default: now + 5m)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

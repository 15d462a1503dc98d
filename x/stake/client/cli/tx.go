package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/fetch-protocol/fetch/x/stake/types"
)

// GetTxCmd returns the transaction commands for the stake module
func GetTxCmd() *cobra.Command {
	stakeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Stake transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	stakeTxCmd.AddCommand(
		CmdStake(),
		CmdWithdraw(),
		CmdClaimReward(),
		CmdExit(),
		CmdClaimNft(),
		CmdNotifyReward(),
	)

	return stakeTxCmd
}

// CmdStake returns a CLI command handler for staking LP shares
func CmdStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake [pool-id] [shares]",
		Short: "Stake LP shares into a reward pool",
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

			msg := &types.MsgStake{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Shares: shares,
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

// CmdWithdraw returns a CLI command handler for withdrawing staked shares
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id] [shares]",
		Short: "Withdraw staked LP shares",
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

			msg := &types.MsgWithdraw{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Shares: shares,
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

// CmdClaimReward returns a CLI command handler for claiming streaming rewards
func CmdClaimReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-reward [pool-id]",
		Short: "Claim accrued streaming rewards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgClaimReward{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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

// CmdExit returns a CLI command handler for exiting a stake pool entirely
func CmdExit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exit [pool-id]",
		Short: "Withdraw all staked shares and claim rewards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgExit{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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

// CmdClaimNft returns a CLI command handler for claiming a tier NFT
func CmdClaimNft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-nft [pool-id] [tier]",
		Short: "Claim a tier achievement NFT",
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

			tier, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid tier: %w", err)
			}

			msg := &types.MsgClaimNft{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Tier:   uint32(tier),
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

// CmdNotifyReward returns a CLI command handler for funding a reward period
func CmdNotifyReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify-reward [pool-id] [amount]",
		Short: "Fund a new reward streaming period",
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

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgNotifyReward{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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

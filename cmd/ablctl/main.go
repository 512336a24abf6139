// ablctl inspects and exercises token ACL state off-chain: it decodes raw
// list and wallet-entry record buffers, derives entry addresses and replays
// the program's instruction paths against JSON account fixtures.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Abdullah1738/token-acl/abl"
	"github.com/Abdullah1738/token-acl/solana"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if _, exists := os.LookupEnv("DEBUG"); exists {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	root := &cobra.Command{
		Use:           "ablctl",
		Short:         "Inspect and exercise token ACL lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(decodeCmd(), deriveCmd(), checkCmd(), removeCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode {list|wallet} <data>",
		Short: "Decode a raw record buffer (hex or base58)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseData(args[1])
			if err != nil {
				return err
			}
			switch args[0] {
			case "list":
				cfg, err := abl.LoadListConfig(data)
				if err != nil {
					return fmt.Errorf("decode list config: %w", err)
				}
				fmt.Printf("authority:     %s\n", cfg.Authority)
				fmt.Printf("mode:          %s\n", cfg.Mode())
				fmt.Printf("wallets_count: %d\n", cfg.WalletsCount())
			case "wallet":
				entry, err := abl.LoadWalletEntry(data)
				if err != nil {
					return fmt.Errorf("decode wallet entry: %w", err)
				}
				fmt.Printf("list_config: %s\n", entry.ListConfig)
				fmt.Printf("wallet:      %s\n", entry.Wallet)
			default:
				return fmt.Errorf("unknown record type %q", args[0])
			}
			return nil
		},
	}
	return cmd
}

func deriveCmd() *cobra.Command {
	var programID, list, wallet string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the wallet-entry address for a list/wallet pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := solana.ParsePubkey(programID)
			if err != nil {
				return fmt.Errorf("program: %w", err)
			}
			listKey, err := solana.ParsePubkey(list)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			walletKey, err := solana.ParsePubkey(wallet)
			if err != nil {
				return fmt.Errorf("wallet: %w", err)
			}

			addr, bump, err := abl.WalletEntryAddress(program, listKey, walletKey)
			if err != nil {
				return err
			}
			fmt.Printf("entry: %s\nbump:  %d\n", addr, bump)
			return nil
		},
	}
	cmd.Flags().StringVar(&programID, "program", "", "ACL program id")
	cmd.Flags().StringVar(&list, "list", "", "list config address")
	cmd.Flags().StringVar(&wallet, "wallet", "", "wallet address")
	cmd.MarkFlagRequired("program")
	cmd.MarkFlagRequired("list")
	cmd.MarkFlagRequired("wallet")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <fixture.json>",
		Short: "Run the can-thaw check over an account fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, accounts, err := loadFixture(args[0])
			if err != nil {
				return err
			}

			p := abl.NewProcessor(programID, log)
			if err := p.CanThawPermissionless(accounts); err != nil {
				if ablErr, ok := err.(abl.ABLError); ok {
					fmt.Printf("deny: %s (code %d)\n", ablErr, ablErr.Code())
					return nil
				}
				return err
			}
			fmt.Println("pass")
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <fixture.json>",
		Short: "Replay a wallet removal over an account fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, accounts, err := loadFixture(args[0])
			if err != nil {
				return err
			}

			p := abl.NewProcessor(programID, log)
			if err := p.RemoveWallet(accounts); err != nil {
				if ablErr, ok := err.(abl.ABLError); ok {
					fmt.Printf("fail: %s (code %d)\n", ablErr, ablErr.Code())
					return nil
				}
				return err
			}

			authority, list := accounts[0], accounts[1]
			listData, release, err := list.BorrowData()
			if err != nil {
				return err
			}
			defer release()
			cfg, err := abl.LoadListConfig(listData)
			if err != nil {
				return err
			}
			fmt.Printf("removed\nauthority_lamports: %d\nwallets_count:      %d\n",
				authority.Lamports(), cfg.WalletsCount())
			return nil
		},
	}
}

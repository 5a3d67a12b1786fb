package main

import (
	"context"
	"fmt"
	"strconv"

	"engineprime/facade"

	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage sync-unit pack markers (v1 1.17.0+, and v2/v3)",
}

var packAddCmd = &cobra.Command{
	Use:   "add <pack-id> <change-log-database-uuid>",
	Short: "Record a new pack marker",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		ctx := context.Background()
		db, err := facade.Open(ctx, dir)
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := db.AddPack(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("added pack %d (changeLogId=%d)\n", p.ID, p.ChangeLogID)
		return nil
	},
}

var packTouchCmd = &cobra.Command{
	Use:   "touch <id>",
	Short: "Set a pack's lastPackTime to now (3.1.0+; a no-op on older variants)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid pack id %q: %w", args[0], err)
		}
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		ctx := context.Background()
		db, err := facade.Open(ctx, dir)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.TouchPack(ctx, id)
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.AddCommand(packAddCmd, packTouchCmd)
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"engineprime/facade"

	"github.com/spf13/cobra"
)

var crateCmd = &cobra.Command{
	Use:   "crate",
	Short: "Manage v1 crates (not available on v2/v3 libraries)",
}

var crateAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a top-level crate",
	Args:  cobra.ExactArgs(1),
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

		crate, err := db.AddCrate(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("added crate %d: %s\n", crate.ID, crate.Title)
		return nil
	},
}

var crateLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every crate id",
	Args:  cobra.NoArgs,
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

		ids, err := db.AllCrateIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var crateAddTrackCmd = &cobra.Command{
	Use:   "add-track <crate-id> <track-id>",
	Short: "Add a track to a crate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		crateID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid crate id %q: %w", args[0], err)
		}
		trackID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q: %w", args[1], err)
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
		return db.AddTrackToCrate(ctx, crateID, trackID)
	},
}

var crateTracksCmd = &cobra.Command{
	Use:   "tracks <crate-id>",
	Short: "List a crate's member track ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crateID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid crate id %q: %w", args[0], err)
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

		ids, err := db.CrateTracks(ctx, crateID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crateCmd)
	crateCmd.AddCommand(crateAddCmd, crateLsCmd, crateAddTrackCmd, crateTracksCmd)
}

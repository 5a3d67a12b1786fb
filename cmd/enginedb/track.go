package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"engineprime/entity"
	"engineprime/facade"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Inspect and edit tracks",
}

var trackAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a track by its on-disk path",
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

		snap, err := db.AddTrack(ctx, entity.Track{Path: args[0], Filename: filepath.Base(args[0])})
		if err != nil {
			return err
		}
		fmt.Printf("added track %d: %s\n", snap.ID, snap.Path)
		return nil
	},
}

var trackShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one track's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q: %w", args[0], err)
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

		snap, ok, err := db.Track(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no track with id %d", id)
		}
		fmt.Printf("id:       %d\n", snap.ID)
		fmt.Printf("path:     %s\n", snap.Path)
		fmt.Printf("title:    %s\n", snap.Title)
		fmt.Printf("artist:   %s\n", snap.Artist)
		fmt.Printf("album:    %s\n", snap.Album)
		fmt.Printf("bpm:      %d (analyzed %.2f)\n", snap.BPM, snap.BPMAnalyzed)
		fmt.Printf("analyzed: %v\n", snap.Performance.IsAnalyzed)
		return nil
	},
}

var trackRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid track id %q: %w", args[0], err)
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
		return db.RemoveTrack(ctx, id)
	},
}

var trackLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every track id in the library",
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

		ids, err := db.AllTrackIDs(ctx)
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
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackAddCmd, trackShowCmd, trackRmCmd, trackLsCmd)
}

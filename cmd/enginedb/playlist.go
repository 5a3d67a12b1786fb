package main

import (
	"context"
	"fmt"
	"strconv"

	"engineprime/facade"

	"github.com/spf13/cobra"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Manage v2/v3 playlists (not available on v1 libraries)",
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <title> [parent-id]",
	Short: "Create a playlist, optionally nested under parent-id",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parentID int64
		if len(args) == 2 {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid parent id %q: %w", args[1], err)
			}
			parentID = id
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

		pl, err := db.AddPlaylist(ctx, parentID, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("added playlist %d: %s\n", pl.ID, pl.Title)
		return nil
	},
}

var playlistAddTrackCmd = &cobra.Command{
	Use:   "add-track <playlist-id> <track-id> <database-uuid>",
	Short: "Append a track to a playlist's chain",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		playlistID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid playlist id %q: %w", args[0], err)
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

		_, err = db.AddTrackToPlaylist(ctx, playlistID, trackID, args[2])
		return err
	},
}

var playlistTracksCmd = &cobra.Command{
	Use:   "tracks <playlist-id>",
	Short: "List a playlist's member track ids in chain order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		playlistID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid playlist id %q: %w", args[0], err)
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

		ids, err := db.PlaylistTracks(ctx, playlistID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var playlistChildrenCmd = &cobra.Command{
	Use:   "children <playlist-id>",
	Short: "List a playlist's direct child playlist ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid playlist id %q: %w", args[0], err)
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

		children, err := db.PlaylistChildren(ctx, id)
		if err != nil {
			return err
		}
		for _, c := range children {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.AddCommand(playlistAddCmd, playlistAddTrackCmd, playlistTracksCmd, playlistChildrenCmd)
}

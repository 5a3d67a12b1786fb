package main

import (
	"context"
	"fmt"

	"engineprime/facade"
	"engineprime/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createVariant string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new library at --dir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		variant, err := parseVariant(createVariant)
		if err != nil {
			return err
		}

		db, err := facade.Create(context.Background(), dir, variant)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Info("created library", zap.String("dir", dir), zap.Stringer("variant", db.Variant()))
		fmt.Printf("created %s library (%s) at %s\n", db.Layout(), db.Variant(), dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createVariant, "variant", schema.V3_1_0.String(), "schema variant, e.g. 1.17.0, 2.18.0, 3.1.0")
}

// parseVariant resolves a "major.minor.patch" string to its Variant,
// defaulting the ambiguous 1.18.0 split to the desktop layout.
func parseVariant(s string) (schema.Variant, error) {
	var major, minor, patch int
	if _, err := fmt.Sscanf(s, "%d.%d.%d", &major, &minor, &patch); err != nil {
		return schema.Variant{}, fmt.Errorf("invalid --variant %q: expected major.minor.patch", s)
	}
	return schema.Lookup(major, minor, patch)
}

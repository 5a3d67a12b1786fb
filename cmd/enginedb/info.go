package main

import (
	"context"
	"fmt"

	"engineprime/facade"
	"engineprime/schema"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the library's layout, schema variant and Information row",
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

		fmt.Printf("dir:     %s\n", db.Directory())
		fmt.Printf("layout:  %s\n", db.Layout())
		fmt.Printf("variant: %s\n", db.Variant())

		info, err := db.Information(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("uuid:    %s\n", info.UUID)
		fmt.Printf("schema:  %d.%d.%d\n", info.SchemaVersionMajor, info.SchemaVersionMinor, info.SchemaVersionPatch)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the opened database's catalogue against its schema variant",
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

		if err := db.Verify(ctx); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		fmt.Println("ok")
		return nil
	},
}

var listVariantsCmd = &cobra.Command{
	Use:   "list-variants",
	Short: "List every known schema variant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, v := range schema.All() {
			gen := "v1"
			if v.Generation() == schema.GenerationV2 {
				gen = "v2"
			}
			fmt.Printf("%s (%s)\n", v, gen)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listVariantsCmd)
}

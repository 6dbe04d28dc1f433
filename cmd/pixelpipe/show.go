package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <image-id>",
	Short: "Show an image's resolved pipeline order",
	Long: `Show resolves the image's order from the database (falling back to the
configured default table) and renders it as a table, one row per module in
rank order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, resolved := loadDocument(store, imageID)
		r := newRenderer()

		fmt.Println(r.OrderSummary(doc, resolved))
		table, err := r.OrderTable(doc)
		if err != nil {
			return err
		}
		fmt.Print(table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

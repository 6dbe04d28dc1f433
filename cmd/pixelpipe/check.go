package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/audit"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/rules"
)

var checkRepair bool

var checkCmd = &cobra.Command{
	Use:   "check <image-id>",
	Short: "Audit an image's pipeline order for consistency",
	Long: `Check verifies the image's resolved order: terminal anchor in place,
every enabled module ranked, ranks strictly increasing, and every precedence
rule and fence honored. With --repair, adjacent modules sharing a rank are
renumbered where that is safe.`,
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

		doc, _ := loadDocument(store, imageID)
		checker := audit.NewChecker(rules.DefaultCatalog())
		r := newRenderer()

		if checkRepair {
			if !checker.DeduplicateAdjacentRanks(doc) {
				fmt.Println(r.AuditResult(false))
				return errors.Newf(errors.ErrInternal, "image %d has unrepairable duplicate ranks", imageID)
			}
			if err := pipeline.SaveOrder(store, doc); err != nil {
				return err
			}
		}

		ok := checker.Check(doc)
		fmt.Println(r.AuditResult(ok))
		if !ok {
			return errors.Newf(errors.ErrInternal, "image %d order inconsistent", imageID)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkRepair, "repair", false, "Renumber safe duplicate ranks before checking")
	rootCmd.AddCommand(checkCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/move"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/rules"
)

var (
	moveBefore string
	moveAfter  string
	moveDryRun bool
)

var moveCmd = &cobra.Command{
	Use:   "move <image-id> <operation[,instance]>",
	Short: "Move a module before or after another",
	Long: `Move re-inserts a module elsewhere in the image's pipeline, subject to
precedence rules and fences. Exactly one of --before or --after selects the
destination. Module specs name an operation with an optional instance, e.g.
"exposure" or "exposure,2".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (moveBefore == "") == (moveAfter == "") {
			return errors.New(errors.ErrInvalidInput, "exactly one of --before or --after is required")
		}

		imageID, err := parseImageID(args[0])
		if err != nil {
			return err
		}
		modOp, modInstance, err := parseModuleSpec(args[1])
		if err != nil {
			return err
		}
		targetSpec := moveBefore
		if targetSpec == "" {
			targetSpec = moveAfter
		}
		targetOp, targetInstance, err := parseModuleSpec(targetSpec)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		doc, _ := loadDocument(store, imageID)
		mod := doc.Module(modOp, modInstance)
		if mod == nil {
			return errors.Newf(errors.ErrNotFound, "module %s,%d not in pipeline", modOp, modInstance)
		}
		target := doc.Module(targetOp, targetInstance)
		if target == nil {
			return errors.Newf(errors.ErrNotFound, "module %s,%d not in pipeline", targetOp, targetInstance)
		}

		engine := move.NewEngine(rules.DefaultCatalog())
		r := newRenderer()

		if moveDryRun {
			feasible := engine.CanMoveBefore(doc, mod, target)
			if moveAfter != "" {
				// Probe by running the move on a scratch copy
				scratch := pipeline.NewDocument(imageID, doc.Order.Copy())
				feasible = engine.MoveAfter(scratch,
					scratch.Module(modOp, modInstance), scratch.Module(targetOp, targetInstance))
			}
			fmt.Println(r.MoveResult(feasible))
			return nil
		}

		var changed bool
		if moveBefore != "" {
			changed = engine.MoveBefore(doc, mod, target)
		} else {
			changed = engine.MoveAfter(doc, mod, target)
		}

		if changed {
			if err := pipeline.SaveOrder(store, doc); err != nil {
				return err
			}
		}
		fmt.Println(r.MoveResult(changed))
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveBefore, "before", "", "Destination module the moved one lands in front of")
	moveCmd.Flags().StringVar(&moveAfter, "after", "", "Destination module the moved one lands behind")
	moveCmd.Flags().BoolVarP(&moveDryRun, "dry-run", "n", false, "Check feasibility without persisting")
	rootCmd.AddCommand(moveCmd)
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/healthtrack/backend/internal/planner"
)

type gramFlags struct {
	protein, carbs, fat string
}

func (f *gramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.protein, "protein", "", "protein in grams")
	cmd.Flags().StringVar(&f.carbs, "carbs", "", "carbohydrates in grams")
	cmd.Flags().StringVar(&f.fat, "fat", "", "fat in grams")
}

func (f *gramFlags) plan() planner.ManualPlan {
	return planner.NewManualPlan(planner.ParseGrams(f.protein), planner.ParseGrams(f.carbs), planner.ParseGrams(f.fat))
}

func newMacrosCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macros",
		Short: "Work with manually entered macro grams",
	}
	cmd.AddCommand(newMacrosDeriveCmd(opts), newMacrosCheckCmd(opts))
	return cmd
}

func newMacrosDeriveCmd(opts *options) *cobra.Command {
	var grams gramFlags

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Calories implied by macro grams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := grams.plan()
			return render(cmd.OutOrStdout(), opts.output, p, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "%d kcal\n", p.Calories)
				return err
			})
		},
	}
	grams.register(cmd)
	return cmd
}

func newMacrosCheckCmd(opts *options) *cobra.Command {
	var (
		grams    gramFlags
		calories string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare a calorie target with macro grams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check := grams.plan().SetCalories(planner.ParseGrams(calories)).Check()
			return render(cmd.OutOrStdout(), opts.output, check, func(out io.Writer) error {
				if check.Warning != "" {
					_, err := fmt.Fprintln(out, check.Warning)
					return err
				}
				_, err := fmt.Fprintf(out, "Macros match the target of %d kcal\n", check.EnteredCalories)
				return err
			})
		},
	}
	grams.register(cmd)
	cmd.Flags().StringVar(&calories, "calories", "", "stated calorie target")
	return cmd
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/healthtrack/backend/internal/planner"
)

type bodyFlags struct {
	weight, height, age, sex, activity string
}

func (f *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.weight, "weight", "", "body weight in pounds")
	cmd.Flags().StringVar(&f.height, "height", "", "height in inches")
	cmd.Flags().StringVar(&f.age, "age", "", "age in years")
	cmd.Flags().StringVar(&f.sex, "sex", "", "male or female")
	cmd.Flags().StringVar(&f.activity, "activity", "", "sedentary, light, moderate, active or very_active")
}

func (f *bodyFlags) parse() (planner.Biometrics, planner.ActivityLevel, error) {
	b, err := planner.ParseBiometrics(f.weight, f.height, f.age, f.sex)
	if err != nil {
		return planner.Biometrics{}, "", err
	}
	level, err := planner.ParseActivityLevel(f.activity)
	if err != nil {
		return planner.Biometrics{}, "", err
	}
	return b, level, nil
}

func newBMICmd(opts *options) *cobra.Command {
	var weight, height string

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body mass index and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := planner.ParseMeasurement(weight)
			if err != nil {
				return userError(err)
			}
			h, err := planner.ParseMeasurement(height)
			if err != nil {
				return userError(err)
			}
			res, err := planner.ComputeBMI(w, h)
			if err != nil {
				return userError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, res, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "BMI: %.1f (%s)\n", res.BMI, res.Category)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "body weight in pounds")
	cmd.Flags().StringVar(&height, "height", "", "height in inches")
	return cmd
}

func newBodyCmd(opts *options) *cobra.Command {
	var flags bodyFlags

	cmd := &cobra.Command{
		Use:   "body",
		Short: "BMI, basal metabolic rate and daily energy expenditure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, level, err := flags.parse()
			if err != nil {
				return userError(err)
			}
			m, err := planner.ComputeBodyMetrics(b, level)
			if err != nil {
				return userError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, m, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "BMI: %.1f (%s)\nBMR: %.0f kcal/day\nTDEE: %.0f kcal/day\n",
					m.BMI, m.Category, m.BMR, m.TDEE)
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newPlanCmd(opts *options) *cobra.Command {
	var (
		flags bodyFlags
		goal  string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Goal-based calorie target and macro split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, level, err := flags.parse()
			if err != nil {
				return userError(err)
			}
			g, err := planner.ParseGoal(goal)
			if err != nil {
				return userError(err)
			}
			plan, err := planner.ComputeEnergyPlan(b, level, g)
			if err != nil {
				return userError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, plan, func(out io.Writer) error {
				_, err := fmt.Fprintf(out,
					"Calories: %d kcal/day\nProtein: %d g\nCarbs: %d g\nFat: %d g\n",
					plan.TotalCalories, plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fat)
				return err
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&goal, "goal", "", "cut, maintain or bulk")
	return cmd
}

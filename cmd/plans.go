package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/mapper"
	"github.com/vibast-solutions/gym-console/app/types"
)

var (
	planName        string
	planDuration    int
	planPrice       float64
	planDescription string
	planStatus      string
	planActiveOnly  bool
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage membership plans",
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &types.CreatePlanRequest{
			Name:        planName,
			Duration:    planDuration,
			Price:       planPrice,
			Description: optionalString(planDescription),
		}
		if planStatus != "" {
			status := types.PlanStatus(planStatus)
			req.Status = &status
		}

		c := mustCreateConsole()
		defer c.Close()

		var plan *types.Plan
		err := c.load(cmd.Context(), "/plans/new", func(ctx context.Context) error {
			var err error
			plan, err = c.plans.Create(ctx, req)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), plan, mapper.PlansToTable([]types.Plan{*plan}))
	},
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var plans []types.Plan
		err := c.load(cmd.Context(), "/plans", func(ctx context.Context) error {
			var err error
			if planActiveOnly {
				plans, err = c.plans.ListActive(ctx)
			} else {
				plans, err = c.plans.List(ctx)
			}
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), plans, mapper.PlansToTable(plans))
	},
}

var plansGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var plan *types.Plan
		err := c.load(cmd.Context(), "/plans/"+args[0], func(ctx context.Context) error {
			var err error
			plan, err = c.plans.GetByID(ctx, args[0])
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), plan, mapper.PlansToTable([]types.Plan{*plan}))
	},
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a plan; only the flags given are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &types.UpdatePlanRequest{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			req.Name = &planName
		}
		if flags.Changed("duration") {
			req.Duration = &planDuration
		}
		if flags.Changed("price") {
			req.Price = &planPrice
		}
		if flags.Changed("description") {
			req.Description = &planDescription
		}
		if flags.Changed("status") {
			status := types.PlanStatus(planStatus)
			req.Status = &status
		}

		c := mustCreateConsole()
		defer c.Close()

		var plan *types.Plan
		err := c.load(cmd.Context(), "/plans/"+args[0]+"/edit", func(ctx context.Context) error {
			var err error
			plan, err = c.plans.Update(ctx, args[0], req)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), plan, mapper.PlansToTable([]types.Plan{*plan}))
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := mustCreateConsole()
		defer c.Close()

		err := c.load(cmd.Context(), "/plans/"+args[0]+"/delete", func(ctx context.Context) error {
			return c.plans.Delete(ctx, args[0])
		})
		if err != nil {
			return err
		}
		message := fmt.Sprintf("Plan %s deleted.", args[0])
		return printResult(cmd.OutOrStdout(), &types.MessageResponse{Message: message}, renderFunc(func(w io.Writer) error {
			_, err := fmt.Fprintln(w, message)
			return err
		}))
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
	plansCmd.AddCommand(plansCreateCmd, plansListCmd, plansGetCmd, plansUpdateCmd, plansDeleteCmd)

	for _, sub := range []*cobra.Command{plansCreateCmd, plansUpdateCmd} {
		sub.Flags().StringVar(&planName, "name", "", "Plan name")
		sub.Flags().IntVar(&planDuration, "duration", 0, "Billing period in days")
		sub.Flags().Float64Var(&planPrice, "price", 0, "Price")
		sub.Flags().StringVar(&planDescription, "description", "", "Description")
		sub.Flags().StringVar(&planStatus, "status", "", "Status (ACTIVE or INACTIVE)")
	}
	plansListCmd.Flags().BoolVar(&planActiveOnly, "active", false, "Only list ACTIVE plans")
}

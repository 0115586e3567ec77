package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/mapper"
	"github.com/vibast-solutions/gym-console/app/types"
	"github.com/vibast-solutions/gym-console/app/view"
)

var (
	contractStudentID string
	contractPlanID    string
	contractStartDate string
	contractStatus    string
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "Manage student contracts",
}

var contractsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Sign a student to a plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &types.CreateContractRequest{
			StudentID: contractStudentID,
			PlanID:    contractPlanID,
			StartDate: contractStartDate,
		}
		if contractStatus != "" {
			status := types.ContractStatus(contractStatus)
			req.Status = &status
		}

		c := mustCreateConsole()
		defer c.Close()

		var contract *types.Contract
		err := c.load(cmd.Context(), "/contracts/new", func(ctx context.Context) error {
			var err error
			contract, err = c.contracts.Create(ctx, req)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), contract, mapper.ContractActions(contract))
	},
}

var contractsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var contract *types.Contract
		err := c.load(cmd.Context(), "/contracts/"+args[0], func(ctx context.Context) error {
			var err error
			contract, err = c.contracts.GetByID(ctx, args[0])
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), contract, renderAll(
			mapper.ContractsToTable([]types.Contract{*contract}),
			mapper.ContractActions(contract),
		))
	},
}

var contractsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the contracts of a student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var contracts []types.Contract
		err := c.load(cmd.Context(), "/students/"+contractStudentID+"/contracts", func(ctx context.Context) error {
			var err error
			contracts, err = c.contracts.GetByStudent(ctx, contractStudentID)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), contracts, mapper.ContractsToTable(contracts))
	},
}

var contractsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active contract of a student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var contract *types.Contract
		err := c.load(cmd.Context(), "/students/"+contractStudentID+"/active-contract", func(ctx context.Context) error {
			var err error
			contract, err = c.contracts.GetActiveByStudent(ctx, contractStudentID)
			return err
		})
		if err != nil {
			return err
		}
		if contract == nil {
			return printResult(cmd.OutOrStdout(), map[string]interface{}{"contract": nil}, renderFunc(func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Student %s has no active contract.\n", contractStudentID)
				return err
			}))
		}
		return printResult(cmd.OutOrStdout(), map[string]interface{}{"contract": contract}, renderAll(
			mapper.ContractsToTable([]types.Contract{*contract}),
			mapper.ContractActions(contract),
		))
	},
}

var contractsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count active contracts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var count int64
		err := c.load(cmd.Context(), "/contracts/active/count", func(ctx context.Context) error {
			var err error
			count, err = c.contracts.GetActiveCount(ctx)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), &types.CountResponse{Count: count}, view.MetricCard{
			Title: "Active Contracts",
			Value: count,
		})
	},
}

func init() {
	rootCmd.AddCommand(contractsCmd)
	contractsCmd.AddCommand(contractsCreateCmd, contractsGetCmd, contractsListCmd, contractsActiveCmd, contractsCountCmd)

	contractsCreateCmd.Flags().StringVar(&contractStudentID, "student", "", "Student id")
	contractsCreateCmd.Flags().StringVar(&contractPlanID, "plan", "", "Plan id")
	contractsCreateCmd.Flags().StringVar(&contractStartDate, "start", "", "Start date (RFC3339)")
	contractsCreateCmd.Flags().StringVar(&contractStatus, "status", "", "Initial status (ACTIVE, PENDING, EXPIRED, CANCELLED)")

	for _, sub := range []*cobra.Command{contractsListCmd, contractsActiveCmd} {
		sub.Flags().StringVar(&contractStudentID, "student", "", "Student id")
		_ = sub.MarkFlagRequired("student")
	}
}

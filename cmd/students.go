package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/mapper"
	"github.com/vibast-solutions/gym-console/app/service"
	"github.com/vibast-solutions/gym-console/app/types"
)

var (
	studentName      string
	studentEmail     string
	studentPhone     string
	studentBirthDate string
	studentStatus    string
	studentSearch    string
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage students",
}

var studentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &types.CreateStudentRequest{
			Name:      studentName,
			Email:     studentEmail,
			Phone:     optionalString(studentPhone),
			BirthDate: optionalString(studentBirthDate),
		}

		c := mustCreateConsole()
		defer c.Close()

		var student *types.Student
		err := c.load(cmd.Context(), "/students/new", func(ctx context.Context) error {
			var err error
			student, err = c.students.Create(ctx, req)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), student, mapper.StudentsToTable([]types.Student{*student}))
	},
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var students []types.Student
		err := c.load(cmd.Context(), "/students", func(ctx context.Context) error {
			var err error
			students, err = c.students.List(ctx, studentSearch)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), students, mapper.StudentsToTable(students))
	},
}

var studentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a student with the active contract and check-in history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var overview *service.StudentOverview
		err := c.load(cmd.Context(), "/students/"+args[0], func(ctx context.Context) error {
			var err error
			overview, err = c.overview.Overview(ctx, args[0])
			return err
		})
		if err != nil {
			return err
		}

		contracts := mapper.ContractsToTable(nil)
		contracts.Empty = "No active contract."
		if overview.ActiveContract != nil {
			contracts = mapper.ContractsToTable([]types.Contract{*overview.ActiveContract})
		}
		return printResult(cmd.OutOrStdout(), overview, renderAll(
			mapper.StudentsToTable([]types.Student{*overview.Student}),
			contracts,
			mapper.CheckinsToTable(overview.Checkins),
			mapper.ContractActions(overview.ActiveContract),
		))
	},
}

var studentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student; only the flags given are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &types.UpdateStudentRequest{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			req.Name = &studentName
		}
		if flags.Changed("email") {
			req.Email = &studentEmail
		}
		if flags.Changed("phone") {
			req.Phone = &studentPhone
		}
		if flags.Changed("status") {
			status := types.StudentStatus(studentStatus)
			req.Status = &status
		}

		c := mustCreateConsole()
		defer c.Close()

		var student *types.Student
		err := c.load(cmd.Context(), "/students/"+args[0]+"/edit", func(ctx context.Context) error {
			var err error
			student, err = c.students.Update(ctx, args[0], req)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), student, mapper.StudentsToTable([]types.Student{*student}))
	},
}

func init() {
	rootCmd.AddCommand(studentsCmd)
	studentsCmd.AddCommand(studentsCreateCmd, studentsListCmd, studentsGetCmd, studentsUpdateCmd)

	for _, sub := range []*cobra.Command{studentsCreateCmd, studentsUpdateCmd} {
		sub.Flags().StringVar(&studentName, "name", "", "Full name")
		sub.Flags().StringVar(&studentEmail, "email", "", "Email address")
		sub.Flags().StringVar(&studentPhone, "phone", "", "Phone number")
	}
	studentsCreateCmd.Flags().StringVar(&studentBirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	studentsUpdateCmd.Flags().StringVar(&studentStatus, "status", "", "Status (ACTIVE or INACTIVE)")
	studentsListCmd.Flags().StringVar(&studentSearch, "search", "", "Filter by name or email")
}

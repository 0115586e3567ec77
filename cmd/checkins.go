package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/mapper"
	"github.com/vibast-solutions/gym-console/app/types"
)

var checkinStudentID string

var checkinsCmd = &cobra.Command{
	Use:   "checkins",
	Short: "Register and authorize check-ins",
}

var checkinsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a check-in for a student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var checkin *types.Checkin
		err := c.load(cmd.Context(), "/checkins/new", func(ctx context.Context) error {
			var err error
			checkin, err = c.checkins.Create(ctx, &types.CreateCheckinRequest{StudentID: checkinStudentID})
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), checkin, mapper.CheckinActions(checkin))
	},
}

var checkinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the check-ins of a student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var checkins []types.Checkin
		err := c.load(cmd.Context(), "/students/"+checkinStudentID+"/checkins", func(ctx context.Context) error {
			var err error
			checkins, err = c.checkins.GetByStudent(ctx, checkinStudentID)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), checkins, mapper.CheckinsToTable(checkins))
	},
}

var checkinsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List check-ins waiting for authorization",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		var checkins []types.Checkin
		err := c.load(cmd.Context(), "/checkins/pending", func(ctx context.Context) error {
			var err error
			checkins, err = c.checkins.ListPending(ctx)
			return err
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), checkins, mapper.CheckinsToTable(checkins))
	},
}

// newCheckinTransitionCmd builds authorize and reject, which differ only in
// the client call.
func newCheckinTransitionCmd(action, short string, transition func(c *console, ctx context.Context, id string) (*types.Checkin, error)) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := mustCreateConsole()
			defer c.Close()

			var checkin *types.Checkin
			err := c.load(cmd.Context(), "/checkins/"+args[0]+"/"+action, func(ctx context.Context) error {
				var err error
				checkin, err = transition(c, ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), checkin, mapper.CheckinsToTable([]types.Checkin{*checkin}))
		},
	}
}

func init() {
	rootCmd.AddCommand(checkinsCmd)
	checkinsCmd.AddCommand(
		checkinsCreateCmd,
		checkinsListCmd,
		checkinsPendingCmd,
		newCheckinTransitionCmd("authorize", "Authorize a pending check-in", func(c *console, ctx context.Context, id string) (*types.Checkin, error) {
			return c.checkins.Authorize(ctx, id)
		}),
		newCheckinTransitionCmd("reject", "Reject a pending check-in", func(c *console, ctx context.Context, id string) (*types.Checkin, error) {
			return c.checkins.Reject(ctx, id)
		}),
	)

	for _, sub := range []*cobra.Command{checkinsCreateCmd, checkinsListCmd} {
		sub.Flags().StringVar(&checkinStudentID, "student", "", "Student id")
		_ = sub.MarkFlagRequired("student")
	}
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/guard"
	"github.com/coosanta-bit/medi/pkg/pagination"
	"github.com/coosanta-bit/medi/pkg/validator"
)

func (c *CLI) newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderation console (elevated roles only)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return c.requireSection(guard.Admin, "/admin")
		},
	}

	moderation := &cobra.Command{Use: "moderation", Short: "Job post moderation"}
	moderation.AddCommand(
		c.newModerationListCommand(),
		c.newModerationBlindCommand(),
		c.newModerationUnblindCommand(),
	)

	cmd.AddCommand(
		c.newAdminDashboardCommand(),
		c.newAdminVerificationCommands(),
		c.newAdminReportCommands(),
		moderation,
		c.newAdminUserCommands(),
		c.newAdminLogsCommand(),
	)
	return cmd
}

func (c *CLI) newAdminDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the moderation summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := c.app.Clients.Admin.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(dash, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "PENDING VERIFICATIONS\t%d\n", dash.PendingVerifications)
				fmt.Fprintf(w, "PENDING REPORTS\t%d\n", dash.PendingReports)
				fmt.Fprintf(w, "PUBLISHED JOBS\t%d\n", dash.PublishedJobs)
				fmt.Fprintf(w, "TOTAL USERS\t%d\n", dash.TotalUsers)
				fmt.Fprintf(w, "TODAY APPLICATIONS\t%d\n", dash.TodayApplications)
			})
		},
	}
}

func (c *CLI) newAdminVerificationCommands() *cobra.Command {
	cmd := &cobra.Command{Use: "verifications", Short: "Review employer verifications"}

	var status string
	page := pagination.Default()
	list := &cobra.Command{
		Use:   "list",
		Short: "List verification requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Admin.ListVerifications(
				cmd.Context(), domain.VerificationStatus(status), page)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tCOMPANY\tBUSINESS NO\tSTATUS\tSUBMITTED")
				for _, v := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						v.ID, deref(v.CompanyName), deref(v.CompanyBusinessNo), v.Status,
						v.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status")
	list.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.AddCommand(list)

	var decision, reason string
	review := &cobra.Command{
		Use:   "review <verification-id>",
		Short: "Approve or reject a verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.VerificationReviewInput{
				Status:       domain.VerificationStatus(decision),
				RejectReason: reason,
			}
			if err := validator.Validate(input); err != nil {
				return err
			}
			v, err := c.app.Clients.Admin.ReviewVerification(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "verification %s is now %s\n", v.ID, v.Status)
			return nil
		},
	}
	review.Flags().StringVar(&decision, "set", "", "APPROVED or REJECTED")
	review.Flags().StringVar(&reason, "reason", "", "rejection reason")
	_ = review.MarkFlagRequired("set")
	cmd.AddCommand(review)

	return cmd
}

func (c *CLI) newAdminReportCommands() *cobra.Command {
	cmd := &cobra.Command{Use: "reports", Short: "Review user reports"}

	var status string
	page := pagination.Default()
	list := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Admin.ListReports(cmd.Context(), status, page)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTARGET\tREASON\tSTATUS\tFILED")
				for _, r := range result.Items {
					fmt.Fprintf(w, "%s\t%s/%s\t%s\t%s\t%s\n",
						r.ID, r.TargetType, r.TargetID, r.ReasonCode, r.Status,
						r.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status")
	list.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.AddCommand(list)

	var resolution string
	update := &cobra.Command{
		Use:   "update <report-id>",
		Short: "Resolve or dismiss a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.ReportUpdateInput{Status: resolution}
			if err := validator.Validate(input); err != nil {
				return err
			}
			r, err := c.app.Clients.Admin.UpdateReport(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "report %s is now %s\n", r.ID, r.Status)
			return nil
		},
	}
	update.Flags().StringVar(&resolution, "set", "", "RESOLVED or DISMISSED")
	_ = update.MarkFlagRequired("set")
	cmd.AddCommand(update)

	return cmd
}

func (c *CLI) newModerationListCommand() *cobra.Command {
	page := pagination.Default()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job posts in the moderation queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Admin.ListJobModeration(cmd.Context(), page)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tSTATUS\tREPORTS")
				for _, j := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
						j.ID, j.Title, deref(j.CompanyName), j.Status, j.ReportCount)
				}
			})
		},
	}

	cmd.Flags().IntVar(&page.Page, "page", 1, "page number")
	return cmd
}

func (c *CLI) newModerationBlindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "blind <job-id>",
		Short: "Hide a job post from the public board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Clients.Admin.BlindJob(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "job blinded")
			return nil
		},
	}
}

func (c *CLI) newModerationUnblindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unblind <job-id>",
		Short: "Restore a blinded job post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Clients.Admin.UnblindJob(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "job restored")
			return nil
		},
	}
}

func (c *CLI) newAdminUserCommands() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage accounts"}

	var query string
	page := pagination.Default()
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Admin.ListUsers(cmd.Context(), query, page)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tEMAIL\tTYPE\tROLE\tSTATUS")
				for _, u := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Type, u.Role, u.Status)
				}
			})
		},
	}
	list.Flags().StringVar(&query, "query", "", "search by email")
	list.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.AddCommand(list)

	var status string
	updateStatus := &cobra.Command{
		Use:   "status <user-id>",
		Short: "Change an account's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.UserStatusInput{Status: domain.UserStatus(status)}
			if err := validator.Validate(input); err != nil {
				return err
			}
			u, err := c.app.Clients.Admin.UpdateUserStatus(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "user %s is now %s\n", u.ID, u.Status)
			return nil
		},
	}
	updateStatus.Flags().StringVar(&status, "set", "", "new account status")
	_ = updateStatus.MarkFlagRequired("set")
	cmd.AddCommand(updateStatus)

	return cmd
}

func (c *CLI) newAdminLogsCommand() *cobra.Command {
	page := pagination.Default()

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the admin audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Admin.ListLogs(cmd.Context(), page)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "WHEN\tADMIN\tACTION\tTARGET")
				for _, l := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s\n",
						l.CreatedAt.Format("2006-01-02 15:04"), l.AdminUserID, l.Action,
						deref(l.TargetType), deref(l.TargetID))
				}
			})
		},
	}

	cmd.Flags().IntVar(&page.Page, "page", 1, "page number")
	return cmd
}

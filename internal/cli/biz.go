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

func (c *CLI) newBizCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "biz",
		Short: "Employer area: postings, applicants, talents, scouts, verification",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return c.requireSection(guard.Employer, "/biz")
		},
	}

	jobs := &cobra.Command{Use: "jobs", Short: "Manage job postings"}
	jobs.AddCommand(
		c.newBizJobListCommand(),
		c.newBizJobCreateCommand(),
		c.newBizJobUpdateCommand(),
		c.newBizJobPublishCommand(),
		c.newBizJobCloseCommand(),
	)

	applicants := &cobra.Command{Use: "applicants", Short: "Track applicants"}
	applicants.AddCommand(
		c.newApplicantListCommand(),
		c.newApplicantShowCommand(),
		c.newApplicantStatusCommand(),
		c.newApplicantNoteCommand(),
	)

	scouts := &cobra.Command{Use: "scouts", Short: "Scout offers you have sent"}
	scouts.AddCommand(c.newBizScoutListCommand(), c.newBizScoutSendCommand())

	cmd.AddCommand(
		c.newBizDashboardCommand(),
		jobs,
		applicants,
		c.newTalentsCommand(),
		scouts,
		c.newVerifyCommand(),
		c.newReportCommand(),
	)
	return cmd
}

func (c *CLI) newBizDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the employer dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := c.app.Clients.Biz.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(dash, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ACTIVE JOBS\t%d\n", dash.ActiveJobs)
				fmt.Fprintf(w, "TOTAL APPLICANTS\t%d\n", dash.TotalApplicants)
				fmt.Fprintf(w, "NEW APPLICANTS\t%d\n", dash.NewApplicants)
				fmt.Fprintf(w, "CREDIT BALANCE\t%d\n", dash.CreditBalance)
			})
		},
	}
}

func (c *CLI) newBizJobListCommand() *cobra.Command {
	page := pagination.Default()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your job postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Biz.ListJobs(cmd.Context(), page)
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tVIEWS")
				for _, job := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", job.ID, job.Title, job.Status, job.ViewCount)
				}
			})
		},
	}

	cmd.Flags().IntVar(&page.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&page.Size, "size", 20, "page size")
	return cmd
}

func (c *CLI) newBizJobCreateCommand() *cobra.Command {
	input := domain.JobPostInput{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft job posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(input); err != nil {
				return err
			}
			job, err := c.app.Clients.Biz.CreateJob(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "draft created: %s\n", job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "posting title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *CLI) newBizJobUpdateCommand() *cobra.Command {
	input := domain.JobPostInput{}

	cmd := &cobra.Command{
		Use:   "update <job-id>",
		Short: "Update a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(input); err != nil {
				return err
			}
			job, err := c.app.Clients.Biz.UpdateJob(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "updated: %s\n", job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "posting title")
	return cmd
}

func (c *CLI) newBizJobPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <job-id>",
		Short: "Publish a draft posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.app.Clients.Biz.PublishJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "published: %s\n", job.ID)
			return nil
		},
	}
}

func (c *CLI) newBizJobCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close <job-id>",
		Short: "Close a published posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.app.Clients.Biz.CloseJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "closed: %s\n", job.ID)
			return nil
		},
	}
}

func (c *CLI) newApplicantListCommand() *cobra.Command {
	var jobID, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applicants to your postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Biz.ListApplicants(
				cmd.Context(), jobID, domain.ApplicationStatus(status))
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tAPPLICANT\tJOB\tSTATUS\tAPPLIED")
				for _, a := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						a.ID, deref(a.ApplicantName), deref(a.JobTitle), a.Status,
						a.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	}

	cmd.Flags().StringVar(&jobID, "job", "", "filter by job posting id")
	cmd.Flags().StringVar(&status, "status", "", "filter by application status")
	return cmd
}

func (c *CLI) newApplicantShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show one applicant with history and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.Clients.Biz.GetApplicant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(detail, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "APPLICANT\t%s\n", deref(detail.ApplicantName))
				fmt.Fprintf(w, "JOB\t%s\n", deref(detail.JobTitle))
				fmt.Fprintf(w, "STATUS\t%s\n", detail.Status)
				fmt.Fprintln(w, "\nNOTES")
				for _, n := range detail.Notes {
					fmt.Fprintf(w, "%s\t%s\n", n.CreatedAt.Format("2006-01-02"), n.Note)
				}
			})
		},
	}
}

func (c *CLI) newApplicantStatusCommand() *cobra.Command {
	input := domain.ApplicantStatusInput{}
	var status string

	cmd := &cobra.Command{
		Use:   "status <application-id>",
		Short: "Move an applicant through the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Status = domain.ApplicationStatus(status)
			if err := validator.Validate(input); err != nil {
				return err
			}
			detail, err := c.app.Clients.Biz.UpdateApplicantStatus(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "application %s is now %s\n", detail.ID, detail.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "set", "", "new status")
	cmd.Flags().StringVar(&input.Note, "note", "", "optional note for the history")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func (c *CLI) newApplicantNoteCommand() *cobra.Command {
	input := domain.ApplicantNoteInput{}

	cmd := &cobra.Command{
		Use:   "note <application-id>",
		Short: "Add an internal note to an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(input); err != nil {
				return err
			}
			note, err := c.app.Clients.Biz.AddApplicantNote(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "note added: %s\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Note, "text", "", "note text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func (c *CLI) newTalentsCommand() *cobra.Command {
	params := domain.TalentSearchParams{}

	cmd := &cobra.Command{
		Use:   "talents",
		Short: "Search public resumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Biz.SearchTalents(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tDESIRED JOB\tREGION\tEXPERIENCED\tLICENSES")
				for _, t := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\n",
						t.ID, deref(t.DesiredJob), deref(t.DesiredRegion),
						t.IsExperienced, len(t.LicenseTypes))
				}
			})
		},
	}

	cmd.Flags().StringVar(&params.DesiredJob, "job", "", "desired job filter")
	cmd.Flags().StringVar(&params.DesiredRegion, "region", "", "desired region filter")
	cmd.Flags().StringVar(&params.LicenseType, "license", "", "license type filter")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Size, "size", 20, "page size")
	return cmd
}

func (c *CLI) newBizScoutListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sent scout offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Biz.ListScouts(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tJOB\tSTATUS\tSENT")
				for _, s := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						s.ID, deref(s.JobTitle), s.Status, s.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	}
}

func (c *CLI) newBizScoutSendCommand() *cobra.Command {
	input := domain.ScoutCreateInput{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a scout offer to a public resume",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(input); err != nil {
				return err
			}
			scout, err := c.app.Clients.Biz.SendScout(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "scout sent: %s\n", scout.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.ResumeID, "resume", "", "target resume id")
	cmd.Flags().StringVar(&input.JobPostID, "job", "", "related job posting id")
	cmd.Flags().StringVar(&input.Message, "message", "", "message to the candidate")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

func (c *CLI) newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "verify", Short: "Business verification"}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show your verification request",
		RunE: func(cmd *cobra.Command, args []string) error {
			verification, err := c.app.Clients.Biz.GetVerification(cmd.Context())
			if err != nil {
				return err
			}
			if verification == nil {
				fmt.Fprintln(c.out, "no verification request submitted")
				return nil
			}
			return c.render(verification, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "STATUS\t%s\n", verification.Status)
				if verification.RejectReason != nil {
					fmt.Fprintf(w, "REJECT REASON\t%s\n", *verification.RejectReason)
				}
			})
		},
	})

	var fileKey string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit business registration evidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.VerificationSubmitInput{FileKey: fileKey}
			if err := validator.Validate(input); err != nil {
				return err
			}
			verification, err := c.app.Clients.Biz.SubmitVerification(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "verification submitted: %s (%s)\n", verification.ID, verification.Status)
			return nil
		},
	}
	submit.Flags().StringVar(&fileKey, "file-key", "", "uploaded evidence file key")
	_ = submit.MarkFlagRequired("file-key")
	cmd.AddCommand(submit)

	return cmd
}

func (c *CLI) newReportCommand() *cobra.Command {
	input := domain.ReportCreateInput{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report a job post or user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(input); err != nil {
				return err
			}
			report, err := c.app.Clients.Biz.CreateReport(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "report filed: %s\n", report.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.TargetType, "target-type", "", "JOB_POST or USER")
	cmd.Flags().StringVar(&input.TargetID, "target-id", "", "target id")
	cmd.Flags().StringVar(&input.ReasonCode, "reason", "", "reason code")
	cmd.Flags().StringVar(&input.Detail, "detail", "", "free-form detail")
	_ = cmd.MarkFlagRequired("target-type")
	_ = cmd.MarkFlagRequired("target-id")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

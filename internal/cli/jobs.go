package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/guard"
)

func (c *CLI) newJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Search and view job postings",
	}
	cmd.AddCommand(
		c.newJobsSearchCommand(),
		c.newJobsShowCommand(),
		c.newJobsApplyCommand(),
		c.newJobsSitemapCommand(),
	)
	return cmd
}

func (c *CLI) newJobsSitemapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "List all published job post ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.Clients.Jobs.Sitemap(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(entries, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tUPDATED")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\n", e.ID, e.UpdatedAt.Format("2006-01-02"))
				}
			})
		},
	}
}

func (c *CLI) newJobsSearchCommand() *cobra.Command {
	params := domain.JobSearchParams{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search published job postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Jobs.Search(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSHIFT\tVIEWS")
				for _, job := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
						job.ID, job.Title, deref(job.CompanyName),
						deref(job.LocationCode), deref(job.ShiftType), job.ViewCount)
				}
				fmt.Fprintf(w, "page %d of %d results\n", list.Page, list.Total)
			})
		},
	}

	cmd.Flags().StringVar(&params.Keyword, "keyword", "", "search keyword")
	cmd.Flags().StringVar(&params.LocationCode, "location", "", "location code")
	cmd.Flags().StringVar(&params.JobCategory, "category", "", "job category")
	cmd.Flags().StringVar(&params.ShiftType, "shift", "", "shift type")
	cmd.Flags().StringVar(&params.EmploymentType, "employment", "", "employment type")
	cmd.Flags().Int64Var(&params.SalaryMin, "salary-min", 0, "minimum salary")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort order")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Size, "size", 20, "page size")
	return cmd
}

func (c *CLI) newJobsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.app.Clients.Jobs.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(job, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "TITLE\t%s\n", job.Title)
				fmt.Fprintf(w, "COMPANY\t%s\n", deref(job.CompanyName))
				fmt.Fprintf(w, "STATUS\t%s\n", job.Status)
				fmt.Fprintf(w, "CATEGORY\t%s\n", deref(job.JobCategory))
				fmt.Fprintf(w, "SHIFT\t%s\n", deref(job.ShiftType))
				fmt.Fprintf(w, "LOCATION\t%s %s\n", deref(job.LocationCode), deref(job.LocationDetail))
				fmt.Fprintf(w, "VIEWS\t%d\n", job.ViewCount)
				if job.Body != nil {
					fmt.Fprintf(w, "\n%s\n", *job.Body)
				}
			})
		},
	}
}

func (c *CLI) newJobsApplyCommand() *cobra.Command {
	var resumeID string

	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job posting with one of your resumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSection(guard.Member, "/jobs/"+args[0]); err != nil {
				return err
			}
			application, err := c.app.Clients.Jobs.Apply(cmd.Context(), args[0], resumeID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "applied: application %s (%s)\n", application.ID, application.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&resumeID, "resume", "", "resume id to apply with")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

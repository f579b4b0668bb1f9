package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/guard"
	"github.com/coosanta-bit/medi/pkg/validator"
)

func (c *CLI) newMeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Member area: resumes, applications, notifications, favorites, scouts",
		// Cobra only runs the closest PersistentPreRunE, so the root's
		// app bootstrap must be chained explicitly.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return c.requireSection(guard.Member, "/me")
		},
	}

	resumes := &cobra.Command{Use: "resumes", Short: "Manage your resumes"}
	resumes.AddCommand(
		c.newResumeListCommand(),
		c.newResumeShowCommand(),
		c.newResumeCreateCommand(),
		c.newResumeUpdateCommand(),
		c.newResumeVisibilityCommand(),
	)

	applications := &cobra.Command{Use: "applications", Short: "Track your applications"}
	applications.AddCommand(c.newApplicationListCommand(), c.newApplicationShowCommand())

	notifications := &cobra.Command{Use: "notifications", Short: "Notification inbox"}
	notifications.AddCommand(
		c.newNotificationListCommand(),
		c.newNotificationReadCommand(),
		c.newNotificationReadAllCommand(),
	)

	cmd.AddCommand(resumes, applications, notifications,
		c.newFavoritesCommand(), c.newMeScoutsCommand())
	return cmd
}

func (c *CLI) newResumeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your resumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Me.ListResumes(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tVISIBILITY\tEXPERIENCED\tUPDATED")
				for _, r := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
						r.ID, r.Title, r.Visibility, r.IsExperienced,
						r.UpdatedAt.Format("2006-01-02"))
				}
			})
		},
	}
}

func (c *CLI) newResumeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <resume-id>",
		Short: "Show one resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resume, err := c.app.Clients.Me.GetResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(resume, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "TITLE\t%s\n", resume.Title)
				fmt.Fprintf(w, "VISIBILITY\t%s\n", resume.Visibility)
				fmt.Fprintf(w, "DESIRED JOB\t%s\n", deref(resume.DesiredJob))
				fmt.Fprintf(w, "EXPERIENCED\t%t\n", resume.IsExperienced)
				fmt.Fprintf(w, "LICENSES\t%d\n", len(resume.Licenses))
				fmt.Fprintf(w, "CAREERS\t%d\n", len(resume.Careers))
			})
		},
	}
}

func (c *CLI) newResumeCreateCommand() *cobra.Command {
	var title, desiredJob string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a resume",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.ResumeInput{Title: title}
			if desiredJob != "" {
				input.DesiredJob = &desiredJob
			}
			if err := validator.Validate(input); err != nil {
				return err
			}
			resume, err := c.app.Clients.Me.CreateResume(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "resume created: %s\n", resume.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "resume title")
	cmd.Flags().StringVar(&desiredJob, "desired-job", "", "desired job category")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *CLI) newResumeUpdateCommand() *cobra.Command {
	var title, summary string

	cmd := &cobra.Command{
		Use:   "update <resume-id>",
		Short: "Update a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.ResumeInput{Title: title}
			if summary != "" {
				input.Summary = &summary
			}
			if err := validator.Validate(input); err != nil {
				return err
			}
			resume, err := c.app.Clients.Me.UpdateResume(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "resume updated: %s\n", resume.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "resume title")
	cmd.Flags().StringVar(&summary, "summary", "", "self introduction")
	return cmd
}

func (c *CLI) newResumeVisibilityCommand() *cobra.Command {
	var visibility string

	cmd := &cobra.Command{
		Use:   "visibility <resume-id>",
		Short: "Publish or hide a resume from the talent search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resume, err := c.app.Clients.Me.SetResumeVisibility(
				cmd.Context(), args[0], domain.ResumeVisibility(visibility))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "resume %s is now %s\n", resume.ID, resume.Visibility)
			return nil
		},
	}

	cmd.Flags().StringVar(&visibility, "set", "", "PUBLIC or PRIVATE")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func (c *CLI) newApplicationListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Me.ListApplications(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tJOB\tCOMPANY\tSTATUS\tAPPLIED")
				for _, a := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						a.ID, deref(a.JobTitle), deref(a.CompanyName), a.Status,
						a.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	}
}

func (c *CLI) newApplicationShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show one application with its status history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.Clients.Me.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(detail, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "JOB\t%s\n", deref(detail.JobTitle))
				fmt.Fprintf(w, "STATUS\t%s\n", detail.Status)
				fmt.Fprintln(w, "\nHISTORY")
				for _, h := range detail.StatusHistory {
					fmt.Fprintf(w, "%s\t%s -> %s\n",
						h.CreatedAt.Format("2006-01-02 15:04"), deref(h.FromStatus), h.ToStatus)
				}
			})
		},
	}
}

func (c *CLI) newNotificationListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Me.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "unread: %d\n", list.UnreadCount)
				fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tRECEIVED")
				for _, n := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						n.ID, n.Type, n.Status, n.CreatedAt.Format("2006-01-02 15:04"))
				}
			})
		},
	}
}

func (c *CLI) newNotificationReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clients.Me.MarkNotificationRead(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newNotificationReadAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clients.Me.MarkAllNotificationsRead(cmd.Context())
		},
	}
}

func (c *CLI) newFavoritesCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "favorites", Short: "Bookmarked job posts"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Me.ListFavorites(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "JOB\tTITLE\tCOMPANY\tCLOSES")
				for _, f := range list.Items {
					closes := "-"
					if f.CloseAt != nil {
						closes = f.CloseAt.Format("2006-01-02")
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.JobPostID, f.JobTitle, f.CompanyName, closes)
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <job-id>",
		Short: "Bookmark a job post, or remove the bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Clients.Me.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result.Favorited {
				fmt.Fprintln(c.out, "bookmarked")
			} else {
				fmt.Fprintln(c.out, "bookmark removed")
			}
			return nil
		},
	})

	return cmd
}

func (c *CLI) newMeScoutsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scouts", Short: "Scout offers you have received"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List received scout offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Clients.Me.ListScouts(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tCOMPANY\tJOB\tSTATUS\tRECEIVED")
				for _, s := range list.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						s.ID, deref(s.CompanyName), deref(s.JobTitle), s.Status,
						s.CreatedAt.Format("2006-01-02"))
				}
			})
		},
	})

	cmd.AddCommand(
		c.newScoutRespondCommand("accept", domain.ScoutAccepted),
		c.newScoutRespondCommand("decline", domain.ScoutDeclined),
	)

	return cmd
}

func (c *CLI) newScoutRespondCommand(verb string, status domain.ScoutStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <scout-id>",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " a received scout offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scout, err := c.app.Clients.Me.RespondToScout(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "scout %s %s\n", scout.ID, strings.ToLower(string(scout.Status)))
			return nil
		},
	}
}

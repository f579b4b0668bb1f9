package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/pkg/validator"
)

func (c *CLI) newAuthCommands() []*cobra.Command {
	return []*cobra.Command{
		c.newLoginCommand(),
		c.newSignupCommand(),
		c.newLogoutCommand(),
		c.newWhoamiCommand(),
	}
}

func (c *CLI) newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.LoginInput{Email: email, Password: password}
			if err := validator.Validate(input); err != nil {
				return err
			}
			if err := c.app.Session.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			user, _ := c.app.Session.Current()
			fmt.Fprintf(c.out, "logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *CLI) newSignupCommand() *cobra.Command {
	input := domain.SignupInput{}
	var accountType string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Type = domain.UserType(accountType)
			// Role-specific requirements (organization name and registration
			// number for COMPANY accounts, terms acceptance) are checked here
			// in the form, not in the session controller.
			if err := validator.Validate(input); err != nil {
				return err
			}
			if err := c.app.Session.Signup(cmd.Context(), input); err != nil {
				return err
			}
			user, _ := c.app.Session.Current()
			fmt.Fprintf(c.out, "account created: %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "PERSON", "account type: PERSON or COMPANY")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "account password")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.CompanyName, "company-name", "", "organization name (COMPANY only)")
	cmd.Flags().StringVar(&input.BusinessNo, "business-no", "", "business registration number (COMPANY only)")
	cmd.Flags().BoolVar(&input.AgreeTerms, "agree-terms", false, "accept the terms of service")
	cmd.Flags().BoolVar(&input.AgreeMarketing, "agree-marketing", false, "opt in to marketing")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *CLI) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.Session.Logout(cmd.Context())
			fmt.Fprintln(c.out, "logged out")
			return nil
		},
	}
}

func (c *CLI) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := c.app.Session.Current()
			if !ok {
				fmt.Fprintln(c.out, "not logged in")
				return nil
			}
			return c.render(user, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\t%s\n", user.ID)
				fmt.Fprintf(w, "TYPE\t%s\n", user.Type)
				fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
				fmt.Fprintf(w, "ROLE\t%s\n", user.Role)
			})
		},
	}
}

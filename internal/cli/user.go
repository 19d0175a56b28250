package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/users"
)

func userCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and sessions",
	}
	cmd.AddCommand(
		userAddCmd(configPath),
		userListCmd(configPath),
		userLoginCmd(configPath),
		userLogoutCmd(configPath),
	)
	return cmd
}

func (a *app) userRepo() *users.DiskRepository {
	return users.NewDiskRepository(a.cfg.Paths.Users)
}

func (a *app) auth() *users.AuthService {
	return users.NewAuthService(a.cfg.Paths.Session, a.userRepo(), a.log)
}

func userAddCmd(configPath *string) *cobra.Command {
	var u users.User

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.userRepo().Add(u); err != nil {
				return err
			}
			fmt.Fprintf(color.Output, "added %s\n", u)
			return nil
		},
	}
	cmd.Flags().IntVar(&u.ID, "id", 0, "unique user id")
	cmd.Flags().StringVar(&u.Name, "name", "", "display name")
	cmd.Flags().StringVar(&u.Login, "login", "", "unique login")
	cmd.Flags().StringVar(&u.Password, "password", "", "password")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address")
	cmd.Flags().StringVar(&u.Address, "address", "", "postal address")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func userListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			all, err := a.userRepo().GetAll()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Fprintln(color.Output, "no users")
				return nil
			}

			bold := color.New(color.Bold)
			_, _ = bold.Fprintln(color.Output, "ID\tNAME\tLOGIN\tEMAIL")
			for _, u := range all {
				fmt.Fprintf(color.Output, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Login, u.Email)
			}
			return nil
		},
	}
}

func userLoginCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login <login> <password>",
		Short: "Sign in and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			auth := a.auth()
			if err := auth.SignIn(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(color.Output, "signed in as %s\n", auth.CurrentUser())
			return nil
		},
	}
}

func userLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			auth := a.auth()
			if !auth.Authorized() {
				fmt.Fprintln(color.Output, "not signed in")
				return nil
			}
			auth.SignOut()
			fmt.Fprintln(color.Output, "signed out")
			return nil
		},
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/session"
)

var (
	loginEmail    string
	passwordStdin bool
)

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Sign in and store the access token",
	Example: `  echo "$PASSWORD" | directory login --email ops@f2fin.in --password-stdin`,
	RunE:    runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.NewStore(cfg.Session.File).Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cfg, logger).Current()
		if errors.Is(err, session.ErrNoSession) {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			return nil
		}
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User:      %s\n", displayName(sess.Email, sess.Subject))
		fmt.Fprintf(out, "Signed in: %s\n", sess.SignedIn.Local().Format(time.RFC1123))
		if !sess.ExpiresAt.IsZero() {
			state := "valid"
			if sess.Expired(time.Now()) {
				state = "expired"
			}
			fmt.Fprintf(out, "Expires:   %s (%s)\n", sess.ExpiresAt.Local().Format(time.RFC1123), state)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if !passwordStdin {
		return errors.New("the password must be given on stdin with --password-stdin")
	}
	password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && password == "" {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	store := session.NewStore(cfg.Session.File)
	b := newBackend(cfg, store, logger)
	token, err := b.auth.Login(cmd.Context(), strings.TrimSpace(loginEmail), password)
	if err != nil {
		logger.Debug("login failed", zap.Error(err))
		return errors.New(repositories.ErrorMessage(err))
	}

	sess, err := store.Set(token)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", displayName(sess.Email, loginEmail))
	return nil
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/models"
	"github.com/thuysan/seapos/internal/session"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login: -email is required")
	}
	if *password == "" {
		a.printf("Password: ")
		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		*password = strings.TrimSpace(line)
	}

	res, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return a.fail(err)
	}
	a.sess = session.New(res, a.cfg.Session.TTL, time.Now())
	if err := a.store.SaveSession(a.sess); err != nil {
		return err
	}
	a.printf("Signed in as %s\n", res.User.Email)
	return nil
}

func (a *App) cmdLogout(context.Context) error {
	a.sess = nil
	a.client.SetToken("")
	if err := a.store.ClearSession(); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("register: -email and -password are required")
	}

	res, err := a.client.Register(ctx, models.RegisterRequest{
		Email: *email, Password: *password, FullName: *name, Phone: *phone,
	})
	if err != nil {
		return a.fail(err)
	}
	if res.AccessToken != "" {
		a.sess = session.New(res, a.cfg.Session.TTL, time.Now())
		if err := a.store.SaveSession(a.sess); err != nil {
			return err
		}
	}
	a.printf("Registered %s\n", res.User.Email)
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	s, err := a.requireSession(time.Now())
	if err != nil {
		return a.fail(err)
	}
	// Re-fetch the profile so role changes show up without a new login.
	user, err := a.client.Me(ctx)
	if err != nil {
		user = &s.User
	}
	a.printf("%s (%s)\n", user.Email, user.FullName)
	for _, r := range user.Roles {
		a.printf("  role: %s (level %d)\n", r.Slug, r.Level)
	}
	a.printf("session expires %s\n", s.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (a *App) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return errors.New("usage: posctl users list")
	}
	if err := a.requirePermission(ctx, gate.PermUsersView); err != nil {
		return a.fail(err)
	}
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.renderUsers(users)
	return nil
}

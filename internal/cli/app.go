// Package cli is the terminal front-end: one-shot admin subcommands plus the
// interactive POS shell. It owns everything user-facing; domain rules live in
// pos and the network lives in api.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/httpx"
	"github.com/thuysan/seapos/i18n"
	"github.com/thuysan/seapos/internal/api"
	"github.com/thuysan/seapos/internal/config"
	"github.com/thuysan/seapos/internal/policy"
	"github.com/thuysan/seapos/internal/session"
	"github.com/thuysan/seapos/internal/store"
)

// App bundles the wired dependencies of every command.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   *api.Client
	store    *store.Store
	gate     *gate.Gate
	resolver *gate.CachedResolver
	lang     string

	sess *session.Session

	out io.Writer
	in  io.Reader
}

// NewApp wires the client, store and gate from config. The stored session,
// if any, is loaded once here and never re-read ad hoc.
func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer, in io.Reader) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, logger)

	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}

	resolver := gate.NewCachedResolver(policy.NewAPIProfileResolver(client), 5*time.Minute)

	app := &App{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		store:    st,
		gate:     gate.New(resolver),
		resolver: resolver,
		lang:     i18n.DetectLanguage(cfg.Language),
		out:      out,
		in:       in,
	}

	sess, err := st.LoadSession()
	switch {
	case err == nil:
		app.sess = sess
		if sess.Valid(time.Now()) {
			client.SetToken(sess.Token)
		}
	case errors.Is(err, store.ErrNotFound):
		// signed out, fine
	default:
		return nil, err
	}
	return app, nil
}

// T translates a message code in the configured language.
func (a *App) T(code string) string { return i18n.T(a.lang, code) }

// Tf translates and formats.
func (a *App) Tf(code string, args ...any) string { return i18n.Tf(a.lang, code, args...) }

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// requireSession gates protected commands the way protected pages redirect
// to login: a missing or expired session stops the command before any
// network call.
func (a *App) requireSession(now time.Time) (*session.Session, error) {
	s, err := session.Require(a.sess, now)
	if err != nil {
		return nil, errors.New(a.T("please_sign_in"))
	}
	return s, nil
}

// requirePermission additionally checks the client-side RBAC gate.
func (a *App) requirePermission(ctx context.Context, perm gate.Permission) error {
	s, err := a.requireSession(time.Now())
	if err != nil {
		return err
	}
	if err := a.gate.Authorize(ctx, s.User.ID, perm); err != nil {
		if errors.Is(err, gate.ErrUnauthorized) || errors.Is(err, gate.ErrNoProfile) {
			return errors.New(a.T("permission_denied"))
		}
		// RBAC API unreachable with no cached profile: let the backend be
		// the judge rather than locking the terminal out.
		a.logger.Warn("permission check degraded", zap.Error(err))
	}
	return nil
}

// invalidateProfiles drops every cached permission profile after an RBAC
// change so the next check sees the new assignments.
func (a *App) invalidateProfiles() {
	a.resolver.InvalidateAll()
}

// fail prints a user-facing error the way the pages surfaced alerts: the
// backend detail when there is one, a generic message otherwise.
func (a *App) fail(err error) error {
	if apiErr, ok := httpx.AsAPIError(err); ok {
		a.println(apiErr.Detail)
		return err
	}
	a.println(err.Error())
	return err
}

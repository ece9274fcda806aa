// Command signup is an interactive signup form driven from stdin.
//
// Each input line is either an edit ("name=John", "email=john@example.com",
// "password=...") or a command ("submit", "reset", "show"). The form state is
// logged after every change.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formz/internal/signup"
	"github.com/dmitrymomot/formz/pkg/config"
	"github.com/dmitrymomot/formz/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg signup.Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "signup"),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("attempt_id", signup.AttemptKey),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(ctx, signup.NewStore(cfg, log), os.Stdin, os.Stdout, log); err != nil {
		log.Error("signup stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, store *signup.Store, in io.Reader, out io.Writer, log *slog.Logger) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := handle(ctx, store, line, out, log); err != nil {
			return err
		}
	}
	return sc.Err()
}

func handle(ctx context.Context, store *signup.Store, line string, out io.Writer, log *slog.Logger) error {
	switch line {
	case "show":
		// nothing to change
	case "reset":
		if _, err := store.Reset(ctx); err != nil {
			if errors.Is(err, signup.ErrSubmissionInProgress) {
				fmt.Fprintf(out, "! %v\n", err)
				return nil
			}
			return err
		}
	case "submit":
		err := store.Submit(ctx, send(out))
		switch {
		case err == nil:
		case errors.Is(err, signup.ErrInvalidForm),
			errors.Is(err, signup.ErrDuplicateSubmission),
			errors.Is(err, signup.ErrSubmissionCanceled):
			fmt.Fprintf(out, "! %v\n", err)
		default:
			log.WarnContext(ctx, "submit failed", logger.Error(err))
		}
	default:
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintf(out, "! expected field=value or a command, got %q\n", line)
			return nil
		}
		if _, err := store.Edit(ctx, strings.TrimSpace(name), value); err != nil {
			if signup.IsUnknownFieldError(err) {
				fmt.Fprintf(out, "! %v\n", err)
				return nil
			}
			return err
		}
	}
	return render(store.State(), out)
}

// send is the submit transport for the demo: it prints the payload.
func send(out io.Writer) signup.SubmitFunc {
	return func(ctx context.Context, v signup.Values) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		cost, err := bcrypt.Cost(v.PasswordHash)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "> sent name=%q email=%q password=bcrypt(cost=%d)\n",
			v.Name, v.Email, cost)
		return err
	}
}

func render(st signup.State, out io.Writer) error {
	f := st.Form()
	_, err := fmt.Fprintf(out, "valid=%t dirty=%t status=%s\n", f.IsValid(), f.IsDirty(), st.Status)
	if err != nil {
		return err
	}
	errs := st.DisplayErrors()
	for _, name := range []string{signup.FieldName, signup.FieldEmail, signup.FieldPassword} {
		if msg, ok := errs[name]; ok {
			if _, err := fmt.Fprintf(out, "  %s: %s\n", name, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

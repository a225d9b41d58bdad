package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/internal/adapter"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

var (
	errUsage          = errors.New("usage: client [-s url] [-timeout d] [-token t] register|login|submit|list|delete|version ...")
	errUnknownCommand = errors.New("unknown command")
)

type command struct {
	args int // minimum number of arguments after the command name
	run  func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error
}

var commands = map[string]command{
	"register": {args: 2, run: runRegister},
	"login":    {args: 2, run: runLogin},
	"submit":   {args: 1, run: runSubmit},
	"list":     {args: 0, run: runList},
	"delete":   {args: 1, run: runDelete},
	"version":  {args: 0, run: runVersion},
}

// dispatch runs the subcommand named by args[0].
func dispatch(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q: %w", errUnknownCommand, args[0], errUsage)
	}
	if len(args)-1 < cmd.args {
		return fmt.Errorf("%s: %w", args[0], errUsage)
	}

	return cmd.run(ctx, a, args[1:], out)
}

// register <username> <password> [role]
func runRegister(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	credentials := models.Credentials{Username: args[0], Password: args[1]}
	if len(args) > 2 {
		credentials.Role = models.Role(args[2])
	}

	registered, err := a.Register(ctx, credentials)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "registered %s (%s)\n", registered.Username, registered.Role)
	return err
}

// login <username> <password> prints the token so it can be exported as
// PROMPT_TRACKER_TOKEN for later commands.
func runLogin(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	result, err := a.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result.Token)
	return err
}

// submit <text> [<text>...]; more than one text goes through the batch endpoint.
func runSubmit(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 1 {
		created, err := a.CreatePrompt(ctx, models.Prompt{InputText: args[0]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "#%d %s/%s\n", created.ID, created.Category, created.Source)
		return err
	}

	prompts := make([]models.Prompt, 0, len(args))
	for _, text := range args {
		prompts = append(prompts, models.Prompt{InputText: text})
	}

	results, err := a.CreatePromptsBatch(ctx, prompts)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Success {
			fmt.Fprintf(out, "ok    #%d %s/%s %q\n", r.ID, r.Category, r.Source, r.Prompt)
		} else {
			fmt.Fprintf(out, "error %s %q\n", r.Error, r.Prompt)
		}
	}
	return nil
}

func runList(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	prompts, err := a.ListPrompts(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCATEGORY\tSOURCE\tTEXT")
	for _, p := range prompts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.CreatedAt.Format(time.DateTime), p.Category, p.Source, truncate(p.InputText, 60))
	}
	return tw.Flush()
}

func runDelete(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q: %w", args[0], err)
	}

	if err = a.DeletePrompt(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "deleted #%d\n", id)
	return err
}

func runVersion(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	version, err := a.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "server %s (%s, %s)\n", version.Version, version.Date, version.Commit)
	return err
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

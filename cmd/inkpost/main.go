// Command inkpost is a terminal client for the Inkpost blogging platform.
// It is the presentation layer over the session and data-access packages:
// all it does is parse flags, call into the session manager and post facade,
// and render results.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/inkpost/inkpost-go/internal/bootstrap"
)

type commandFn func(cmdCtx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
	Out    io.Writer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage(os.Stderr)
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(ctx, "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	app, err := bootstrap.NewApp(cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build client", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal wiring failure to shell scripts
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close client", "error", cerr)
		}
	}()

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		App:    app,
		Out:    os.Stdout,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"register": {
			name:        "register",
			description: "Create an account and start a session",
			run:         runRegister,
		},
		"login": {
			name:        "login",
			description: "Log in with email and password",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Log out and clear the stored token",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the profile of the current session",
			run:         runWhoami,
		},
		"profile-update": {
			name:        "profile-update",
			description: "Update profile fields of the current user",
			run:         runProfileUpdate,
		},
		"posts": {
			name:        "posts",
			description: "List posts with filters and optional text search",
			run:         runPostsList,
		},
		"post": {
			name:        "post",
			description: "Show one post by id",
			run:         runPostGet,
		},
		"post-create": {
			name:        "post-create",
			description: "Create a post (optionally with an image)",
			run:         runPostCreate,
		},
		"post-update": {
			name:        "post-update",
			description: "Update a post (optionally with a new image)",
			run:         runPostUpdate,
		},
		"post-delete": {
			name:        "post-delete",
			description: "Delete a post by id",
			run:         runPostDelete,
		},
		"theme": {
			name:        "theme",
			description: "Show or set the terminal theme preference",
			run:         runTheme,
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: inkpost <command> [flags]")
	fmt.Fprintln(w)

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, cmds[name].description)
	}
	tw.Flush() //nolint:errcheck // usage output is best-effort
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The theme preference is a presentation concern: a second simple key-value
// entry beside the token, owned entirely by the CLI.

const defaultTheme = "light"

func runTheme(cmdCtx *commandContext, args []string) error {
	flags := flag.NewFlagSet("theme", flag.ContinueOnError)
	set := flags.String("set", "", `set the theme: "light" or "dark"`)
	if err := flags.Parse(args); err != nil {
		return err
	}

	path, err := themePath()
	if err != nil {
		return err
	}

	if *set == "" {
		fmt.Fprintln(cmdCtx.Out, readTheme(path))
		return nil
	}

	theme := strings.ToLower(*set)
	if theme != "light" && theme != "dark" {
		return errors.New(`theme must be "light" or "dark"`)
	}
	if err := writeTheme(path, theme); err != nil {
		return err
	}

	fmt.Fprintf(cmdCtx.Out, "theme set to %s\n", theme)
	return nil
}

func themePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "inkpost", "theme"), nil
}

func readTheme(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		// Missing or unreadable preference falls back to the default.
		return defaultTheme
	}
	theme := strings.TrimSpace(string(data))
	if theme != "dark" {
		return defaultTheme
	}
	return theme
}

func writeTheme(path, theme string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(theme+"\n"), 0o600); err != nil {
		return fmt.Errorf("write theme file: %w", err)
	}
	return nil
}

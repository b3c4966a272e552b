package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
)

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("register requires -email and -password")
	}

	result := cmdCtx.App.Session.Register(cmdCtx.Ctx, blog.Registration{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	})
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Error)
	}

	fmt.Fprintf(cmdCtx.Out, "registered and logged in as %s\n", result.User.FullName())
	return nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	result := cmdCtx.App.Session.Login(cmdCtx.Ctx, *email, *password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}

	fmt.Fprintf(cmdCtx.Out, "logged in as %s\n", result.User.FullName())
	return nil
}

func runLogout(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Local teardown happens even when the remote call fails.
	cmdCtx.App.Session.Logout(cmdCtx.Ctx)
	fmt.Fprintln(cmdCtx.Out, "logged out")
	return nil
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmdCtx.App.Session.Restore(cmdCtx.Ctx)
	sess := cmdCtx.App.Session.Session()
	if !sess.IsAuthenticated() {
		fmt.Fprintln(cmdCtx.Out, "not logged in")
		return nil
	}

	user := sess.User
	fmt.Fprintf(cmdCtx.Out, "%s <%s> (%s)\n", user.FullName(), user.Email, user.Role)
	return nil
}

func runProfileUpdate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("profile-update", flag.ContinueOnError)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Fill unchanged fields from the current profile so a partial edit
	// does not blank the rest.
	cmdCtx.App.Session.Restore(cmdCtx.Ctx)
	sess := cmdCtx.App.Session.Session()
	if !sess.IsAuthenticated() {
		return errors.New("not logged in")
	}

	update := blog.ProfileUpdate{
		FirstName: sess.User.FirstName,
		LastName:  sess.User.LastName,
		Email:     sess.User.Email,
	}
	if *firstName != "" {
		update.FirstName = *firstName
	}
	if *lastName != "" {
		update.LastName = *lastName
	}
	if *email != "" {
		update.Email = *email
	}

	result := cmdCtx.App.Session.UpdateProfile(cmdCtx.Ctx, update)
	if !result.Success {
		return fmt.Errorf("profile update failed: %s", result.Error)
	}

	fmt.Fprintf(cmdCtx.Out, "profile updated: %s <%s>\n", result.User.FullName(), result.User.Email)
	return nil
}

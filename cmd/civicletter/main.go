package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"civicletter/internal/config"
	"civicletter/internal/export"
	"civicletter/internal/form"
	"civicletter/internal/theme"
	"civicletter/internal/types"
)

const (
	actionCopy     = "Copy to clipboard"
	actionDocx     = "Download as .docx"
	actionMail     = "Email with default client"
	actionGmail    = "Email with Gmail"
	actionOutlook  = "Email with Outlook"
	actionTheme    = "Toggle light/dark theme"
	actionNewDraft = "Write another letter"
	actionQuit     = "Quit"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	themes := theme.Load(cfg.ThemeFile)
	ctrl := form.NewController(form.NewClient(cfg.ServerURL))

	if err := run(ctrl, themes); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctrl *form.Controller, themes *theme.Manager) error {
	t := themes.Current()
	fmt.Println(t.Title.Render("Contact Your Representatives"))
	fmt.Println(t.Hint.Render("Draft a letter to an elected official. Required fields are marked with *."))
	fmt.Println()

	for {
		input, err := askForm(ctrl.Input())
		if err != nil {
			return err
		}
		ctrl.SetInput(input)

		fmt.Println(t.Hint.Render("Generating your letter..."))
		if err := ctrl.Submit(context.Background()); err != nil {
			if errors.Is(err, form.ErrMissingFields) {
				fmt.Println(t.Error.Render(err.Error()))
				continue
			}
			msg := err.Error()
			if apiErr, ok := ctrl.Err(); ok {
				msg = apiErr.Message
			}
			fmt.Println(t.Error.Render("Error: " + msg))
			retry := false
			if err := survey.AskOne(&survey.Confirm{Message: "Try again?", Default: true}, &retry); err != nil {
				return err
			}
			if retry {
				continue
			}
			return nil
		}

		result, ok := ctrl.Result()
		if !ok {
			continue
		}
		fmt.Println(t.Success.Render("Your letter has been generated."))
		fmt.Println(t.Letter.Render(result.Content))

		again, err := actionLoop(result, themes)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func askForm(prev types.SimpleFormData) (types.SimpleFormData, error) {
	input := prev
	qs := []struct {
		message  string
		help     string
		value    *string
		required bool
	}{
		{"About me *", "Your name, where you live, and anything that establishes your credibility on this issue.", &input.UserInfo, true},
		{"Representative information *", "Who the letter is addressed to: name, office, district.", &input.RepresentativeInfo, true},
		{"Issue details *", "The issue or legislation, and the action you want taken.", &input.IssueDetails, true},
		{"Custom instructions", "Optional tone or content guidance for the letter.", &input.CustomInstructions, false},
	}
	for _, q := range qs {
		var opts []survey.AskOpt
		if q.required {
			opts = append(opts, survey.WithValidator(survey.Required))
		}
		prompt := &survey.Multiline{Message: q.message, Default: *q.value, Help: q.help}
		if err := survey.AskOne(prompt, q.value, opts...); err != nil {
			return types.SimpleFormData{}, err
		}
	}
	return input, nil
}

func actionLoop(result types.LetterResponse, themes *theme.Manager) (again bool, err error) {
	t := themes.Current()
	for {
		var choice string
		prompt := &survey.Select{
			Message: "What next?",
			Options: []string{actionCopy, actionDocx, actionMail, actionGmail, actionOutlook, actionTheme, actionNewDraft, actionQuit},
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			return false, err
		}

		switch choice {
		case actionCopy:
			if export.CopyToClipboard(result.Content) {
				fmt.Println(t.Success.Render("Letter copied to your clipboard."))
			} else {
				fmt.Println(t.Error.Render("Could not copy to the clipboard. Try another export method."))
			}
		case actionDocx:
			if export.DownloadDocx(result.Content, "") {
				fmt.Println(t.Success.Render("Saved " + export.DefaultDocxName + "."))
			} else {
				fmt.Println(t.Error.Render("Could not save the document. Try another export method."))
			}
		case actionMail:
			if export.NewDefaultMailComposer().Compose("", export.DefaultSubject, result.Content) {
				fmt.Println(t.Success.Render("Your letter has been prepared for email."))
			} else {
				fmt.Println(t.Error.Render("Your letter may be too large for the default email client. Try Gmail or Outlook instead."))
			}
		case actionGmail:
			if export.NewGmailComposer().Compose("", export.DefaultSubject, result.Content) {
				fmt.Println(t.Success.Render("Your letter has been prepared in Gmail."))
			} else {
				fmt.Println(t.Error.Render("Couldn't open Gmail. Try another email method."))
			}
		case actionOutlook:
			if export.NewOutlookComposer().Compose("", export.DefaultSubject, result.Content) {
				fmt.Println(t.Success.Render("Your letter has been prepared in Outlook."))
			} else {
				fmt.Println(t.Error.Render("Couldn't open Outlook. Try another email method."))
			}
		case actionTheme:
			t = themes.Toggle()
			fmt.Println(t.Hint.Render("Theme set to " + string(themes.Mode()) + "."))
		case actionNewDraft:
			return true, nil
		case actionQuit:
			return false, nil
		}
	}
}

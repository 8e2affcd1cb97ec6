package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"histlint/internal/lint"
	"histlint/internal/model"
	"histlint/internal/shell"
	"histlint/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	latest "github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "histlint",
		Repository: "histlint",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/histlint/histlint/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: histlint [options] [history-file]\n\n")
		fmt.Fprintf(os.Stderr, "histlint lints your command-line history and suggests workflow\n")
		fmt.Fprintf(os.Stderr, "improvements: favorite commands, alias candidates, shorter spellings,\n")
		fmt.Fprintf(os.Stderr, "history hygiene, and a filtered pass of shellcheck if installed.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  histlint                     # lint the current shell's history\n")
		fmt.Fprintf(os.Stderr, "  histlint ~/.zsh_history      # lint an explicit history file\n")
		fmt.Fprintf(os.Stderr, "  histlint -t                  # browse the analysis interactively\n")
	}

	favoritesFlag := pflag.IntP("favorites", "n", 5, "Number of favorite commands to list")
	withArgsFlag := pflag.IntP("with-args", "a", 10, "Number of commands-with-arguments to list")
	shellcheckFlag := pflag.IntP("shellcheck", "s", 10, "Cap on new shellcheck codes per finding")
	noShellcheck := pflag.Bool("no-shellcheck", false, "Skip the shellcheck section")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse the analysis in an interactive TUI")
	noColor := pflag.Bool("no-color", false, "Disable ANSI colors (NO_COLOR is also honored)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log skipped checks and other diagnostics")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("histlint version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	env := model.Snapshot(os.Environ())
	if *noColor || env.Has("NO_COLOR") || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	opts := lint.Options{
		Favorites:     *favoritesFlag,
		WithArgs:      *withArgsFlag,
		ShellcheckCap: *shellcheckFlag,
	}
	reporter := lint.NewReporter(os.Stdout, opts)

	ctx := context.Background()
	sh := shell.Detect(env.Get("SHELL"))
	home, _ := os.UserHomeDir()

	// The one fatal condition: no history file means nothing to lint.
	histPath, err := lint.ResolveHistoryFile(pflag.Arg(0), env, sh, home)
	if err != nil {
		reporter.Warn(fmt.Sprintf("History file '%s' not found.", histPath))
		os.Exit(1)
	}
	commands, err := lint.LoadHistory(histPath)
	if err != nil {
		reporter.Warn(fmt.Sprintf("History file '%s' could not be read.", histPath))
		os.Exit(1)
	}

	querier := shell.NewQuerier(env.Get("SHELL"))
	aliasDump, err := querier.QueryAliases(ctx)
	if err != nil {
		slog.Debug("alias dump unavailable", "error", err)
		aliasDump = ""
	}

	analysis := lint.Analyze(commands, env, sh, aliasDump, opts)
	analysis.HistoryFile = histPath

	if *tuiFlag {
		m := tui.InitialModel(analysis)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	reporter.Environment(ctx, env, sh, histPath, querier)
	reporter.Favorites(analysis)
	reporter.TopWithArguments(analysis)
	reporter.Miscellaneous(analysis)
	if !*noShellcheck {
		reporter.Shellcheck(ctx, sh, histPath)
	}
}

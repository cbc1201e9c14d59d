package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"gitartist/internal/logging"
	"gitartist/internal/theme"
)

// StatusCmd shows the state of a drawing repository
type StatusCmd struct {
	Repo string `arg:"" optional:"" help:"Repository to inspect" default:"." type:"existingdir"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	repoPath, err := filepath.Abs(s.Repo)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing status command", "repo", repoPath)

	status, err := cli.Container.StatusService.Status(ctx, repoPath)
	if err != nil {
		return err
	}

	head := status.HeadCommit
	if head == "" {
		head = "(no commits)"
	}
	remote := status.RemoteURL
	if remote == "" {
		remote = fmt.Sprintf("(%s not configured)", cli.Remote)
	}
	undo := "(none)"
	if status.Checkpoint != nil {
		undo = status.Checkpoint.Short()
	}

	line := func(label, value string) {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render(label), theme.ValueStyle.Render(value))
	}
	line("Repository", status.Path)
	line("Branch", status.Branch)
	line("Head", head)
	line("Commits", fmt.Sprintf("%d", status.CommitCount))
	line("Remote", remote)
	line("Undo point", undo)

	if len(status.RecentCommits) > 0 {
		fmt.Println()
		fmt.Println(theme.SubtitleStyle.Render("Recent commits"))
		for _, c := range status.RecentCommits {
			fmt.Printf("  %s  %s  %s\n", c.Hash[:min(7, len(c.Hash))], c.AuthorDate.Format(time.DateOnly), c.Subject)
		}
	}
	return nil
}

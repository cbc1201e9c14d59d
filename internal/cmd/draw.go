package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/services"
	"gitartist/internal/theme"
	"gitartist/internal/ui"
)

// DrawCmd paints a drawing into a repository without prompting
type DrawCmd struct {
	PatternSource `embed:""`
	Placement     `embed:""`

	AuthorEmail string `help:"Commit author email (default from settings)" env:"GITARTIST_AUTHOR_EMAIL"`
	AuthorName  string `help:"Commit author name (default from settings)" env:"GITARTIST_AUTHOR_NAME"`
	DryRun      bool   `help:"Show what would be committed without touching the repository"`
	Repo        string `arg:"" optional:"" help:"Repository to draw in" default:"." type:"existingdir"`
}

// Run executes the draw command
func (d *DrawCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	repoPath, err := filepath.Abs(d.Repo)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing draw command", "repo", repoPath, "dry_run", d.DryRun)

	intent, err := d.PatternSource.Pixels(ctx, cli.Container.ArtService)
	if err != nil {
		return err
	}
	anchor, pixels, err := d.Placement.Resolve(cli, intent.Pixels, time.Now())
	if err != nil {
		return err
	}

	author := cli.defaultAuthor()
	author.Name = firstNonEmpty(d.AuthorName, author.Name)
	author.Email = firstNonEmpty(d.AuthorEmail, author.Email)

	result, err := cli.Container.PaintService.Paint(ctx, services.PaintParams{
		Anchor:   anchor,
		Author:   author,
		DryRun:   d.DryRun,
		Pixels:   pixels,
		Progress: printProgress,
		RepoPath: repoPath,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.Preview(pixels))
	if result.Commits == 0 {
		fmt.Println("Nothing to draw.")
		return nil
	}

	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("%s %d commits over %d days (%s to %s)",
		verb, result.Commits, result.Days,
		result.FirstDate.Format(time.DateOnly), result.LastDate.Format(time.DateOnly))))

	if result.PushErr != nil {
		return result.PushErr
	}
	if result.Pushed {
		fmt.Printf("Pushed %s to %s\n", result.Branch, cli.Remote)
	}
	return nil
}

func printProgress(done, total int) {
	fmt.Fprintf(os.Stderr, "\rCommitting %d/%d", done, total)
	if done == total {
		fmt.Fprintln(os.Stderr)
	}
}

// PreviewCmd renders a drawing and where it would land
type PreviewCmd struct {
	PatternSource `embed:""`
	Placement     `embed:""`
}

// Run executes the preview command
func (p *PreviewCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	intent, err := p.PatternSource.Pixels(ctx, cli.Container.ArtService)
	if err != nil {
		return err
	}
	anchor, pixels, err := p.Placement.Resolve(cli, intent.Pixels, time.Now())
	if err != nil {
		return err
	}

	if intent.Plan != "" {
		fmt.Println(theme.SubtitleStyle.Render(intent.Plan))
	}
	fmt.Println(ui.Preview(pixels))

	if len(pixels) == 0 {
		return nil
	}

	minCommits, maxCommits := 0, 0
	first, last := time.Time{}, time.Time{}
	for i, entry := range domain.BuildPlan(pixels, anchor) {
		r := domain.RangeFor(entry.Density)
		minCommits += r.Min
		maxCommits += r.Max
		if i == 0 || entry.Date.Before(first) {
			first = entry.Date
		}
		if i == 0 || entry.Date.After(last) {
			last = entry.Date
		}
	}

	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Anchor"), anchor.Format(time.DateOnly))
	fmt.Printf("%s %s to %s\n", theme.LabelStyle.Render("Dates"), first.Format(time.DateOnly), last.Format(time.DateOnly))
	fmt.Printf("%s %d to %d\n", theme.LabelStyle.Render("Commits"), minCommits, maxCommits)
	return nil
}

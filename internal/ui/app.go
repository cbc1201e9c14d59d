package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/services"
	"gitartist/internal/theme"
	"gitartist/internal/version"
)

var errNoSavedRepos = errors.New("no saved repositories yet: create one from the menu or run `gitartist repos add <path>`")

// Services are the operations the interactive menu drives
type Services struct {
	Art   *services.ArtService
	Paint *services.PaintService
	Repos *services.RepoService
	Undo  *services.UndoService
}

// Options are the defaults the interactive menu starts from
type Options struct {
	AnchorPolicy domain.AnchorPolicy
	Author       domain.Author
	ReposDir     string
	WeekOffset   int
}

// App is the interactive menu loop
type App struct {
	now  func() time.Time
	opts Options
	svc  Services
}

// NewApp creates a new App
func NewApp(svc Services, opts Options) *App {
	return &App{
		now:  time.Now,
		opts: opts,
		svc:  svc,
	}
}

// Run shows the main menu until the user exits. Failures are printed with a
// remediation hint and the menu is shown again.
func (a *App) Run(ctx context.Context) error {
	fmt.Println(header())

	for {
		action, err := MainMenu()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if action == ActionExit {
			return nil
		}

		logging.Logger.Info("Menu action selected", "action", action)
		if err := a.dispatch(ctx, action); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			logging.Logger.Error("Menu action failed", "action", action, "error", err)
			fmt.Println(FormatError(err))
			fmt.Println()
		}
	}
}

func (a *App) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionCreate:
		return a.createAndDraw(ctx)
	case ActionDraw:
		path, err := a.pickRepository(ctx, "Draw in which repository?")
		if err != nil {
			return err
		}
		return a.draw(ctx, path)
	case ActionUndo:
		return a.undo(ctx)
	case ActionWipe:
		return a.wipe(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (a *App) createAndDraw(ctx context.Context) error {
	params, err := CreateRepoForm()
	if err != nil {
		return err
	}
	params.ParentDir = a.opts.ReposDir

	var saved *domain.SavedRepository
	err = RunTask(ctx, "Creating "+params.Name+"...", func(ctx context.Context, _ services.ProgressFunc) error {
		var err error
		saved, err = a.svc.Repos.Create(ctx, params)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render("Created " + saved.LocalPath))
	return a.draw(ctx, saved.LocalPath)
}

func (a *App) pickRepository(ctx context.Context, title string) (string, error) {
	repos, err := a.svc.Repos.List(ctx)
	if err != nil {
		return "", err
	}
	if len(repos) == 0 {
		return "", errNoSavedRepos
	}
	return SelectRepository(title, repos)
}

func (a *App) draw(ctx context.Context, repoPath string) error {
	req, err := DrawForm(DrawRequest{
		AuthorEmail: a.opts.Author.Email,
		AuthorName:  a.opts.Author.Name,
		WeekOffset:  strconv.Itoa(a.opts.WeekOffset),
	})
	if err != nil {
		return err
	}

	anchor, err := req.Anchor(a.now(), a.opts.AnchorPolicy)
	if err != nil {
		return err
	}
	offset, err := req.Offset()
	if err != nil {
		return err
	}

	intent, err := a.interpret(ctx, req.Description)
	if err != nil {
		return err
	}
	if intent == nil {
		return nil
	}

	pixels := domain.ShiftPixels(intent.Pixels, offset)
	params := services.PaintParams{
		Anchor:   anchor,
		Author:   req.Author(),
		DryRun:   true,
		Pixels:   pixels,
		RepoPath: repoPath,
	}

	plan, err := a.svc.Paint.Paint(ctx, params)
	if err != nil {
		return err
	}
	ok, err := Confirm("Draw it?", fmt.Sprintf("%d days from %s to %s, about %d commits, force-pushed to the remote.",
		plan.Days, plan.FirstDate.Format(time.DateOnly), plan.LastDate.Format(time.DateOnly), plan.Commits))
	if err != nil || !ok {
		return err
	}

	params.DryRun = false
	var result *services.PaintResult
	err = RunTask(ctx, "Painting...", func(ctx context.Context, report services.ProgressFunc) error {
		params.Progress = report
		var err error
		result, err = a.svc.Paint.Paint(ctx, params)
		return err
	})
	if err != nil {
		return err
	}

	printPaintResult(result)
	return nil
}

// interpret turns a description into a drawing, looping on user feedback for
// custom shapes. A nil intent means the user cancelled.
func (a *App) interpret(ctx context.Context, description string) (*domain.ArtIntent, error) {
	var intent *domain.ArtIntent
	err := RunTask(ctx, "Thinking about your drawing...", func(ctx context.Context, _ services.ProgressFunc) error {
		var err error
		intent, err = a.svc.Art.Interpret(ctx, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	for {
		if intent.Plan != "" {
			fmt.Println(theme.SubtitleStyle.Render(intent.Plan))
		}
		fmt.Println(Preview(intent.Pixels))

		if intent.Kind != domain.IntentCustomShape {
			return intent, nil
		}

		choice, refinement, err := Feedback()
		if err != nil {
			return nil, err
		}
		switch choice {
		case FeedbackCancel:
			return nil, nil
		case FeedbackProceed:
			return intent, nil
		}

		base := intent.Description
		err = RunTask(ctx, "Redrawing...", func(ctx context.Context, _ services.ProgressFunc) error {
			var err error
			intent, err = a.svc.Art.Refine(ctx, base, refinement)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
}

func (a *App) undo(ctx context.Context) error {
	path, err := a.pickRepository(ctx, "Undo the last drawing in which repository?")
	if err != nil {
		return err
	}
	ok, err := Confirm("Undo the last drawing?", "The branch is reset and force-pushed.")
	if err != nil || !ok {
		return err
	}

	var result *services.UndoResult
	err = RunTask(ctx, "Undoing...", func(ctx context.Context, _ services.ProgressFunc) error {
		var err error
		result, err = a.svc.Undo.Undo(ctx, path)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render("Reset to " + result.Checkpoint.Short()))
	printPushErr(result.PushErr)
	return nil
}

func (a *App) wipe(ctx context.Context) error {
	path, err := a.pickRepository(ctx, "Wipe which repository?")
	if err != nil {
		return err
	}
	ok, err := ConfirmWipe(path)
	if err != nil || !ok {
		return err
	}

	var result *services.WipeResult
	err = RunTask(ctx, "Wiping...", func(ctx context.Context, _ services.ProgressFunc) error {
		var err error
		result, err = a.svc.Undo.Wipe(ctx, path, a.opts.Author)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render("History replaced by a single commit on " + result.Branch))
	printPushErr(result.PushErr)
	return nil
}

func printPaintResult(result *services.PaintResult) {
	if result.Commits == 0 {
		fmt.Println(theme.HintTextStyle.Render("Nothing to draw."))
		return
	}
	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Wrote %d commits over %d days (%s to %s)",
		result.Commits, result.Days,
		result.FirstDate.Format(time.DateOnly), result.LastDate.Format(time.DateOnly))))
	printPushErr(result.PushErr)
}

func printPushErr(err error) {
	if err == nil {
		return
	}
	fmt.Println(theme.WarningStyle.Render("Push failed: " + err.Error()))
	fmt.Println(theme.HintTextStyle.Render(hintPrefix + Remediation(err)))
}

func header() string {
	return fmt.Sprintf("%s %s\n%s",
		theme.AppNameStyle.Render("gitartist"),
		theme.VersionStyle.Render(version.Version),
		theme.TaglineStyle.Render(version.Tagline))
}

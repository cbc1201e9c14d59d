package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"gitartist/internal/domain"
	"gitartist/internal/services"
)

// Menu actions
const (
	ActionCreate = "create"
	ActionDraw   = "draw"
	ActionExit   = "exit"
	ActionUndo   = "undo"
	ActionWipe   = "wipe"
)

// Anchor modes offered by the draw form
const (
	AnchorAuto = "auto"
	AnchorDate = "date"
)

// Feedback choices offered after a custom shape is drawn
const (
	FeedbackCancel  = "cancel"
	FeedbackProceed = "proceed"
	FeedbackRefine  = "refine"
)

// DrawRequest holds the answers of the draw form
type DrawRequest struct {
	AnchorDate  string
	AnchorMode  string
	AuthorEmail string
	AuthorName  string
	Description string
	WeekOffset  string
}

// Author returns the commit identity entered in the form
func (r DrawRequest) Author() domain.Author {
	return domain.Author{
		Email: strings.TrimSpace(r.AuthorEmail),
		Name:  strings.TrimSpace(r.AuthorName),
	}
}

// Offset returns the week offset entered in the form
func (r DrawRequest) Offset() (int, error) {
	return parseWeekOffset(r.WeekOffset)
}

// Anchor resolves the Sunday the drawing starts on
func (r DrawRequest) Anchor(now time.Time, policy domain.AnchorPolicy) (time.Time, error) {
	if r.AnchorMode != AnchorDate {
		return domain.ResolveAnchor(now, policy), nil
	}
	date, err := parseAnchorDate(r.AnchorDate, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return domain.AnchorFromDate(date), nil
}

func parseAnchorDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must look like YYYY-MM-DD")
	}
	return date, nil
}

func parseWeekOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("week offset must be a whole number, 0 or more")
	}
	return n, nil
}

func validateEmail(s string) error {
	return domain.Author{Name: "x", Email: s}.Validate()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", field)
		}
		return nil
	}
}

// MainMenu asks what to do next
func MainMenu() (string, error) {
	action := ActionDraw
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Create a new repository and draw", ActionCreate),
					huh.NewOption("Draw in a saved repository", ActionDraw),
					huh.NewOption("Undo the last drawing", ActionUndo),
					huh.NewOption("Wipe a repository's history", ActionWipe),
					huh.NewOption("Exit", ActionExit),
				).
				Value(&action),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

// DrawForm asks where and what to draw. defaults pre-fills the answers.
func DrawForm(defaults DrawRequest) (DrawRequest, error) {
	req := defaults
	if req.AnchorMode == "" {
		req.AnchorMode = AnchorAuto
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should the drawing start?").
				Options(
					huh.NewOption("Automatically, at the left edge of the visible calendar", AnchorAuto),
					huh.NewOption("On a specific date", AnchorDate),
				).
				Value(&req.AnchorMode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description("The drawing starts on the Sunday of this week.").
				Placeholder("YYYY-MM-DD").
				Value(&req.AnchorDate).
				Validate(func(s string) error {
					_, err := parseAnchorDate(s, time.Local)
					return err
				}),
		).WithHideFunc(func() bool { return req.AnchorMode != AnchorDate }),
		huh.NewGroup(
			huh.NewInput().
				Title("Week offset").
				Description("Empty columns to leave before the drawing.").
				Value(&req.WeekOffset).
				Validate(func(s string) error {
					_, err := parseWeekOffset(s)
					return err
				}),
			huh.NewInput().
				Title("Author name").
				Value(&req.AuthorName).
				Validate(required("author name")),
			huh.NewInput().
				Title("Author email").
				Description("Use an email linked to your account so the commits count.").
				Value(&req.AuthorEmail).
				Validate(validateEmail),
			huh.NewText().
				Title("What should I draw?").
				Description("Text, a shape like heart or star, or describe anything.").
				Value(&req.Description).
				Validate(required("description")),
		),
	)
	if err := form.Run(); err != nil {
		return DrawRequest{}, err
	}
	return req, nil
}

// CreateRepoForm asks for the name and visibility of a new repository
func CreateRepoForm() (services.CreateRepoParams, error) {
	var params services.CreateRepoParams
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository name").
				Value(&params.Name).
				Validate(services.ValidateRepoName),
			huh.NewInput().
				Title("Description (optional)").
				Value(&params.Description),
			huh.NewConfirm().
				Title("Private repository?").
				Description("Private contributions only show when your profile counts them.").
				Affirmative("Yes").
				Negative("No").
				Value(&params.Private),
		),
	)
	if err := form.Run(); err != nil {
		return services.CreateRepoParams{}, err
	}
	return params, nil
}

// SelectRepository asks which saved repository to use
func SelectRepository(title string, repos []domain.SavedRepository) (string, error) {
	options := make([]huh.Option[string], 0, len(repos))
	for _, r := range repos {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  (%s)", r.Name, r.LocalPath), r.LocalPath))
	}

	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return path, nil
}

// Feedback asks whether to keep, refine or drop a custom drawing
func Feedback() (choice, refinement string, err error) {
	choice = FeedbackProceed
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How does it look?").
				Options(
					huh.NewOption("Looks good, draw it", FeedbackProceed),
					huh.NewOption("Refine it", FeedbackRefine),
					huh.NewOption("Cancel", FeedbackCancel),
				).
				Value(&choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("What should change?").
				Placeholder("make it wider").
				Value(&refinement).
				Validate(required("refinement")),
		).WithHideFunc(func() bool { return choice != FeedbackRefine }),
	)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return choice, refinement, nil
}

// Confirm asks a yes/no question, defaulting to no
func Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// ConfirmWipe warns that a wipe cannot be undone from the remote
func ConfirmWipe(repo string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("This is irreversible").
				Description(fmt.Sprintf(
					"Every commit and branch in %s will be replaced by a single reset commit and force-pushed.\n"+
						"Only the local undo point can bring the old history back.", repo)),
			huh.NewConfirm().
				Title("Wipe the whole history?").
				Affirmative("Yes, wipe it").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

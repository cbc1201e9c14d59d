package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"gitartist/internal/logging"
	"gitartist/internal/services"
	"gitartist/internal/theme"
)

// ReposCmd manages saved repositories
type ReposCmd struct {
	List   ReposListCmd   `cmd:"list" help:"List saved repositories" default:"1"`
	Add    ReposAddCmd    `cmd:"add" help:"Save an existing local repository"`
	Create ReposCreateCmd `cmd:"create" help:"Create a repository on GitHub and a local clone target (needs GITHUB_PAT)"`
}

// ReposListCmd lists saved repositories
type ReposListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (r *ReposListCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	repos, err := cli.Container.RepoService.List(ctx)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		type repoJSON struct {
			CreatedAt string `json:"created_at"`
			LocalPath string `json:"local_path"`
			Name      string `json:"name"`
			RemoteURL string `json:"remote_url"`
		}
		out := make([]repoJSON, 0, len(repos))
		for _, repo := range repos {
			out = append(out, repoJSON{
				CreatedAt: repo.CreatedAt.Format(time.RFC3339),
				LocalPath: repo.LocalPath,
				Name:      repo.Name,
				RemoteURL: repo.RemoteURL,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(repos) == 0 {
		fmt.Println("No saved repositories. Add one with 'gitartist repos add <path>'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH\tREMOTE\tADDED")
	for _, repo := range repos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", repo.Name, repo.LocalPath, repo.RemoteURL, repo.CreatedAt.Local().Format(time.DateOnly))
	}
	return w.Flush()
}

// ReposAddCmd saves an existing repository
type ReposAddCmd struct {
	Path string `arg:"" help:"Path to the repository root" default:"." type:"existingdir"`
}

// Run executes the add command
func (r *ReposAddCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	logging.Logger.Debug("Executing repos add command", "path", r.Path)

	saved, err := cli.Container.RepoService.Register(ctx, r.Path)
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Saved %s (%s)", saved.Name, saved.LocalPath)))
	return nil
}

// ReposCreateCmd creates a remote repository and its local directory
type ReposCreateCmd struct {
	Description string `help:"Repository description"`
	Dir         string `help:"Parent directory of the new clone (default from --repos-dir)"`
	Name        string `arg:"" help:"Repository name"`
	Private     bool   `help:"Create a private repository"`
}

// Run executes the create command
func (r *ReposCreateCmd) Run(cli *CLI) error {
	ctx, cancel := commandContext()
	defer cancel()

	logging.Logger.Debug("Executing repos create command", "name", r.Name, "private", r.Private)

	saved, err := cli.Container.RepoService.Create(ctx, services.CreateRepoParams{
		Description: r.Description,
		Name:        r.Name,
		ParentDir:   firstNonEmpty(r.Dir, cli.ReposDir),
		Private:     r.Private,
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render("Created " + saved.LocalPath))
	fmt.Printf("Remote: %s\n", saved.RemoteURL)
	return nil
}

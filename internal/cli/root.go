package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jakoblorz/next-routes/internal/filesystem"
	"github.com/jakoblorz/next-routes/internal/project"
	"github.com/jakoblorz/next-routes/internal/routes"
	"github.com/jakoblorz/next-routes/internal/tui"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// RoutesCommand lists the routes of the project in the working directory
type RoutesCommand struct {
	fs filesystem.FileSystem
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RoutesCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "next-routes",
		Short: "List the routes of a Next.js project",
		Long: `Lists the routes a Next.js project serves, derived from the file names
in its pages/ directory. Nothing is executed or parsed.

Only the Pages Router is supported. Reserved pages (/404, /500, /_app,
/_document, /_error) are left out.`,
		Example: `  # Routes of a project with pages/ at the root
  next-routes

  # Routes of a project with src/pages/
  next-routes --src`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	rootCmd.Flags().BoolP("src", "s", false, "Look for app/ and pages/ under src/")

	return rootCmd
}

// Run executes the root command
func (c *RoutesCommand) Run(cmd *cobra.Command, args []string) error {
	srcDir, _ := cmd.Flags().GetBool("src")

	list, err := c.listRoutes(srcDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, route := range list {
		fmt.Fprintln(out, route)
	}

	return nil
}

func (c *RoutesCommand) listRoutes(srcDir bool) ([]string, error) {
	p := project.New(c.fs, project.WithSrcDir(srcDir))
	convention, err := p.Detect()
	if err != nil {
		return nil, err
	}

	deriver, err := routes.ForConvention(convention, p.RouterDir())
	if err != nil {
		return nil, err
	}

	files, err := routes.NewCollector(c.fs).Collect(p.RouterDir())
	if err != nil {
		return nil, err
	}

	return deriver.Derive(files), nil
}

// Execute runs the root command
func Execute() error {
	return execute(NewRootCommand(filesystem.NewOSFileSystem()), os.Stderr)
}

func execute(rootCmd *cobra.Command, stderr io.Writer) error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, renderError(err))
		return err
	}
	return nil
}

func renderError(err error) string {
	msg := tui.ErrorStyle.Render("Error:") + " " + err.Error()
	if hint := errorHint(err); hint != "" {
		msg += "\n" + tui.HintStyle.Render(hint)
	}
	return msg
}

func errorHint(err error) string {
	var notFound *routes.DirectoryNotFoundError
	switch {
	case errors.Is(err, project.ErrNoRouterConvention):
		return "Run next-routes from the project root, or pass --src if the routes live in src/."
	case errors.As(err, &notFound):
		return "The routing directory disappeared while scanning; run next-routes again."
	default:
		return ""
	}
}

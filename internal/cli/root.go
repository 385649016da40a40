package cli

import (
	"github.com/Kan-O435/studytimer-back/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reports  service.WeeklyReportService
	Sessions service.SessionService
	Tasks    service.TaskService
	Reviews  service.ReviewService

	// UserID is the default user records are read and written for.
	UserID int64

	// IsInteractive reports whether stdin/stdout are attached to a
	// terminal; interactive forms and pretty rendering key off it.
	IsInteractive func() bool
}

// interactive is safe to call with a nil hook.
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studytimer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studytimer",
		Short:         "Study session tracker and weekly report builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newReportCmd(app),
		newSessionCmd(app),
		newTaskCmd(app),
		newReviewCmd(app),
	)

	return root
}

// addUserFlag registers the shared --user flag with the app default.
func addUserFlag(fs *pflag.FlagSet, app *App, target *int64) {
	fs.Int64Var(target, "user", app.UserID, "user id to operate on")
}

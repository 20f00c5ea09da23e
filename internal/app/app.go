package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/tiergen/internal/config"
	"github.com/rook-computer/tiergen/internal/logging"
	"github.com/rook-computer/tiergen/internal/render"
	"github.com/rook-computer/tiergen/internal/state"
)

// App walks every sinner and identity in Config and renders the ones whose
// output does not exist yet.
type App struct {
	Config *config.Config
	Render render.Renderer
	Store  *state.Store
	Logger logging.Logger
	Out    io.Writer // progress lines, one per identity

	// KeepGoing collects failures and moves on to the next identity instead
	// of stopping at the first one.
	KeepGoing bool
}

func New(cfg *config.Config, renderer render.Renderer) *App {
	return &App{Config: cfg, Render: renderer, Store: state.NewStore(), Logger: logging.NoopLogger{}, Out: io.Discard}
}

// Run renders all missing identities and returns how many images were
// generated. Without KeepGoing the first failure stops the batch; with it the
// failures are joined into the returned error. A cancelled ctx stops the
// batch between two renders.
func (app *App) Run(ctx context.Context) (int, error) {
	if app.Config == nil {
		return 0, errors.New("no config loaded")
	}
	if app.Render == nil {
		return 0, errors.New("no renderer configured")
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	app.Logger = logging.OrNoop(app.Logger)
	if app.Out == nil {
		app.Out = io.Discard
	}

	app.Store.SetPhase(state.RUNNING)
	var errs []error
	for index, sinner := range app.Config.Sinners {
		err := app.generateIDs(ctx, index, sinner)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			app.Store.SetPhase(state.CANCELLED)
			return app.generated(), ctx.Err()
		}
		err = fmt.Errorf("sinner %q could not be generated: %w", sinner.Name, err)
		if !app.KeepGoing {
			app.Store.SetPhase(state.ERROR)
			return app.generated(), err
		}
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		app.Store.SetPhase(state.ERROR)
		return app.generated(), errors.Join(errs...)
	}
	app.Store.SetPhase(state.DONE)
	snap := app.Store.Snapshot()
	app.Logger.Infof("batch", "finished: generated=%d skipped=%d", snap.Generated, snap.Skipped)
	return snap.Generated, nil
}

// generateIDs renders every identity of one sinner.
func (app *App) generateIDs(ctx context.Context, sinnerIndex int, sinner config.Sinner) error {
	var errs []error
	for idIndex, id := range sinner.Identities {
		if err := ctx.Err(); err != nil {
			return err
		}

		label := fmt.Sprintf("(%02d) %s id #%02d: %s", sinnerIndex+1, sinner.Name, idIndex+1, id.Name)
		output := app.Config.OutputImage(sinnerIndex, sinner, idIndex, id)
		if _, err := os.Stat(output); err == nil {
			app.Store.RecordSkipped()
			fmt.Fprintf(app.Out, "Skipping %s (exists)\n", label)
			app.Logger.Infof("batch", "skip %s: already exists", output)
			continue
		}

		fmt.Fprintf(app.Out, "Creating %s\n", label)
		err := app.Render.Render(render.Request{
			InputPath:  app.Config.InputImage(sinner, id),
			OutputPath: output,
			AssetDir:   app.Config.AssetFolder,
			Rarity:     id.Rarity,
			Title:      id.Name,
			Name:       sinner.Name,
		})
		if err != nil {
			app.Store.RecordFailure(state.Failure{Sinner: sinner.Name, Identity: id.Name, Err: err})
			app.Logger.Errorf("batch", "%s / %s: %v", sinner.Name, id.Name, err)
			err = fmt.Errorf("identity %q could not be generated: %w", id.Name, err)
			if !app.KeepGoing {
				return err
			}
			errs = append(errs, err)
			continue
		}
		app.Store.RecordGenerated()
	}
	return errors.Join(errs...)
}

func (app *App) generated() int {
	return app.Store.Snapshot().Generated
}

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"town-explorer/internal/camera"
	"town-explorer/internal/commands"
	"town-explorer/internal/console"
	"town-explorer/internal/debug"
	"town-explorer/internal/engineconfig"
	"town-explorer/internal/fonts"
	"town-explorer/internal/frame"
	"town-explorer/internal/graphics"
	"town-explorer/internal/input"
	"town-explorer/internal/labels"
	"town-explorer/internal/logger"
	"town-explorer/internal/overlay"
	"town-explorer/internal/picking"
	"town-explorer/internal/primitives"
	"town-explorer/internal/scatter"
	"town-explorer/internal/scene"
	"town-explorer/internal/world"
)

// fetchBudget bounds the whole entity download, retries included.
const fetchBudget = 30 * time.Second

// viewer is the running application: it owns every subsystem and implements commands.Town.
type viewer struct {
	cfg      *engineconfig.Config
	log      *logger.Logger
	entities map[string]*world.Entity
	list     []*world.Entity

	ctrl      camera.Controller
	state     *input.State
	poller    *graphics.Poller
	picker    *picking.Service
	projector *labels.Projector
	scene     *scene.Scene
	overlay   *overlay.Overlay
	console   *console.Console
	debug     *debug.Debug
	sched     *frame.Scheduler
	watcher   *primitives.Watcher
	slow      *rate.Limiter

	frame input.Frame
	dt    float32
	view  camera.View
}

func runViewer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	base, err := newLogger(cfg.Log, cfg.Log.Path)
	if err != nil {
		return err
	}
	defer base.Sync()
	log := base.With(zap.String("session", uuid.NewString()))

	win := graphics.Window{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.Window.TargetFPS,
		Fullscreen: cfg.Window.Fullscreen,
	}
	defer graphics.Close()
	if err := graphics.Open(win); err != nil {
		log.Error("window unavailable", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchBudget)
	entities, instances := buildTown(ctx, cfg, log)
	cancel()

	v := newViewer(cfg, log, entities, instances)
	defer v.close()

	log.Info("viewer started", zap.Stringer("camera", v.ctrl.Mode()))
	if err := graphics.Run(v.update, v.draw); err != nil {
		if errors.Is(err, graphics.ErrNoRenderTarget) {
			log.Error("render target lost", zap.Error(err))
		}
		return err
	}
	return nil
}

func newViewer(cfg *engineconfig.Config, log *logger.Logger, entities []*world.Entity, instances []scatter.Instance) *viewer {
	palette, err := primitives.LoadPalette(cfg.Data.Palette)
	if err != nil {
		log.Warn("palette unreadable, using defaults", zap.String("path", cfg.Data.Palette), zap.Error(err))
	}

	reg := picking.NewRegistry()
	hl := picking.NewHighlighter(cfg.Picking.HighlightDelta)
	v := &viewer{
		cfg:       cfg,
		log:       log,
		entities:  world.ByID(entities),
		list:      entities,
		state:     input.New(),
		projector: labels.New(cfg.Labels.Config, cfg.Camera.Lens),
		overlay:   overlay.New(entities),
		debug:     debug.New(),
		slow:      rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
	v.scene = scene.New(cfg.Camera.Lens, palette, entities, instances, reg, hl)
	v.scene.GridVisible = cfg.Debug.Grid
	v.overlay.LabelsEnabled = cfg.Labels.Enabled
	v.debug.ShowFPS = cfg.Debug.ShowFPS
	v.debug.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	v.debug.ShowCamera = cfg.Debug.ShowCamera

	v.picker = picking.NewService(cfg.Picking, cfg.Camera.Lens, reg, hl, entities)
	v.picker.OnSelectionChanged = func(r *world.Record) {
		if r == nil {
			log.Zap().Debug("hover cleared")
			return
		}
		log.Zap().Debug("hover", zap.String("id", r.ID), zap.String("name", r.Name))
	}

	v.ctrl = camera.Select(cfg.Camera, cfg.Mobile.Force || graphics.TouchCapable())
	v.poller = graphics.NewPoller(v.state, v.ctrl.Mode() == camera.ModeDesktop)
	v.state.OnCaptureChange = func(from, to input.Capture) {
		log.Zap().Debug("capture", zap.Stringer("from", from), zap.Stringer("to", to))
	}

	cmds := commands.NewRegistry()
	commands.RegisterTown(cmds, v)
	v.console = console.New(log, cmds)
	v.console.OnOpen = v.poller.Release
	v.poller.Blocked = v.console.IsOpen

	if cfg.Window.Font != "" {
		if f, err := fonts.Load(cfg.Window.Font, 20); err != nil {
			log.Warn("font unavailable, using default", zap.String("font", cfg.Window.Font), zap.Error(err))
		} else {
			v.overlay.SetFont(f)
			v.console.SetFont(f)
		}
	}

	if cfg.Data.WatchPalette {
		w, err := primitives.WatchPalette(cfg.Data.Palette, log)
		if err != nil {
			log.Warn("palette watch disabled", zap.Error(err))
		} else {
			v.watcher = w
		}
	}

	v.sched = &frame.Scheduler{
		Controller:   v.ctrl,
		Decor:        []frame.Decor{v.scene},
		Picker:       v.picker,
		Render:       v.render,
		Labels:       v.labels,
		EveryNFrames: cfg.Picking.EveryNFrames,
	}
	return v
}

func (v *viewer) close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	v.scene.Unload()
}

// update polls devices; the frame itself runs in draw so rendering happens inside BeginDrawing.
func (v *viewer) update(dt float32) {
	v.console.Poll()
	v.poller.Poll()
	v.frame = v.state.Frame()
	v.dt = dt
	if dt > frame.DefaultMaxDelta && v.slow.Allow() {
		v.log.Warn("long frame clamped", zap.Float32("dt", dt))
	}
	if v.watcher != nil {
		select {
		case p := <-v.watcher.Changes():
			v.scene.SetPalette(p)
		default:
		}
	}
}

func (v *viewer) draw() {
	w, h := graphics.ScreenSize()
	v.view = v.sched.Tick(v.frame, v.dt, camera.Viewport{Width: w, Height: h})
	v.console.Draw()
	sel := v.picker.State()
	v.debug.Draw(v.ctrl.Mode(), v.view.Eye, sel.Hovered, sel.Selected)
}

func (v *viewer) render(view camera.View) {
	v.scene.Sync(view)
	v.scene.Draw()
}

func (v *viewer) labels(view camera.View, vp camera.Viewport) {
	ls := v.projector.Project(view, vp, v.list)
	hovered, _ := v.picker.Hovered()
	selected, _ := v.picker.Selected()
	v.overlay.Update(v.frame, ls, hovered, selected)
	v.overlay.Draw()
}

func (v *viewer) Goto(id string) error {
	e, ok := v.entities[id]
	if !ok {
		return fmt.Errorf("goto: unknown entity %q", id)
	}
	v.ctrl.Focus(e.Position.X, e.Position.Z)
	v.log.Info("camera moved", zap.String("id", id))
	return nil
}

func (v *viewer) Select(id string) error {
	if !v.picker.SelectID(id) {
		return fmt.Errorf("select: unknown entity %q", id)
	}
	return nil
}

func (v *viewer) SetLabels(on bool) { v.overlay.LabelsEnabled = on }
func (v *viewer) SetFPS(on bool)    { v.debug.ShowFPS = on }
func (v *viewer) SetGrid(on bool)   { v.scene.GridVisible = on }

package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	// moveHold keeps a direction held after its key event. Terminals only
	// report key presses, so auto-repeat refreshes the hold.
	moveHold = 200 * time.Millisecond
	// maxStep bounds dt after a stall so nothing tunnels through the arena.
	maxStep = 0.1
	// deathLinger keeps the final frame on screen before the summary.
	deathLinger = 1500 * time.Millisecond
)

// SoundPlayer consumes the sounds a frame produced.
type SoundPlayer interface {
	Play(kinds []component.SoundKind)
}

// Settings configures a terminal Game. Empty Class, Map and Difficulty
// fields are asked for through menus.
type Settings struct {
	Config     *config.Config
	Class      string
	Map        string
	Difficulty string
	Seed       int64 // 0 picks a time-based seed per run
	PlayerName string
	Logger     *slog.Logger
	Sound      SoundPlayer
}

// Game is the terminal front end: menus, the realtime loop and the run summary.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Settings
	log      *slog.Logger
	events   chan tcell.Event

	moveUntil time.Time
}

// New creates a Game on the local terminal.
func New(opts Settings) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates a Game on an already-initialized screen. Run takes
// ownership and finalizes it on return.
func NewWithScreen(screen tcell.Screen, opts Settings) *Game {
	if opts.Config == nil {
		opts.Config = config.New(config.Normal)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Game{
		screen: screen,
		opts:   opts,
		log:    opts.Logger,
		events: make(chan tcell.Event, 100),
	}
}

// Run is the main loop. Supports multiple consecutive runs via Try Again.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.pollEvents(ctx)

	for {
		class, ok := g.pickClass(ctx)
		if !ok {
			return nil
		}
		arena, ok := g.pickMap(ctx)
		if !ok {
			return nil
		}
		diff, ok := g.pickDifficulty(ctx)
		if !ok {
			return nil
		}

		cfg := *g.opts.Config
		cfg.SetDifficulty(diff)
		seed := g.opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sess, err := NewSession(Options{Config: &cfg, Class: class.ID, Map: arena.ID, Seed: seed, Logger: g.log})
		if err != nil {
			return fmt.Errorf("start run: %w", err)
		}

		finished := g.play(ctx, sess)
		saveRunLog(g.log, sess.RunLog(g.opts.PlayerName))
		if !finished || !g.showEndScreen(ctx, sess) {
			return nil
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (g *Game) pollEvents(ctx context.Context) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(g.events)
			return
		}
		select {
		case g.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// nextEvent blocks for the next screen event.
func (g *Game) nextEvent(ctx context.Context) (tcell.Event, bool) {
	select {
	case ev, ok := <-g.events:
		return ev, ok
	case <-ctx.Done():
		return nil, false
	}
}

// play runs the realtime loop until the player dies (true) or quits (false).
func (g *Game) play(ctx context.Context, sess *Session) bool {
	g.renderer = render.NewRenderer(g.screen, sess.Config().Width, sess.Config().Height)
	g.moveUntil = time.Time{}

	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()

	last := time.Now()
	var diedAt time.Time
	for {
		select {
		case <-ctx.Done():
			return false

		case ev, ok := <-g.events:
			if !ok {
				return false
			}
			if !g.handleEvent(sess, ev, time.Now()) {
				return false
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			if !g.moveUntil.IsZero() && now.After(g.moveUntil) {
				sess.Input().SetMove(0, 0)
				g.moveUntil = time.Time{}
			}

			sess.Tick(dt)
			if audio := sess.DrainAudio(); len(audio) > 0 && g.opts.Sound != nil {
				g.opts.Sound.Play(audio)
			}
			g.renderer.Draw(sess.Snapshot())

			if sess.PlayerDead() {
				if diedAt.IsZero() {
					diedAt = now
					g.log.Info("player died", "wave", sess.Wave(), "time", sess.Stats().SurvivalTime)
				} else if now.Sub(diedAt) >= deathLinger {
					return true
				}
			}
		}
	}
}

// handleEvent applies one terminal event. Returns false when the player quits.
func (g *Game) handleEvent(sess *Session, ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		action := keyToAction(ev)
		if action == ActionQuit {
			return false
		}
		g.applyAction(sess, action, now)
	}
	return true
}

func (g *Game) applyAction(sess *Session, action Action, now time.Time) {
	if i, ok := actionToChoice(action); ok {
		if err := sess.ChooseUpgrade(i); err != nil && !errors.Is(err, ErrPlayerDead) {
			g.log.Debug("upgrade ignored", "choice", i+1, "err", err)
		}
		return
	}
	if action == ActionConfirm && sess.Paused() {
		_ = sess.ChooseUpgrade(0)
		return
	}
	if slot, ok := actionToSlot(action); ok {
		sess.Input().Press(slot)
		return
	}
	if action == ActionStop {
		sess.Input().SetMove(0, 0)
		g.moveUntil = time.Time{}
		return
	}
	if dx, dy := actionToDelta(action); dx != 0 || dy != 0 {
		sess.Input().SetMove(dx, dy)
		g.moveUntil = now.Add(moveHold)
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen(ctx context.Context, sess *Session) bool {
	stats := sess.Stats()
	run := sess.RunLog(g.opts.PlayerName)

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorGold)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			drawScreenText(g.screen, 2, y, l, dim)
			drawScreenText(g.screen, 22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		drawScreenText(g.screen, 2, y, "THE HORDE CLAIMS YOU", gold)
		badge := "[DEFEAT]"
		drawScreenText(g.screen, sw-len(badge)-1, y, badge, red)
		y += 2

		label(y, "Class:", sess.Class().Name)
		y++
		label(y, "Arena:", sess.arena.Name)
		y++
		label(y, "Difficulty:", run.Difficulty)
		y++
		label(y, "Level:", fmt.Sprintf("%d", run.Level))
		y++
		label(y, "Survived:", fmt.Sprintf("%d:%02d", int(stats.SurvivalTime)/60, int(stats.SurvivalTime)%60))
		y++
		label(y, "Highest Wave:", fmt.Sprintf("%d", stats.HighestWave))
		y += 2

		label(y, "Enemies Slain:", fmt.Sprintf("%d", stats.Kills))
		y++
		label(y, "Bosses Slain:", fmt.Sprintf("%d", stats.BossesKilled))
		y++
		label(y, "Damage Dealt:", fmt.Sprintf("%.0f", stats.DamageDealt))
		y++
		label(y, "Damage Taken:", fmt.Sprintf("%.0f", stats.DamageTaken))
		y++
		label(y, "Abilities Cast:", fmt.Sprintf("%d", stats.AbilitiesCast))
		y++
		label(y, "Power-ups:", fmt.Sprintf("%d", stats.PowerUpsCollected))
		y++
		label(y, "Evolutions:", fmt.Sprintf("%d", stats.WeaponsEvolved))
		y += 2

		sep(y)
		y += 2

		drawScreenText(g.screen, 2, y, "[R] Try Again", green)
		drawScreenText(g.screen, 18, y, "[Q] Quit", red)

		g.screen.Show()

		ev, ok := g.nextEvent(ctx)
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false
			}
		}
	}
}

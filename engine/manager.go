package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/highscore"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

// ErrQuit is returned by Step when the player asks to leave
var ErrQuit = errors.New("quit requested")

// Options tunes a Manager; zero fields take the constants defaults
type Options struct {
	TickInterval time.Duration
	MaxSpan      int
	MinWidth     int
	MinHeight    int
	Seed         uint64

	Keys   *input.KeyTable
	Glyphs *render.Glyphs
	Logger logrus.FieldLogger
	Status *status.Registry
}

// Manager owns the game state and runs the loop against a terminal.Screen
type Manager struct {
	// ===== Collaborators =====

	screen   terminal.Screen
	store    highscore.Store
	renderer *render.Renderer
	keys     *input.KeyTable
	spawner  *Spawner
	log      logrus.FieldLogger
	stats    *status.Registry

	// ===== Immutable After Init =====

	tick      time.Duration
	maxSpan   int
	minWidth  int
	minHeight int

	// ===== Layout =====
	// Recomputed only when the polled screen size changes

	width, height int
	bounds        core.Bounds
	walls         core.Walls

	// ===== Round =====

	state     State
	roundID   string
	snake     *Snake
	food      core.Point
	hasFood   bool
	score     int
	highscore int
	newRecord bool

	// ===== Counters =====
	// Cached from the registry; bumped without lookups

	rounds   *atomic.Int64
	ticks    *atomic.Int64
	eaten    *atomic.Int64
	deaths   *atomic.Int64
	wins     *atomic.Int64
	resizes  *atomic.Int64
	redraws  *atomic.Int64
	pauses   *atomic.Int64
	restarts *atomic.Int64
}

// NewManager creates a manager drawing to screen; the highscore is read from store once
func NewManager(screen terminal.Screen, store highscore.Store, opts Options) *Manager {
	if opts.TickInterval <= 0 {
		opts.TickInterval = constants.TickInterval
	}
	if opts.MaxSpan <= 0 {
		opts.MaxSpan = constants.ArenaMaxSpan
	}
	if opts.MinWidth <= 0 {
		opts.MinWidth = constants.MinScreenWidth
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = constants.MinScreenHeight
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	glyphs := render.DefaultGlyphs()
	if opts.Glyphs != nil {
		glyphs = *opts.Glyphs
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	m := &Manager{
		screen:   screen,
		store:    store,
		renderer: render.NewRenderer(screen, glyphs),
		keys:     opts.Keys,
		spawner:  NewSpawner(opts.Seed),
		log:      opts.Logger.WithField("component", "engine"),
		stats:    opts.Status,

		tick:      opts.TickInterval,
		maxSpan:   opts.MaxSpan,
		minWidth:  opts.MinWidth,
		minHeight: opts.MinHeight,

		highscore: store.Load(),

		rounds:   opts.Status.Counter(status.Rounds),
		ticks:    opts.Status.Counter(status.Ticks),
		eaten:    opts.Status.Counter(status.Food),
		deaths:   opts.Status.Counter(status.Deaths),
		wins:     opts.Status.Counter(status.Wins),
		resizes:  opts.Status.Counter(status.Resizes),
		redraws:  opts.Status.Counter(status.Redraws),
		pauses:   opts.Status.Counter(status.Pauses),
		restarts: opts.Status.Counter(status.Restarts),
	}
	return m
}

// Run plays rounds until the player quits or ctx is cancelled
// Both end with a nil error; terminal failures are returned
func (m *Manager) Run(ctx context.Context) error {
	err := m.Start(ctx)
	for err == nil {
		err = m.Step(ctx)
	}

	m.log.WithFields(logrus.Fields(m.stats.Snapshot())).Info("session ended")

	if errors.Is(err, ErrQuit) || ctx.Err() != nil {
		return nil
	}
	return err
}

// Start lays out the arena for the current screen and begins the first round
func (m *Manager) Start(ctx context.Context) error {
	if err := m.syncSize(ctx); err != nil {
		return err
	}
	m.reset()
	return nil
}

// Step runs one loop iteration: a tick while playing, one key wait otherwise
func (m *Manager) Step(ctx context.Context) error {
	if err := m.syncSize(ctx); err != nil {
		return err
	}

	switch m.state {
	case StatePlaying:
		return m.playTick(ctx)
	case StatePaused:
		return m.waitPaused(ctx)
	default:
		return m.waitRestart(ctx)
	}
}

// State returns the current loop phase
func (m *Manager) State() State {
	return m.state
}

// Score returns the score of the current round
func (m *Manager) Score() int {
	return m.score
}

// Highscore returns the best score seen, including the current session
func (m *Manager) Highscore() int {
	return m.highscore
}

// Snake returns the current snake
func (m *Manager) Snake() *Snake {
	return m.snake
}

// Food returns the food position, if any
func (m *Manager) Food() (core.Point, bool) {
	return m.food, m.hasFood
}

// Bounds returns the current wall rectangle
func (m *Manager) Bounds() core.Bounds {
	return m.bounds
}

// RoundID returns the id of the current round
func (m *Manager) RoundID() string {
	return m.roundID
}

func (m *Manager) playTick(ctx context.Context) error {
	ev, err := m.screen.ReadKey(ctx, m.tick)
	if err != nil {
		return err
	}
	// Size is polled at the top of the next Step
	if ev.Key == terminal.KeyResize {
		return nil
	}

	switch action := m.keys.Lookup(ev); action {
	case input.ActionQuit:
		return ErrQuit
	case input.ActionPause:
		m.pause()
		return nil
	default:
		if d, ok := action.Direction(); ok {
			m.snake.SetDirection(d)
		}
	}

	m.advance()
	return nil
}

// advance moves the snake and resolves food, collisions and spawning for one tick
func (m *Manager) advance() {
	m.snake.Update()
	m.ticks.Add(1)

	if m.hasFood && m.snake.Head() == m.food {
		m.snake.Grow()
		m.score += constants.FoodScore
		m.hasFood = false
		m.eaten.Add(1)
		m.renderer.DrawStatus(m.bounds, m.score, m.highscore)
	}

	if c := CheckCollision(m.snake, m.walls, m.bounds); c != CollisionNone {
		m.die(c)
		return
	}

	if !m.hasFood && !m.spawnFood() {
		m.win()
		return
	}

	evicted, hasEvicted := m.snake.Evicted()
	m.renderer.Step(render.Frame{
		Head:       m.snake.Head(),
		Neck:       m.snake.Body()[0],
		Evicted:    evicted,
		HasEvicted: hasEvicted,
		Food:       m.food,
		HasFood:    m.hasFood,
	}, m.snake.Occupies)
}

// spawnFood places and draws new food, false when the interior is full
func (m *Manager) spawnFood() bool {
	p, ok := m.spawner.Spawn(m.bounds.Interior(), m.snake, m.food, m.hasFood)
	if !ok {
		return false
	}
	m.food, m.hasFood = p, true
	m.renderer.DrawFood(p)
	return true
}

func (m *Manager) pause() {
	m.state = StatePaused
	m.pauses.Add(1)
	m.roundLog().Debug("paused")
	m.renderer.Overlay(m.bounds.Center(), constants.TextPaused)
}

func (m *Manager) waitPaused(ctx context.Context) error {
	ev, err := m.screen.ReadKey(ctx, terminal.Block)
	if err != nil {
		return err
	}

	switch m.keys.Lookup(ev) {
	case input.ActionQuit:
		return ErrQuit
	case input.ActionPause:
		m.state = StatePlaying
		m.roundLog().Debug("resumed")
		m.redraw()
	}
	return nil
}

func (m *Manager) waitRestart(ctx context.Context) error {
	ev, err := m.screen.ReadKey(ctx, terminal.Block)
	if err != nil {
		return err
	}
	if ev.Key == terminal.KeyResize {
		return nil
	}

	if m.keys.Lookup(ev) == input.ActionQuit {
		return ErrQuit
	}
	if m.keys.IsRestart(ev) {
		m.restarts.Add(1)
		m.reset()
	}
	return nil
}

func (m *Manager) die(c Collision) {
	m.state = StateDead
	m.deaths.Add(1)
	m.finishRound()
	m.roundLog().WithField("collision", c.String()).Info("round lost")
	m.drawEndScreen()
}

func (m *Manager) win() {
	m.state = StateWon
	m.wins.Add(1)
	m.finishRound()
	m.roundLog().Info("round won")
	m.drawEndScreen()
}

// finishRound records and persists a beaten highscore
func (m *Manager) finishRound() {
	m.newRecord = m.score > m.highscore
	if m.newRecord {
		m.highscore = m.score
		m.store.Save(m.score)
	}
}

func (m *Manager) drawEndScreen() {
	title := constants.TextDied
	if m.state == StateWon {
		title = constants.TextWon
	}
	high := fmt.Sprintf(constants.TextHighscore, m.highscore)
	if m.newRecord {
		high = fmt.Sprintf(constants.TextNewRecord, m.highscore)
	}
	m.renderer.Overlay(m.bounds.Center(),
		title,
		fmt.Sprintf(constants.TextScore, m.score),
		high,
		constants.TextRestartHint,
	)
}

// reset starts a new round at the arena center
func (m *Manager) reset() {
	m.roundID = uuid.NewString()
	m.snake = NewSnake(m.bounds.Center(), constants.InitialSnakeLength)
	m.food, m.hasFood = core.Point{}, false
	m.score = 0
	m.newRecord = false
	m.walls = core.NewWalls(m.bounds)
	m.state = StatePlaying
	m.rounds.Add(1)

	m.roundLog().WithField("bounds", m.bounds.String()).Info("round started")

	spawned := m.spawnFood()
	m.redraw()
	if !spawned {
		m.win()
	}
}

// syncSize polls the screen and re-lays the arena when the size changed
func (m *Manager) syncSize(ctx context.Context) error {
	w, h := m.screen.Size()
	if w == m.width && h == m.height {
		return nil
	}

	if !m.playable(w, h) {
		var err error
		if w, h, err = m.awaitResize(ctx); err != nil {
			return err
		}
	}

	m.resizes.Add(1)
	m.relayout(w, h)
	return nil
}

func (m *Manager) playable(w, h int) bool {
	return w >= m.minWidth && h >= m.minHeight
}

// awaitResize halts the game behind a prompt until the screen is large enough
func (m *Manager) awaitResize(ctx context.Context) (int, int, error) {
	prev := m.state
	m.state = StateAwaitingResize
	m.log.WithField("state", m.state.String()).Debug("screen below minimum size")

	for {
		w, h := m.screen.Size()
		if m.playable(w, h) {
			m.state = prev
			return w, h, nil
		}
		m.renderer.ResizePrompt(w, h, m.minWidth, m.minHeight)

		ev, err := m.screen.ReadKey(ctx, terminal.Block)
		if err != nil {
			m.state = prev
			return 0, 0, err
		}
		if m.keys.Lookup(ev) == input.ActionQuit {
			m.state = prev
			return 0, 0, ErrQuit
		}
	}
}

// relayout recomputes the arena for a w x h screen and carries the round over
// Entities shift by the center delta and are clamped into the new interior
func (m *Manager) relayout(w, h int) {
	old := m.bounds
	m.width, m.height = w, h
	m.bounds = core.NewBounds(w, h, m.maxSpan, constants.StatusLines)
	m.walls = core.NewWalls(m.bounds)

	if m.snake != nil {
		delta := m.bounds.Center().Sub(old.Center())
		interior := m.bounds.Interior()
		m.snake.Translate(delta, interior)
		if m.hasFood {
			m.food = interior.Clamp(m.food.Add(delta))
			// Dropped food is respawned by the next tick
			if m.snake.Occupies(m.food) {
				m.hasFood = false
			}
		}
	}

	m.log.WithFields(logrus.Fields{
		"width":  w,
		"height": h,
		"bounds": m.bounds.String(),
	}).Debug("layout changed")

	m.redraw()
}

// redraw repaints the scene and the overlay of the current state
func (m *Manager) redraw() {
	if m.snake == nil {
		return
	}
	m.redraws.Add(1)

	m.renderer.Redraw(render.Scene{
		Bounds:    m.bounds,
		Walls:     m.walls,
		Head:      m.snake.Head(),
		Body:      m.snake.Body(),
		Food:      m.food,
		HasFood:   m.hasFood,
		Score:     m.score,
		Highscore: m.highscore,
	})

	switch {
	case m.state == StatePaused:
		m.renderer.Overlay(m.bounds.Center(), constants.TextPaused)
	case m.state.RoundOver():
		m.drawEndScreen()
	}
}

func (m *Manager) roundLog() *logrus.Entry {
	return m.log.WithFields(logrus.Fields{
		"round": m.roundID,
		"state": m.state.String(),
		"score": m.score,
	})
}

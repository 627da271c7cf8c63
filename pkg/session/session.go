package session

import (
	"context"
	"log"
	"maps"

	"github.com/edp1096/toy-circuit/pkg/circuit"
	"github.com/edp1096/toy-circuit/pkg/simulation"
)

// Session owns one circuit state and drives its simulation.
// It is not safe for concurrent use; while Run is active, send work as Requests.
type Session struct {
	cfg    Config
	store  *circuit.Store
	solver simulation.Solver
	logger *log.Logger
	state  circuit.State

	OnChange func(circuit.State) // Called after every state change
}

type Option func(*Session)

func WithStore(store *circuit.Store) Option {
	return func(s *Session) { s.store = store }
}

func WithSolver(solver simulation.Solver) Option {
	return func(s *Session) { s.solver = solver }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithState(st circuit.State) Option {
	return func(s *Session) { s.state = st }
}

func New(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		store:  circuit.NewStore(),
		solver: simulation.SingleDriver{},
		logger: log.Default(),
		state:  circuit.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state. The readings map is copied so callers
// cannot write through to the session.
func (s *Session) State() circuit.State {
	st := s.state
	st.Simulation.ComponentStates = maps.Clone(st.Simulation.ComponentStates)
	return st
}

func (s *Session) Store() *circuit.Store { return s.store }

func (s *Session) set(st circuit.State) {
	s.state = st
	if s.OnChange != nil {
		s.OnChange(st)
	}
}

func (s *Session) Dispatch(op circuit.Op) {
	s.set(s.store.Reduce(s.state, op))
}

// Tick runs one periodic pass if the simulation is running.
func (s *Session) Tick() bool {
	if !s.state.Simulation.IsRunning {
		return false
	}
	s.set(simulation.Advance(s.store, s.state, s.cfg.TickDelta, s.solver, s.logger))
	return true
}

// Step runs one pass regardless of the running flag.
func (s *Session) Step() {
	s.set(simulation.Advance(s.store, s.state, s.cfg.StepDelta, s.solver, s.logger))
}

// Drop adds the component named by a palette payload at (x, y).
// A malformed payload is logged and ignored.
func (s *Session) Drop(payload []byte, x, y float64) bool {
	t, err := DecodeDrop(payload)
	if err != nil {
		s.logger.Printf("ignoring drop: %v", err)
		return false
	}
	s.Dispatch(circuit.AddComponent{Type: t, X: x, Y: y})
	return true
}

// Request is work applied by Run on its own goroutine.
type Request func(s *Session)

func OpRequest(op circuit.Op) Request {
	return func(s *Session) { s.Dispatch(op) }
}

func StepRequest() Request {
	return func(s *Session) { s.Step() }
}

func DropRequest(payload []byte, x, y float64) Request {
	return func(s *Session) { s.Drop(payload, x, y) }
}

// Run applies ticks and requests one at a time until ctx is done or requests is closed.
func (s *Session) Run(ctx context.Context, clock Clock, requests <-chan Request) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-clock.C():
			s.Tick()

		case req, ok := <-requests:
			if !ok {
				return nil
			}
			if req != nil {
				req(s)
			}
		}
	}
}

package app

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// UpdatesSubject carries "structural" when a new puzzle is installed and
// "signal" for every other change.
const UpdatesSubject = "session.updates"

var ErrNoPuzzle = errors.New("no puzzle loaded")

type Options struct {
	ClueOrder    ClueOrder
	Palette      []string
	DefaultTeams []string
}

// Service serializes every event against the current session. The session is
// replaced wholesale on load; a failed load keeps the previous one.
type Service struct {
	mu      sync.Mutex
	session *Session
	teams   *Teams
	order   ClueOrder

	NatsServer *server.Server

	NC *nats.Conn

	StartTime int64
}

func NewService(opts Options) *Service {
	s := &Service{
		teams:     NewTeams(opts.Palette),
		order:     opts.ClueOrder,
		StartTime: time.Now().UnixMilli(),
	}
	for _, name := range opts.DefaultTeams {
		s.teams.Add(name)
	}

	s.startNats()

	return s
}

func (s *Service) startNats() {
	opts := &server.Options{
		DontListen: true,
		NoLog:      true,
		NoSigs:     true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		log.Printf("Failed to create NATS server: %v", err)
		return
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		log.Printf("NATS server failed to become ready")
		return
	}
	s.NatsServer = ns

	nc, err := nats.Connect(ns.ClientURL(), nats.InProcessServer(ns))
	if err != nil {
		log.Printf("NATS client failed to connect: %v", err)
		return
	}
	s.NC = nc
}

func (s *Service) Shutdown() {
	if s.NC != nil {
		s.NC.Close()
	}

	if s.NatsServer != nil {
		s.NatsServer.Shutdown()
		s.NatsServer.WaitForShutdown()
	}
}

func (s *Service) BroadcastUpdate(structural bool) {
	if s.NC == nil {
		log.Printf("Broadcast skipped: NATS connection is nil")
		return
	}

	msg := "signal"
	if structural {
		msg = "structural"
	}

	_ = s.NC.Publish(UpdatesSubject, []byte(msg))
}

// Subscribe delivers update notifications until the returned cancel func is called.
func (s *Service) Subscribe() (<-chan *nats.Msg, func(), error) {
	if s.NC == nil {
		return nil, nil, errors.New("event bus unavailable")
	}
	ch := make(chan *nats.Msg, 16)
	sub, err := s.NC.ChanSubscribe(UpdatesSubject, ch)
	if err != nil {
		return nil, nil, fmt.Errorf("subscribing to %s: %w", UpdatesSubject, err)
	}
	return ch, func() { _ = sub.Unsubscribe() }, nil
}

func (s *Service) ClueOrder() ClueOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

func (s *Service) SetClueOrder(order ClueOrder) {
	s.mu.Lock()
	s.order = order
	s.mu.Unlock()
}

// LoadPuzzle decodes data and installs a fresh session. Decoding happens
// outside the lock; installation is a single swap.
func (s *Service) LoadPuzzle(filename string, data []byte) (*Puzzle, error) {
	parsed, err := ParsePuzzleFile(filename, data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}

	s.mu.Lock()
	p := NewPuzzle(parsed, s.order)
	s.session = NewSession(p)
	s.mu.Unlock()

	log.Printf("Loaded puzzle %q (%dx%d, %d across, %d down)",
		p.Title, p.Width, p.Height, len(p.Entries.Across), len(p.Entries.Down))
	s.BroadcastUpdate(true)
	return p, nil
}

// update runs fn against the current session under the lock and announces
// the change when fn reports one.
func (s *Service) update(fn func(*Session) bool) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return ErrNoPuzzle
	}
	changed := fn(s.session)
	s.mu.Unlock()

	if changed {
		s.BroadcastUpdate(false)
	}
	return nil
}

func (s *Service) Key(key Key, shift bool) error {
	return s.update(func(sess *Session) bool {
		return sess.Key(key, shift)
	})
}

func (s *Service) Input(text string) error {
	return s.update(func(sess *Session) bool {
		return sess.Input(text, s.teams.Selected())
	})
}

func (s *Service) FocusCell(i int) error {
	return s.update(func(sess *Session) bool {
		return sess.Focus(i)
	})
}

func (s *Service) ClickClue(ref EntryRef) error {
	return s.update(func(sess *Session) bool {
		return sess.ClickClue(ref)
	})
}

func (s *Service) Check() error {
	return s.update(func(sess *Session) bool {
		sess.Check()
		return true
	})
}

func (s *Service) AddTeam(name string) Team {
	s.mu.Lock()
	team := s.teams.Add(name)
	s.mu.Unlock()

	log.Printf("Added team %q (%s)", team.Name, team.ID)
	s.BroadcastUpdate(false)
	return team
}

func (s *Service) RemoveTeam(id string) error {
	s.mu.Lock()
	err := s.teams.Remove(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.BroadcastUpdate(false)
	return nil
}

func (s *Service) SelectTeam(id string) error {
	s.mu.Lock()
	err := s.teams.Select(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.BroadcastUpdate(false)
	return nil
}

// Snapshot is a consistent copy of everything the UI renders.
type Snapshot struct {
	Session   *Session
	Teams     []Team
	Selected  string
	Scores    map[string]int
	Standings []Standing
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Teams:    s.teams.List(),
		Selected: s.teams.Selected(),
	}
	if s.session != nil {
		snap.Session = s.session.Clone()
		snap.Scores = s.session.Scores(snap.Teams)
	} else {
		snap.Scores = Score(nil, nil, snap.Teams)
	}
	snap.Standings = Standings(snap.Scores, snap.Teams)
	return snap
}


package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// ErrInvalidRange is returned when a date range starts after it ends.
var ErrInvalidRange = errors.New("Start date cannot be after end date")

// Searcher runs a server-side text search.
type Searcher interface {
	SearchStories(ctx context.Context, query string) ([]model.Story, error)
}

// Options tunes the search behaviour of a Store.
type Options struct {
	Debounce       time.Duration
	MinQueryLength int
}

// Store composes the search query and the date range over the fetched
// story list. Query changes are debounced before a server search is sent;
// each change bumps a generation counter and results of older generations
// are dropped.
type Store struct {
	searcher Searcher
	opts     Options
	logger   *logger.Logger

	ctx  context.Context
	stop context.CancelFunc

	mu         sync.Mutex
	all        []model.Story
	query      string
	dateRange  *model.DateRange
	serverHits []model.Story
	searched   bool
	err        error

	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	pending    bool
	settled    chan struct{}
}

// NewStore creates a Store. Close must be called to release the debounce timer.
func NewStore(searcher Searcher, opts Options, logger *logger.Logger) *Store {
	if opts.MinQueryLength < 1 {
		opts.MinQueryLength = 1
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Store{
		searcher: searcher,
		opts:     opts,
		logger:   logger,
		ctx:      ctx,
		stop:     stop,
	}
}

// SetStories replaces the full list and re-applies the active query.
func (s *Store) SetStories(stories []model.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = clone(stories)
	s.applyQuery(s.query)
}

// All returns the full story list.
func (s *Store) All() []model.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.all)
}

// SetQuery changes the search text. An empty query shows every story at
// once; a long enough query is sent to the server after the debounce delay.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyQuery(strings.TrimSpace(query))
}

func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetDateRange activates a date range. A range missing either bound is
// ignored; a range whose start is after its end is rejected with ErrInvalidRange.
func (s *Store) SetDateRange(r model.DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return nil
	}
	if startOfDay(r.Start).After(startOfDay(r.End)) {
		return ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateRange = &r
	return nil
}

// DateRange returns the active range, if any.
func (s *Store) DateRange() (model.DateRange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dateRange == nil {
		return model.DateRange{}, false
	}
	return *s.dateRange, true
}

func (s *Store) ClearDateRange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateRange = nil
}

// Clear drops both the query and the date range.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dateRange = nil
	s.applyQuery("")
}

// Displayed returns the stories currently shown: the date range applied
// over the text search result. While a search is pending the query is
// matched locally.
func (s *Store) Displayed() []model.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	var base []model.Story
	switch {
	case s.query == "":
		base = clone(s.all)
	case s.searched:
		base = clone(s.serverHits)
	default:
		base = ApplyTextFilter(s.all, s.query)
	}

	if s.dateRange != nil {
		return ApplyDateFilter(base, *s.dateRange)
	}
	return base
}

// Pending reports whether a search is scheduled or in flight.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Err returns the error of the last search for the active query.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Settle waits until no search is pending.
func (s *Store) Settle(ctx context.Context) error {
	for {
		s.mu.Lock()
		if !s.pending {
			s.mu.Unlock()
			return nil
		}
		settled := s.settled
		s.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops the pending search, if any.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.abort()
	s.stop()
}

func (s *Store) applyQuery(query string) {
	s.generation++
	s.abort()

	s.query = query
	s.serverHits = nil
	s.searched = false
	s.err = nil

	if utf8.RuneCountInString(query) < s.opts.MinQueryLength {
		return
	}

	gen := s.generation
	s.pending = true
	s.settled = make(chan struct{})
	s.timer = time.AfterFunc(s.opts.Debounce, func() {
		s.search(gen, query)
	})
}

func (s *Store) search(gen uint64, query string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.mu.Unlock()

	stories, err := s.searcher.SearchStories(ctx, query)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("dashboard: stale search result dropped", "query", query)
		return
	}
	s.cancel = nil
	if err != nil {
		s.logger.Warn("dashboard: search failed", "query", query, "error", err)
		s.err = err
	} else {
		s.serverHits = stories
		s.searched = true
	}
	s.finish()
}

// abort cancels the scheduled or in-flight search and releases Settle waiters.
func (s *Store) abort() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.finish()
}

func (s *Store) finish() {
	if s.pending {
		s.pending = false
		close(s.settled)
	}
}

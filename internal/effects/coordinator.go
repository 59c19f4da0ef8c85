package effects

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/rolodex/internal/directory"
	"github.com/five82/rolodex/internal/history"
	"github.com/five82/rolodex/internal/state"
	"github.com/five82/rolodex/internal/storage"
)

// DefaultQuiet is the search debounce period.
const DefaultQuiet = 600 * time.Millisecond

// SearchResult carries the outcome of one debounced search back to the shell.
type SearchResult struct {
	Seq      uint64
	Query    string
	Contacts []directory.Contact
	Err      error
}

// Options configure a Coordinator.
type Options struct {
	History  *history.History
	Store    storage.Store
	Searcher directory.Searcher
	Logger   *zap.Logger
	Quiet    time.Duration
	// Dispatch delivers asynchronous results into the update loop,
	// usually (*tea.Program).Send. It may also be set later with SetDispatch.
	Dispatch func(tea.Msg)
}

// Coordinator turns state transitions into side effects: history pushes,
// storage writes and debounced directory searches.
type Coordinator struct {
	history   *history.History
	store     storage.Store
	searcher  directory.Searcher
	logger    *zap.Logger
	debouncer *Debouncer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	dispatch func(tea.Msg)
	inFlight context.CancelFunc
	closed   bool
}

// New builds a Coordinator. Nil collaborators are replaced with inert ones.
func New(opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	quiet := opts.Quiet
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	hist := opts.History
	if hist == nil {
		hist = history.New(state.RouteHome)
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemory()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		history:   hist,
		store:     store,
		searcher:  opts.Searcher,
		logger:    logger,
		debouncer: NewDebouncer(quiet),
		ctx:       ctx,
		cancel:    cancel,
		dispatch:  opts.Dispatch,
	}
}

// SetDispatch installs the function used to deliver SearchResult messages.
func (c *Coordinator) SetDispatch(dispatch func(tea.Msg)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch = dispatch
}

// History returns the navigation stack the coordinator pushes onto.
func (c *Coordinator) History() *history.History {
	return c.history
}

// Handle runs the effects for the transition prev → next and returns the
// follow-up patch the caller must apply synchronously (empty when none).
func (c *Coordinator) Handle(prev, next state.ApplicationState) state.Patch {
	followUp := state.NewPatch()
	for _, intent := range Diff(prev, next) {
		switch intent.Kind {
		case RouteChanged:
			c.onRouteChanged(intent)
		case SearchTextChanged:
			followUp = followUp.Merge(c.onSearchTextChanged(intent, next))
		case FavoritesChanged:
			c.onFavoritesChanged(intent)
		}
	}
	return followUp
}

func (c *Coordinator) onRouteChanged(intent Intent) {
	if c.history.Push(intent.Route) {
		c.logger.Debug("route pushed",
			zap.String("route", intent.Route),
			zap.Int("depth", c.history.Len()))
	}
}

func (c *Coordinator) onFavoritesChanged(intent Intent) {
	if err := storage.SaveFavorites(c.store, intent.Favorites); err != nil {
		c.logger.Warn("persist favorites failed", zap.Error(err))
		return
	}
	c.logger.Debug("favorites persisted", zap.Int("count", len(intent.Favorites)))
}

func (c *Coordinator) onSearchTextChanged(intent Intent, next state.ApplicationState) state.Patch {
	if err := storage.SaveSearchText(c.store, intent.SearchText); err != nil {
		c.logger.Warn("persist search text failed", zap.Error(err))
	}

	if c.searcher == nil {
		return state.NewPatch()
	}
	c.cancelInFlight()
	query := intent.SearchText
	seq := c.debouncer.Schedule(func(seq uint64) {
		c.runSearch(seq, query)
	})
	c.logger.Debug("search scheduled", zap.Uint64("seq", seq), zap.String("query", query))

	if next.IsLoading {
		return state.NewPatch()
	}
	return state.NewPatch().WithLoading(true)
}

func (c *Coordinator) runSearch(seq uint64, query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.inFlight = cancel
	dispatch := c.dispatch
	c.wg.Add(1)
	c.mu.Unlock()

	defer c.wg.Done()
	defer cancel()

	c.logger.Info("search issued", zap.Uint64("seq", seq), zap.String("query", query))
	contacts, err := c.searcher.Search(ctx, query)
	if err != nil {
		c.logger.Warn("search failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	if dispatch != nil {
		dispatch(SearchResult{Seq: seq, Query: query, Contacts: contacts, Err: err})
	}
}

func (c *Coordinator) cancelInFlight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight != nil {
		c.inFlight()
		c.inFlight = nil
	}
}

// ResultPatch converts a search result into the patch to apply. It reports
// false for results superseded by a newer search, which must be dropped.
func (c *Coordinator) ResultPatch(r SearchResult) (state.Patch, bool) {
	if !c.debouncer.IsLatest(r.Seq) {
		c.logger.Debug("stale search result dropped",
			zap.Uint64("seq", r.Seq),
			zap.Uint64("latest", c.debouncer.Latest()))
		return state.NewPatch(), false
	}
	if r.Err != nil {
		return state.NewPatch().
			WithContacts([]directory.Contact{}).
			WithErrorMessage(r.Err.Error()).
			WithLoading(false), true
	}
	contacts := r.Contacts
	if contacts == nil {
		contacts = []directory.Contact{}
	}
	c.logger.Debug("search applied", zap.Uint64("seq", r.Seq), zap.Int("contacts", len(contacts)))
	return state.NewPatch().
		WithContacts(contacts).
		WithErrorMessage("").
		WithLoading(false), true
}

// Close stops the pending search timer, cancels any in-flight request and
// waits for it to return.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.debouncer.Stop()
	c.cancel()
	c.wg.Wait()
}

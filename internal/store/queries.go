package store

import (
	"strings"
	"sync"
	"time"

	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/common/utils"
	"pipeline-studio/internal/models"
)

// DefaultQueryContext is recorded when a query is saved without a context
const DefaultQueryContext = "All Data Sources"

const queryDateLayout = "Jan 2, 2006"

// QueryStore is an ordered, in-memory list of saved queries.
// Every method is safe for concurrent use.
type QueryStore struct {
	mu      sync.RWMutex
	queries []models.SavedQuery
	seq     *utils.Sequence
	clock   func() time.Time
	logger  logging.Logger
}

// QueryOption configures a QueryStore
type QueryOption func(*QueryStore)

// WithQueryClock sets the clock used to date new queries
func WithQueryClock(clock func() time.Time) QueryOption {
	return func(s *QueryStore) {
		s.clock = clock
	}
}

// WithQueryLogger sets the store logger
func WithQueryLogger(logger logging.Logger) QueryOption {
	return func(s *QueryStore) {
		s.logger = logger
	}
}

// WithQueries seeds the store. New ids continue after the highest seeded id.
func WithQueries(seed ...models.SavedQuery) QueryOption {
	return func(s *QueryStore) {
		for _, q := range seed {
			s.queries = append(s.queries, q)
			s.seq.Observe(q.ID)
		}
	}
}

// NewQueryStore creates an empty store unless seeded through WithQueries
func NewQueryStore(opts ...QueryOption) *QueryStore {
	s := &QueryStore{
		seq:    utils.NewSequence(0),
		clock:  time.Now,
		logger: logging.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns queries whose text or context contains term, ignoring case.
// An empty term returns every query.
func (s *QueryStore) Search(term string) []models.SavedQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]models.SavedQuery, 0, len(s.queries))
	for _, q := range s.queries {
		if needle == "" ||
			strings.Contains(strings.ToLower(q.Query), needle) ||
			strings.Contains(strings.ToLower(q.Context), needle) {
			out = append(out, q)
		}
	}
	return out
}

// Save appends a query dated today. Blank query text is rejected.
func (s *QueryStore) Save(query, context string) (models.SavedQuery, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.logger.Debug("Saved query rejected", logging.String("reason", "blank query"))
		return models.SavedQuery{}, false
	}
	context = strings.TrimSpace(context)
	if context == "" {
		context = DefaultQueryContext
	}

	q := models.SavedQuery{
		ID:      s.seq.Next(),
		Query:   query,
		Context: context,
		Date:    s.clock().Format(queryDateLayout),
	}

	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	s.logger.Info("Query saved", logging.Int("query_id", q.ID))
	return q, true
}

// Delete removes the query with the given id
func (s *QueryStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.queries {
		if q.ID == id {
			s.queries = append(s.queries[:i], s.queries[i+1:]...)
			s.logger.Info("Query deleted", logging.Int("query_id", id))
			return true
		}
	}
	s.logger.Debug("Saved query delete rejected", logging.Int("query_id", id), logging.String("reason", "not found"))
	return false
}

package service

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
	"github.com/prasetyow/nota-spbu-api/pkg/format"
)

// defaultProduct is the product a fresh session's transaction starts with.
const defaultProduct = "Pertalite"

// session holds the per-session state: one live transaction, the active
// station profile ID, and the export busy flag.
type session struct {
	mu        sync.Mutex
	tx        *entity.Transaction
	stationID string
	exporting bool
}

// TransactionService keeps one in-memory transaction per session. Sessions
// expire after the configured TTL of inactivity; a new request under the same
// key then starts over from defaults.
type TransactionService struct {
	sessions *gocache.Cache
	table    *pricing.Table
	mu       sync.Mutex // guards create-if-absent
}

// NewTransactionService creates a new transaction service
func NewTransactionService(table *pricing.Table, ttl time.Duration) *TransactionService {
	return &TransactionService{
		sessions: gocache.New(ttl, 2*ttl),
		table:    table,
	}
}

func (s *TransactionService) getSession(sessionID string) *session {
	if v, ok := s.sessions.Get(sessionID); ok {
		s.sessions.SetDefault(sessionID, v) // refresh TTL
		return v.(*session)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.sessions.Get(sessionID); ok {
		return v.(*session)
	}

	sess := &session{
		tx: entity.NewTransaction(defaultProduct, s.table.PriceOf(defaultProduct)),
	}
	s.sessions.SetDefault(sessionID, sess)
	return sess
}

// Get returns a copy of the session's current transaction.
func (s *TransactionService) Get(sessionID string) *entity.Transaction {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	tx := *sess.tx
	return &tx
}

// UpdateTransactionInput carries field-by-field patches. All fields arrive as
// free text from the form; numeric ones are coerced, parse failures become 0.
type UpdateTransactionInput struct {
	Shift        *string
	Date         *string
	Time         *string
	PumpID       *string
	ProductName  *string
	UnitPrice    *string
	VolumeLiters *string
	CashAmount   *string
	OperatorName *string
	PlateNumber  *string
}

// Update applies a patch to the session's transaction. Changing ProductName
// recomputes UnitPrice from the pricing table, discarding any manually typed
// value: the price is derived from the product, never the other way around.
func (s *TransactionService) Update(sessionID string, input *UpdateTransactionInput) *entity.Transaction {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	tx := sess.tx
	if input.Shift != nil {
		tx.Shift = *input.Shift
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Time != nil {
		tx.Time = *input.Time
	}
	if input.PumpID != nil {
		tx.PumpID = *input.PumpID
	}
	if input.UnitPrice != nil {
		tx.UnitPrice = format.ParseAmount(*input.UnitPrice)
	}
	if input.VolumeLiters != nil {
		// Volume cannot go negative; cash and price pass through signed.
		tx.VolumeLiters = format.ParseAmount(*input.VolumeLiters)
		if tx.VolumeLiters < 0 {
			tx.VolumeLiters = 0
		}
	}
	if input.CashAmount != nil {
		tx.CashAmount = format.ParseAmount(*input.CashAmount)
	}
	if input.OperatorName != nil {
		tx.OperatorName = *input.OperatorName
	}
	if input.PlateNumber != nil {
		tx.PlateNumber = *input.PlateNumber
	}
	if input.ProductName != nil {
		tx.ProductName = *input.ProductName
		tx.UnitPrice = float64(s.table.PriceOf(*input.ProductName))
	}

	out := *tx
	return &out
}

// SetStation records the active station profile for the session.
func (s *TransactionService) SetStation(sessionID, stationID string) {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.stationID = stationID
}

// ActiveStation returns the session's active station profile ID, empty when
// none was selected yet.
func (s *TransactionService) ActiveStation(sessionID string) string {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.stationID
}

// RegenerateSequence assigns a fresh 6-digit sequence number and returns the
// updated transaction. Called immediately before each export so the rendered
// receipt always carries the new number, never a stale one.
func (s *TransactionService) RegenerateSequence(sessionID string) *entity.Transaction {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.tx.SequenceNumber = format.NewSequenceNumber()
	tx := *sess.tx
	return &tx
}

// BeginExport marks the session as exporting. Returns false when an export is
// already in flight.
func (s *TransactionService) BeginExport(sessionID string) bool {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.exporting {
		return false
	}
	sess.exporting = true
	return true
}

// EndExport clears the session's export busy flag. Safe to call on every
// exit path.
func (s *TransactionService) EndExport(sessionID string) {
	sess := s.getSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.exporting = false
}

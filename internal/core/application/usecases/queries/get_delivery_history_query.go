package queries

import (
	"errors"
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/guard"
)

var (
	ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
		"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// MaxDeliveryHistoryLimit caps how many records one query may return.
const MaxDeliveryHistoryLimit = 500

// GetDeliveryHistoryQuery retrieves archived delivery records, newest first.
//
// Example:
//
//	query, _ := NewGetDeliveryHistoryQuery(50)
//	handler := NewGetDeliveryHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery history: %w", err)
//	}
type GetDeliveryHistoryQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a query for archived deliveries.
// The limit must be positive; values above MaxDeliveryHistoryLimit are capped.
func NewGetDeliveryHistoryQuery(limit int) (GetDeliveryHistoryQuery, error) {
	query := GetDeliveryHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryHistoryQueryIsNotConstructed if validation fails.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// Limit returns the maximum number of records to return.
func (q GetDeliveryHistoryQuery) Limit() int {
	return q.limit
}

func (q *GetDeliveryHistoryQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}
	if limit > MaxDeliveryHistoryLimit {
		limit = MaxDeliveryHistoryLimit
	}

	q.limit = limit
	return nil
}

// GetDeliveryHistoryQueryResponse represents one archived delivery record.
type GetDeliveryHistoryQueryResponse struct {
	OrderID    kernel.UUID
	TableID    string
	Status     string
	CreatedAt  time.Time
	FinishedAt time.Time
}

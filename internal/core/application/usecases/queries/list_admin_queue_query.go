package queries

import (
	"errors"
	"math"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/guard"
)

const (
	DefaultQueuePage  = 1
	DefaultQueueLimit = 20
	MinQueueLimit     = 10
	MaxQueueLimit     = 100

	// MaxQueuePage keeps Offset within int for every allowed limit.
	MaxQueuePage = math.MaxInt / MaxQueueLimit
)

var ErrListAdminQueueQueryIsNotConstructed = errors.New(
	"ListAdminQueueQuery must be created via NewListAdminQueueQuery constructor",
)

// ListAdminQueueQuery pages through orders for the admin work queue, optionally
// restricted to some statuses. Every admin sees the same queue regardless of
// role or assignment.
//
// Example:
//
//	page, limit := 2, 50
//	query, err := NewListAdminQueueQuery([]order.Status{order.Paid}, &page, &limit)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type ListAdminQueueQuery struct {
	statuses []order.Status
	page     int
	limit    int

	guard guard.ConstructorGuard
}

// NewListAdminQueueQuery builds the query. A missing page defaults to 1 and a
// page below 1 is raised to 1; a missing limit defaults to 20 and any limit is
// clamped to [10, 100]. Unknown statuses are rejected.
func NewListAdminQueueQuery(statuses []order.Status, page, limit *int) (ListAdminQueueQuery, error) {
	var statusErrs []error
	for _, s := range statuses {
		statusErrs = append(statusErrs, s.Validate())
	}
	if err := errors.Join(statusErrs...); err != nil {
		return ListAdminQueueQuery{}, err
	}

	return ListAdminQueueQuery{
		statuses: dedupe(statuses),
		page:     clampPage(page),
		limit:    clampLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListAdminQueueQuery) Validate() error {
	return q.guard.Validate(ErrListAdminQueueQueryIsNotConstructed)
}

// Statuses returns the filter; empty means every status.
func (q ListAdminQueueQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}

func (q ListAdminQueueQuery) Page() int {
	return q.page
}

func (q ListAdminQueueQuery) Limit() int {
	return q.limit
}

// Offset is the number of rows before the requested page.
func (q ListAdminQueueQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// ListAdminQueueQueryResponse is one page of the queue.
type ListAdminQueueQueryResponse struct {
	Items      []AdminQueueItem
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminQueueItem is an order joined with the display fields of its user and
// scheme.
type AdminQueueItem struct {
	OrderID       kernel.UUID
	Status        order.Status
	AssignedTo    *kernel.UUID
	PaymentAmount kernel.Money
	PaidAt        *time.Time
	AdminNotes    string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	UserID    kernel.UUID
	UserName  string
	UserPhone string

	SchemeID   kernel.UUID
	SchemeName string
}

// TotalPages returns how many pages of size limit hold total rows.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func clampPage(page *int) int {
	if page == nil || *page < 1 {
		return DefaultQueuePage
	}
	return min(*page, MaxQueuePage)
}

func clampLimit(limit *int) int {
	if limit == nil {
		return DefaultQueueLimit
	}
	return min(max(*limit, MinQueueLimit), MaxQueueLimit)
}

func dedupe(statuses []order.Status) []order.Status {
	seen := make(map[order.Status]bool, len(statuses))
	out := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

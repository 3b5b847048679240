package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/internal/access"
	"github.com/mestore/mestore-backend/internal/customers"
	"github.com/mestore/mestore-backend/pkg/bizday"
	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
	"github.com/mestore/mestore-backend/pkg/pagination"
)

type customerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	ListActive(ctx context.Context, agentID *uuid.UUID) ([]models.Customer, error)
	ListActiveCreatedBefore(ctx context.Context, agentID *uuid.UUID, cutoff time.Time) ([]models.Customer, error)
}

type itemStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

// Service defines order operations beyond repository reads.
type Service interface {
	Create(ctx context.Context, principal access.Principal, input CreateOrderInput) (*OrderDTO, error)
	Update(ctx context.Context, principal access.Principal, orderID uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
	List(ctx context.Context, principal access.Principal, date *string, customerID *uuid.UUID) ([]OrderDTO, error)
	TodayStatus(ctx context.Context, principal access.Principal, agentID *uuid.UUID) ([]CustomerStatusEntry, error)
	StatusByDate(ctx context.Context, principal access.Principal, date string, agentID *uuid.UUID) ([]CustomerStatusEntry, error)
	History(ctx context.Context, principal access.Principal, customerID uuid.UUID, params pagination.Params) (*HistoryPage, error)
}

type service struct {
	repo      Repository
	customers customerStore
	items     itemStore
	now       func() time.Time
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, customerRepo customerStore, itemRepo itemStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if customerRepo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	if itemRepo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	return &service{
		repo:      repo,
		customers: customerRepo,
		items:     itemRepo,
		now:       time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, principal access.Principal, input CreateOrderInput) (*OrderDTO, error) {
	if input.Pieces < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pieces must be at least 1")
	}

	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	if !customer.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer is not active")
	}
	if !access.CanAccess(principal, customer.AssignedAgentID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to create order for this customer")
	}

	if _, err := s.items.FindByID(ctx, input.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}

	status := enums.OrderStatusPending
	if input.Status != nil {
		status = *input.Status
	}
	if err := PolicyForRole(principal.Role).AllowCreateStatus(status); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: customer.ID,
		AgentID:    principal.ID,
		// snapshot of the customer's current delivery assignment
		DeliveryStaffID: customer.AssignedDeliveryStaffID,
		ItemID:          input.ItemID,
		Pieces:          input.Pieces,
		Status:          status,
		OrderDate:       s.now().UTC(),
		Notes:           input.Notes,
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	resolved, err := s.repo.FindResolved(ctx, created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load created order")
	}
	return FromModel(resolved), nil
}

func (s *service) Update(ctx context.Context, principal access.Principal, orderID uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	ownerID := order.AgentID
	if !access.CanAccess(principal, &ownerID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to update this order")
	}

	if input.Status != nil {
		requested := *input.Status
		if err := PolicyForRole(principal.Role).AllowTransition(order.Status, requested); err != nil {
			return nil, err
		}
		if order.Status == enums.OrderStatusCalled && requested == enums.OrderStatusOrderPlaced {
			if input.ItemID == nil || input.Pieces == nil {
				return nil, pkgerrors.New(pkgerrors.CodeValidation,
					"item and pieces are required when placing an order")
			}
		}
	}
	if input.Pieces != nil && *input.Pieces < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pieces must be at least 1")
	}
	if input.ItemID != nil {
		if _, err := s.items.FindByID(ctx, *input.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
		}
	}

	updates := map[string]any{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Pieces != nil {
		updates["pieces"] = *input.Pieces
	}
	if input.ItemID != nil {
		updates["item_id"] = *input.ItemID
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		// conditional on the previously read status to close the
		// read-then-write race between concurrent transitions
		matched, err := s.repo.UpdateStatusCAS(ctx, order.ID, order.Status, updates)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
		}
		if matched == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "order was modified concurrently, reload and retry")
		}
	}

	resolved, err := s.repo.FindResolved(ctx, order.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load updated order")
	}
	return FromModel(resolved), nil
}

func (s *service) List(ctx context.Context, principal access.Principal, date *string, customerID *uuid.UUID) ([]OrderDTO, error) {
	filters := ListFilters{CustomerID: customerID}
	if !principal.IsAdmin() {
		filters.AgentID = &principal.ID
	}
	if date != nil {
		window, err := bizday.ForDate(*date)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date filter")
		}
		filters.DateFrom = &window.Start
		filters.DateTo = &window.End
	}

	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) TodayStatus(ctx context.Context, principal access.Principal, agentID *uuid.UUID) ([]CustomerStatusEntry, error) {
	roster, err := s.customers.ListActive(ctx, rosterScope(principal, agentID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return s.statusEntries(ctx, roster, bizday.Today(s.now()))
}

func (s *service) StatusByDate(ctx context.Context, principal access.Principal, date string, agentID *uuid.UUID) ([]CustomerStatusEntry, error) {
	window, err := bizday.ForDate(date)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date")
	}

	// a customer assigned after the queried day cannot appear in that
	// day's status view
	roster, err := s.customers.ListActiveCreatedBefore(ctx, rosterScope(principal, agentID), window.End)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return s.statusEntries(ctx, roster, window)
}

// rosterScope resolves whose customers a status view covers. Agents are
// always scoped to themselves; admins see everyone unless they target a
// specific agent.
func rosterScope(principal access.Principal, agentID *uuid.UUID) *uuid.UUID {
	if !principal.IsAdmin() {
		return &principal.ID
	}
	return agentID
}

// statusEntries pairs each roster customer with their most recent order in
// the window. Roster ordering is preserved and every customer gets exactly
// one entry.
func (s *service) statusEntries(ctx context.Context, roster []models.Customer, window bizday.Window) ([]CustomerStatusEntry, error) {
	ids := make([]uuid.UUID, 0, len(roster))
	for i := range roster {
		ids = append(ids, roster[i].ID)
	}

	rows, err := s.repo.FindWindowOrders(ctx, ids, window)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list window orders")
	}

	// rows arrive sorted by (order_date desc, created_at desc); the first
	// hit per customer is their latest order
	latest := make(map[uuid.UUID]*models.Order, len(rows))
	for i := range rows {
		if _, seen := latest[rows[i].CustomerID]; !seen {
			latest[rows[i].CustomerID] = &rows[i]
		}
	}

	entries := make([]CustomerStatusEntry, 0, len(roster))
	for i := range roster {
		entry := CustomerStatusEntry{Customer: *customers.FromModel(&roster[i])}
		if order, ok := latest[roster[i].ID]; ok {
			entry.Order = FromModel(order)
			entry.HasOrder = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *service) History(ctx context.Context, principal access.Principal, customerID uuid.UUID, params pagination.Params) (*HistoryPage, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	if !access.CanAccess(principal, customer.AssignedAgentID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	rows, err := s.repo.ListCustomerOrders(ctx, customerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list order history")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := &HistoryPage{}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			OrderDate: last.OrderDate,
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	page.Orders = make([]OrderDTO, 0, len(rows))
	for i := range rows {
		page.Orders = append(page.Orders, *FromModel(&rows[i]))
	}
	return page, nil
}

package orders

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestore/mestore-backend/internal/access"
	"github.com/mestore/mestore-backend/pkg/bizday"
	"github.com/mestore/mestore-backend/pkg/db/models"
	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
	"github.com/mestore/mestore-backend/pkg/pagination"
)

type stubOrdersRepo struct {
	orders     map[uuid.UUID]*models.Order
	casMatched *int64 // when set, UpdateStatusCAS reports this instead
}

func newStubOrdersRepo() *stubOrdersRepo {
	return &stubOrdersRepo{orders: map[uuid.UUID]*models.Order{}}
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	copied := *order
	s.orders[order.ID] = &copied
	return order, nil
}

func (s *stubOrdersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrdersRepo) FindResolved(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.FindByID(ctx, id)
}

func (s *stubOrdersRepo) List(ctx context.Context, filters ListFilters) ([]models.Order, error) {
	var out []models.Order
	for _, order := range s.orders {
		if filters.AgentID != nil && order.AgentID != *filters.AgentID {
			continue
		}
		if filters.CustomerID != nil && order.CustomerID != *filters.CustomerID {
			continue
		}
		if filters.DateFrom != nil && order.OrderDate.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && order.OrderDate.After(*filters.DateTo) {
			continue
		}
		out = append(out, *order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (s *stubOrdersRepo) FindWindowOrders(ctx context.Context, customerIDs []uuid.UUID, window bizday.Window) ([]models.Order, error) {
	wanted := map[uuid.UUID]bool{}
	for _, id := range customerIDs {
		wanted[id] = true
	}
	var out []models.Order
	for _, order := range s.orders {
		if wanted[order.CustomerID] && window.Contains(order.OrderDate) {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OrderDate.Equal(out[j].OrderDate) {
			return out[i].OrderDate.After(out[j].OrderDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *stubOrdersRepo) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, params pagination.Params) ([]models.Order, error) {
	var out []models.Order
	for _, order := range s.orders {
		if order.CustomerID == customerID {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OrderDate.Equal(out[j].OrderDate) {
			return out[i].OrderDate.After(out[j].OrderDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		var filtered []models.Order
		for _, order := range out {
			if order.OrderDate.Before(cursor.OrderDate) ||
				(order.OrderDate.Equal(cursor.OrderDate) && order.CreatedAt.Before(cursor.CreatedAt)) {
				filtered = append(filtered, order)
			}
		}
		out = filtered
	}
	limit := pagination.LimitWithBuffer(params.Limit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubOrdersRepo) UpdateStatusCAS(ctx context.Context, id uuid.UUID, expected enums.OrderStatus, updates map[string]any) (int64, error) {
	if s.casMatched != nil {
		return *s.casMatched, nil
	}
	order, ok := s.orders[id]
	if !ok || order.Status != expected {
		return 0, nil
	}
	if v, ok := updates["status"]; ok {
		order.Status = v.(enums.OrderStatus)
	}
	if v, ok := updates["pieces"]; ok {
		order.Pieces = v.(int)
	}
	if v, ok := updates["item_id"]; ok {
		order.ItemID = v.(uuid.UUID)
	}
	if v, ok := updates["notes"]; ok {
		notes := v.(string)
		order.Notes = &notes
	}
	return 1, nil
}

type stubCustomerStore struct {
	customers map[uuid.UUID]*models.Customer
	order     []uuid.UUID // insertion order, preserved by listings
}

func newStubCustomerStore() *stubCustomerStore {
	return &stubCustomerStore{customers: map[uuid.UUID]*models.Customer{}}
}

func (s *stubCustomerStore) add(customer *models.Customer) {
	s.customers[customer.ID] = customer
	s.order = append(s.order, customer.ID)
}

func (s *stubCustomerStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, ok := s.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (s *stubCustomerStore) ListActive(ctx context.Context, agentID *uuid.UUID) ([]models.Customer, error) {
	var out []models.Customer
	for _, id := range s.order {
		customer := s.customers[id]
		if !customer.IsActive {
			continue
		}
		if agentID != nil && (customer.AssignedAgentID == nil || *customer.AssignedAgentID != *agentID) {
			continue
		}
		out = append(out, *customer)
	}
	return out, nil
}

func (s *stubCustomerStore) ListActiveCreatedBefore(ctx context.Context, agentID *uuid.UUID, cutoff time.Time) ([]models.Customer, error) {
	all, err := s.ListActive(ctx, agentID)
	if err != nil {
		return nil, err
	}
	var out []models.Customer
	for _, customer := range all {
		if !customer.CreatedAt.After(cutoff) {
			out = append(out, customer)
		}
	}
	return out, nil
}

type stubItemCatalog struct {
	items map[uuid.UUID]*models.Item
}

func newStubItemCatalog() *stubItemCatalog {
	return &stubItemCatalog{items: map[uuid.UUID]*models.Item{}}
}

func (s *stubItemCatalog) add() uuid.UUID {
	item := &models.Item{ID: uuid.New(), Name: uuid.NewString(), IsActive: true}
	s.items[item.ID] = item
	return item.ID
}

func (s *stubItemCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func fixedNow() time.Time {
	// 2024-03-15 10:00 in the business day (04:30 UTC)
	return time.Date(2024, 3, 15, 4, 30, 0, 0, time.UTC)
}

func newOrdersTestService(t *testing.T) (*service, *stubOrdersRepo, *stubCustomerStore, *stubItemCatalog) {
	t.Helper()
	repo := newStubOrdersRepo()
	store := newStubCustomerStore()
	catalog := newStubItemCatalog()
	svc, err := NewService(repo, store, catalog)
	require.NoError(t, err)
	impl := svc.(*service)
	impl.now = fixedNow
	return impl, repo, store, catalog
}

func agentPrincipal(id uuid.UUID) access.Principal {
	return access.Principal{ID: id, Role: enums.UserRoleAgent}
}

func adminPrincipal() access.Principal {
	return access.Principal{ID: uuid.New(), Role: enums.UserRoleAdmin}
}

func seedCustomer(store *stubCustomerStore, agentID uuid.UUID, staffID *uuid.UUID, createdAt time.Time) *models.Customer {
	customer := &models.Customer{
		ID:                      uuid.New(),
		Name:                    "Customer",
		Phone:                   "1",
		Address:                 "a",
		AssignedAgentID:         &agentID,
		AssignedDeliveryStaffID: staffID,
		IsActive:                true,
		CreatedAt:               createdAt,
	}
	store.add(customer)
	return customer
}

func TestCreateOrderDefaultsAndSnapshot(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	staffID := uuid.New()
	customer := seedCustomer(store, agentID, &staffID, fixedNow().Add(-48*time.Hour))

	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID,
		ItemID:     catalog.add(),
		Pieces:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, created.Status)
	assert.Equal(t, fixedNow(), created.OrderDate, "order date is set server-side at creation")

	stored := repo.orders[created.ID]
	require.NotNil(t, stored.DeliveryStaffID)
	assert.Equal(t, staffID, *stored.DeliveryStaffID, "delivery assignment snapshotted at creation")

	// later reassignment must not touch the stored order
	newStaff := uuid.New()
	customer.AssignedDeliveryStaffID = &newStaff
	assert.Equal(t, staffID, *repo.orders[created.ID].DeliveryStaffID)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())

	_, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 0,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: uuid.New(), ItemID: catalog.add(), Pieces: 1,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	_, err = svc.Create(ctx, agentPrincipal(uuid.New()), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	delivered := enums.OrderStatusDelivered
	_, err = svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1, Status: &delivered,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateOrderInactiveCustomerRejected(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())
	customer.IsActive = false

	_, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Empty(t, repo.orders)

	// admins are held to the same rule
	_, err = svc.Create(ctx, adminPrincipal(), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestOrderItemMustExist(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())

	_, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: uuid.New(), Pieces: 1,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Empty(t, repo.orders)

	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	require.NoError(t, err)

	unknown := uuid.New()
	_, err = svc.Update(ctx, agentPrincipal(agentID), created.ID, UpdateOrderInput{ItemID: &unknown})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.NotEqual(t, unknown, repo.orders[created.ID].ItemID)
}

func TestAdminCreateWithAnyStatus(t *testing.T) {
	svc, _, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	customer := seedCustomer(store, uuid.New(), nil, fixedNow())
	delivered := enums.OrderStatusDelivered

	created, err := svc.Create(ctx, adminPrincipal(), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1, Status: &delivered,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, created.Status)
}

func TestUpdateOrderAgentSkipAheadRejected(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())
	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	require.NoError(t, err)

	placed := enums.OrderStatusOrderPlaced
	_, err = svc.Update(ctx, agentPrincipal(agentID), created.ID, UpdateOrderInput{Status: &placed})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "pending", details["current_status"])
	assert.Equal(t, "order_placed", details["requested_status"])

	assert.Equal(t, enums.OrderStatusPending, repo.orders[created.ID].Status)
}

func TestUpdateCalledToPlacedRequiresItemAndPieces(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())
	called := enums.OrderStatusCalled
	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1, Status: &called,
	})
	require.NoError(t, err)

	placed := enums.OrderStatusOrderPlaced
	_, err = svc.Update(ctx, agentPrincipal(agentID), created.ID, UpdateOrderInput{Status: &placed})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	itemID := catalog.add()
	pieces := 3
	updated, err := svc.Update(ctx, agentPrincipal(agentID), created.ID, UpdateOrderInput{
		Status: &placed, ItemID: &itemID, Pieces: &pieces,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusOrderPlaced, updated.Status)
	assert.Equal(t, 3, repo.orders[created.ID].Pieces)
	assert.Equal(t, itemID, repo.orders[created.ID].ItemID)
}

func TestUpdateOrderOwnership(t *testing.T) {
	svc, _, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())
	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	require.NoError(t, err)

	called := enums.OrderStatusCalled
	_, err = svc.Update(ctx, agentPrincipal(uuid.New()), created.ID, UpdateOrderInput{Status: &called})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	// admin may touch any order
	_, err = svc.Update(ctx, adminPrincipal(), created.ID, UpdateOrderInput{Status: &called})
	require.NoError(t, err)
}

func TestUpdateOrderConcurrentModification(t *testing.T) {
	svc, repo, store, catalog := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow())
	created, err := svc.Create(ctx, agentPrincipal(agentID), CreateOrderInput{
		CustomerID: customer.ID, ItemID: catalog.add(), Pieces: 1,
	})
	require.NoError(t, err)

	var zero int64
	repo.casMatched = &zero

	called := enums.OrderStatusCalled
	_, err = svc.Update(ctx, agentPrincipal(agentID), created.ID, UpdateOrderInput{Status: &called})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestTodayStatusAggregation(t *testing.T) {
	svc, repo, store, _ := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	created := fixedNow().Add(-72 * time.Hour)
	customerA := seedCustomer(store, agentID, nil, created)
	customerB := seedCustomer(store, agentID, nil, created)
	customerC := seedCustomer(store, agentID, nil, created)

	window := bizday.Today(fixedNow())
	orderDate := window.Start.Add(2 * time.Hour)

	t1 := fixedNow().Add(-2 * time.Hour)
	t2 := fixedNow().Add(-1 * time.Hour)
	first := &models.Order{
		ID: uuid.New(), CustomerID: customerA.ID, AgentID: agentID, ItemID: uuid.New(),
		Pieces: 1, Status: enums.OrderStatusCancelled, OrderDate: orderDate, CreatedAt: t1,
	}
	second := &models.Order{
		ID: uuid.New(), CustomerID: customerA.ID, AgentID: agentID, ItemID: uuid.New(),
		Pieces: 1, Status: enums.OrderStatusPending, OrderDate: orderDate, CreatedAt: t2,
	}
	third := &models.Order{
		ID: uuid.New(), CustomerID: customerC.ID, AgentID: agentID, ItemID: uuid.New(),
		Pieces: 1, Status: enums.OrderStatusCalled, OrderDate: orderDate, CreatedAt: t1,
	}
	for _, order := range []*models.Order{first, second, third} {
		repo.orders[order.ID] = order
	}

	entries, err := svc.TodayStatus(ctx, agentPrincipal(agentID), nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, customerA.ID, entries[0].Customer.ID)
	require.True(t, entries[0].HasOrder)
	assert.Equal(t, second.ID, entries[0].Order.ID, "creation-time tie break picks the newest order")

	assert.Equal(t, customerB.ID, entries[1].Customer.ID)
	assert.False(t, entries[1].HasOrder)
	assert.Nil(t, entries[1].Order)

	assert.Equal(t, customerC.ID, entries[2].Customer.ID)
	require.True(t, entries[2].HasOrder)
	assert.Equal(t, third.ID, entries[2].Order.ID)
}

func TestStatusViewAgentTargeting(t *testing.T) {
	svc, _, store, _ := newOrdersTestService(t)
	ctx := context.Background()

	agentA := uuid.New()
	agentB := uuid.New()
	created := fixedNow().Add(-72 * time.Hour)
	customerA := seedCustomer(store, agentA, nil, created)
	customerB := seedCustomer(store, agentB, nil, created)

	// admin without a target sees every agent's roster
	entries, err := svc.TodayStatus(ctx, adminPrincipal(), nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// admin targeting an agent sees only that agent's customers
	entries, err = svc.TodayStatus(ctx, adminPrincipal(), &agentB)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, customerB.ID, entries[0].Customer.ID)

	// an agent stays scoped to their own roster no matter the target
	entries, err = svc.TodayStatus(ctx, agentPrincipal(agentA), &agentB)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, customerA.ID, entries[0].Customer.ID)

	entries, err = svc.StatusByDate(ctx, adminPrincipal(), "2024-03-14", &agentA)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, customerA.ID, entries[0].Customer.ID)
}

func TestStatusByDateExcludesLaterCustomers(t *testing.T) {
	svc, repo, store, _ := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	window, err := bizday.ForDate("2024-03-10")
	require.NoError(t, err)

	existing := seedCustomer(store, agentID, nil, window.Start.Add(-24*time.Hour))
	late := seedCustomer(store, agentID, nil, window.End.Add(time.Hour))

	// even a matching order cannot surface a customer assigned later
	order := &models.Order{
		ID: uuid.New(), CustomerID: late.ID, AgentID: agentID, ItemID: uuid.New(),
		Pieces: 1, Status: enums.OrderStatusPending, OrderDate: window.Start.Add(time.Hour),
		CreatedAt: window.Start.Add(time.Hour),
	}
	repo.orders[order.ID] = order

	entries, err := svc.StatusByDate(ctx, agentPrincipal(agentID), "2024-03-10", nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, existing.ID, entries[0].Customer.ID)

	_, err = svc.StatusByDate(ctx, agentPrincipal(agentID), "10-03-2024", nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestHistoryGuardAndPagination(t *testing.T) {
	svc, repo, store, _ := newOrdersTestService(t)
	ctx := context.Background()

	agentID := uuid.New()
	customer := seedCustomer(store, agentID, nil, fixedNow().Add(-30*24*time.Hour))

	base := fixedNow().Add(-10 * 24 * time.Hour)
	for i := 0; i < 5; i++ {
		order := &models.Order{
			ID: uuid.New(), CustomerID: customer.ID, AgentID: agentID, ItemID: uuid.New(),
			Pieces: 1, Status: enums.OrderStatusDelivered,
			OrderDate: base.Add(time.Duration(i) * 24 * time.Hour),
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}
		repo.orders[order.ID] = order
	}

	_, err := svc.History(ctx, agentPrincipal(uuid.New()), customer.ID, pagination.Params{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	page, err := svc.History(ctx, agentPrincipal(agentID), customer.ID, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	require.NotEmpty(t, page.NextCursor)
	assert.True(t, page.Orders[0].OrderDate.After(page.Orders[1].OrderDate))

	rest, err := svc.History(ctx, agentPrincipal(agentID), customer.ID, pagination.Params{
		Limit: 10, Cursor: page.NextCursor,
	})
	require.NoError(t, err)
	assert.Len(t, rest.Orders, 3)
	assert.Empty(t, rest.NextCursor)
}

package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/Renal37/order-dashboard/internal/models"
)

const (
	BannerFetchFailed = "Failed to fetch orders"
	BannerUnavailable = "System is currently unavailable"
)

var ErrStoreClosed = errors.New("dashboard state is closed")

// Action is a single state transition. Every change to the dashboard state
// goes through Store.Dispatch.
type Action interface {
	apply(s *dashboardState) error
}

type dashboardState struct {
	orders   []models.Order
	inFlight int
	banner   string
	deleting map[string]struct{}
	health   models.HealthState
}

// Store owns the dashboard state. Once closed, dispatched actions are dropped.
type Store struct {
	mu     sync.Mutex
	state  dashboardState
	closed bool
}

func NewStore() *Store {
	return &Store{
		state: dashboardState{
			orders:   make([]models.Order, 0),
			deleting: make(map[string]struct{}),
			health:   models.HealthUnknown,
		},
	}
}

func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	return action.apply(&s.state)
}

func (s *Store) Snapshot() models.DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.state.orders))
	for i, order := range s.state.orders {
		order.Items = append([]models.OrderItem(nil), order.Items...)
		orders[i] = order
	}

	deleting := make([]string, 0, len(s.state.deleting))
	for id := range s.state.deleting {
		deleting = append(deleting, id)
	}
	sort.Strings(deleting)

	return models.DashboardState{
		Orders:   orders,
		Loading:  s.state.inFlight > 0,
		Banner:   s.state.banner,
		Deleting: deleting,
		Health:   s.state.health,
	}
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

type loadingStarted struct{}

func (loadingStarted) apply(s *dashboardState) error {
	s.inFlight++
	return nil
}

type loadingFinished struct{}

func (loadingFinished) apply(s *dashboardState) error {
	if s.inFlight > 0 {
		s.inFlight--
	}
	return nil
}

// ordersLoaded replaces the whole collection; partial merges never happen.
type ordersLoaded struct {
	orders []models.Order
}

func (a ordersLoaded) apply(s *dashboardState) error {
	s.orders = append(make([]models.Order, 0, len(a.orders)), a.orders...)
	s.banner = ""
	return nil
}

type ordersFailed struct{}

func (ordersFailed) apply(s *dashboardState) error {
	s.banner = BannerFetchFailed
	return nil
}

type rowGuard struct {
	orderID string
}

func (a rowGuard) apply(s *dashboardState) error {
	if _, busy := s.deleting[a.orderID]; busy {
		return ErrOrderBusy
	}
	return nil
}

type deleteStarted struct {
	orderID string
}

func (a deleteStarted) apply(s *dashboardState) error {
	if _, busy := s.deleting[a.orderID]; busy {
		return ErrOrderBusy
	}
	s.deleting[a.orderID] = struct{}{}
	return nil
}

type deleteFinished struct {
	orderID string
}

func (a deleteFinished) apply(s *dashboardState) error {
	delete(s.deleting, a.orderID)
	return nil
}

type healthChanged struct {
	healthy bool
}

func (a healthChanged) apply(s *dashboardState) error {
	if a.healthy {
		s.health = models.HealthOK
		s.banner = ""
		return nil
	}

	s.health = models.HealthUnavailable
	s.banner = BannerUnavailable
	return nil
}

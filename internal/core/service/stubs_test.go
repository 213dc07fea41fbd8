package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across service tests. They clone values
// in and out so tests cannot accidentally mutate stored state.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	clone := u
	r.users[u.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := r.add(*user)
	clone := *created
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindSalesReps(_ context.Context) ([]*domain.User, error) {
	var reps []*domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleSales {
			clone := *u
			reps = append(reps, &clone)
		}
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].ID < reps[j].ID })
	return reps, nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
	insertErr error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Insert(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cust-%d", r.nextID)
	r.customers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Customer, error) {
	out := make(map[string]*domain.Customer)
	for _, id := range ids {
		if c, ok := r.customers[id]; ok {
			clone := *c
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubCustomerRepo) FindAll(_ context.Context) ([]*domain.Customer, error) {
	var all []*domain.Customer
	for _, c := range r.customers {
		clone := *c
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (r *stubCustomerRepo) UpdateByID(_ context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	if fields.Email != nil {
		c.Email = *fields.Email
	}
	if fields.Phone != nil {
		c.Phone = *fields.Phone
	}
	if fields.Company != nil {
		c.Company = *fields.Company
	}
	if fields.Address != nil {
		c.Address = *fields.Address
	}
	if fields.AssignedRep != nil {
		c.AssignedRep = *fields.AssignedRep
	}
	if fields.Notes != nil {
		c.Notes = *fields.Notes
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Insert(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("task-%d", r.nextID)
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) FindAll(_ context.Context) ([]*domain.Task, error) {
	var all []*domain.Task
	for _, t := range r.tasks {
		clone := *t
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubTaskRepo) FindUnseenByAssignee(_ context.Context, userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.AssignedTo == userID && !t.SeenByUser {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTaskRepo) UpdateByID(_ context.Context, id string, fields ports.UpdateTaskFields) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if fields.Title != nil {
		t.Title = *fields.Title
	}
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	if fields.DueDate != nil {
		t.DueDate = fields.DueDate
	}
	if fields.Status != nil {
		t.Status = *fields.Status
	}
	if fields.Priority != nil {
		t.Priority = *fields.Priority
	}
	if fields.AssignedTo != nil {
		t.AssignedTo = *fields.AssignedTo
	}
	if fields.CustomerID != nil {
		t.CustomerID = *fields.CustomerID
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) MarkSeen(_ context.Context, id, userID string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.AssignedTo != userID {
		return nil, domain.ErrTaskNotFound
	}
	t.SeenByUser = true
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) DeleteByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	clone := *t
	return &clone, nil
}

type stubSaleRepo struct {
	sales  map[string]*domain.Sale
	nextID int
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[string]*domain.Sale)}
}

func (r *stubSaleRepo) Insert(_ context.Context, s *domain.Sale) (*domain.Sale, error) {
	r.nextID++
	clone := *s
	clone.ID = fmt.Sprintf("sale-%d", r.nextID)
	r.sales[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*domain.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSaleRepo) FindAll(_ context.Context) ([]*domain.Sale, error) {
	var all []*domain.Sale
	for _, s := range r.sales {
		clone := *s
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubSaleRepo) UpdateByID(_ context.Context, id string, fields ports.UpdateSaleFields) (*domain.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	if fields.CustomerID != nil {
		s.CustomerID = *fields.CustomerID
	}
	if fields.Amount != nil {
		s.Amount = *fields.Amount
	}
	if fields.Status != nil {
		s.Status = *fields.Status
	}
	if fields.Date != nil {
		s.Date = *fields.Date
	}
	if fields.AssignedRep != nil {
		s.AssignedRep = *fields.AssignedRep
	}
	clone := *s
	return &clone, nil
}

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
	nextID        int
	insertErr     error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	clone := *n
	clone.ID = fmt.Sprintf("notif-%d", r.nextID)
	r.notifications[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) FindByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubNotificationRepo) MarkSeen(_ context.Context, id, userID string) (*domain.Notification, error) {
	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}
	n.Seen = true
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) MarkAllSeen(_ context.Context, userID string) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Seen = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) CountUnseen(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Seen {
			count++
		}
	}
	return count, nil
}

type stubLeadRepo struct {
	leads  map[string]*domain.Lead
	nextID int
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func (r *stubLeadRepo) Insert(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
	r.nextID++
	clone := *l
	clone.ID = fmt.Sprintf("lead-%d", r.nextID)
	r.leads[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeadRepo) FindAll(_ context.Context) ([]*domain.Lead, error) {
	var all []*domain.Lead
	for _, l := range r.leads {
		clone := *l
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *stubLeadRepo) UpdateByID(_ context.Context, id string, fields ports.UpdateLeadFields) (*domain.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	if fields.Name != nil {
		l.Name = *fields.Name
	}
	if fields.ContactEmail != nil {
		l.ContactInfo.Email = *fields.ContactEmail
	}
	if fields.ContactPhone != nil {
		l.ContactInfo.Phone = *fields.ContactPhone
	}
	if fields.Source != nil {
		l.Source = *fields.Source
	}
	if fields.Status != nil {
		l.Status = *fields.Status
	}
	if fields.AssignedRep != nil {
		l.AssignedRep = *fields.AssignedRep
	}
	if fields.CustomerID != nil {
		l.CustomerID = *fields.CustomerID
	}
	if fields.Notes != nil {
		l.Notes = *fields.Notes
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeadRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

// stubEmitter records emissions instead of persisting them.
type stubEmitter struct {
	created []*domain.Task
	updated []*domain.Task
	deleted []*domain.Task
}

func (e *stubEmitter) TaskCreated(_ context.Context, t *domain.Task) { e.created = append(e.created, t) }
func (e *stubEmitter) TaskUpdated(_ context.Context, t *domain.Task) { e.updated = append(e.updated, t) }
func (e *stubEmitter) TaskDeleted(_ context.Context, t *domain.Task) { e.deleted = append(e.deleted, t) }

// stubBadgeCache is an in-memory BadgeCache recording invalidations.
type stubBadgeCache struct {
	counts      map[string]int64
	invalidated []string
	getErr      error
}

func newStubBadgeCache() *stubBadgeCache {
	return &stubBadgeCache{counts: make(map[string]int64)}
}

func (c *stubBadgeCache) Get(_ context.Context, userID string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	count, ok := c.counts[userID]
	return count, ok, nil
}

func (c *stubBadgeCache) Set(_ context.Context, userID string, count int64) error {
	c.counts[userID] = count
	return nil
}

func (c *stubBadgeCache) Invalidate(_ context.Context, userID string) error {
	delete(c.counts, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

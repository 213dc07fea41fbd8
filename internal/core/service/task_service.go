package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// TaskService implements task CRUD plus the unseen/seen acknowledgment flow.
// Mutations emit a notification to the assignee strictly after the write has
// been accepted by the store.
type TaskService struct {
	tasks     ports.TaskRepository
	customers ports.CustomerRepository
	users     ports.UserRepository
	emitter   ports.NotificationEmitter
	logger    zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, customers ports.CustomerRepository, users ports.UserRepository, emitter ports.NotificationEmitter, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, customers: customers, users: users, emitter: emitter, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		Priority:    priority,
		AssignedTo:  input.AssignedTo,
		CustomerID:  input.CustomerID,
		SeenByUser:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	s.emitter.TaskCreated(ctx, created)
	s.logger.Info().Str("task_id", created.ID).Str("assigned_to", created.AssignedTo).Msg("task created")
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, id string, fields ports.UpdateTaskFields) (*domain.Task, error) {
	updated, err := s.tasks.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.emitter.TaskUpdated(ctx, updated)
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	deleted, err := s.tasks.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	s.emitter.TaskDeleted(ctx, deleted)
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// Unseen returns the caller's tasks that have not been acknowledged yet.
func (s *TaskService) Unseen(ctx context.Context, identity domain.Identity) ([]*domain.Task, error) {
	return s.tasks.FindUnseenByAssignee(ctx, identity.UserID)
}

// MarkSeen acknowledges a task. The repository filters by assignee, so a
// task assigned to someone else surfaces as not found rather than forbidden.
func (s *TaskService) MarkSeen(ctx context.Context, identity domain.Identity, id string) (*domain.Task, error) {
	return s.tasks.MarkSeen(ctx, id, identity.UserID)
}

// List returns all tasks with assignee and customer populated.
func (s *TaskService) List(ctx context.Context) ([]*ports.TaskDetail, error) {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(tasks))
	customerIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedTo != "" {
			userIDs = append(userIDs, t.AssignedTo)
		}
		if t.CustomerID != "" {
			customerIDs = append(customerIDs, t.CustomerID)
		}
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.FindByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, &ports.TaskDetail{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Status:      t.Status,
			Priority:    t.Priority,
			AssignedTo:  ports.NewUserRef(users[t.AssignedTo]),
			Customer:    ports.NewCustomerRef(customers[t.CustomerID]),
			SeenByUser:  t.SeenByUser,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return out, nil
}

package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/saulo-duarte/goaltrack-lambda/internal/observability"
	"github.com/sirupsen/logrus"
)

// Service is the goal data gateway. Every call is a single round-trip to the
// repository; nothing is cached or retried.
type Service interface {
	ListGoals(ctx context.Context) ([]Goal, error)
	CreateGoal(ctx context.Context, in GoalInput) (*Goal, error)
	UpdateGoal(ctx context.Context, id uuid.UUID, update *GoalUpdate) (*Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListGoals(ctx context.Context) ([]Goal, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storageFailure(log, "list", "fetch goals", err)
	}

	goals := make([]Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, ToGoal(row))
	}
	observability.RecordGoalOperation("list", observability.OutcomeSuccess)
	return goals, nil
}

func (s *service) CreateGoal(ctx context.Context, in GoalInput) (*Goal, error) {
	log := config.WithContext(ctx)

	if err := in.Validate(); err != nil {
		log.WithError(err).Warn("Rejected goal input")
		observability.RecordGoalOperation("create", observability.OutcomeInvalid)
		return nil, err
	}

	row, columns := in.toRow()
	if err := s.repo.Create(ctx, &row, columns); err != nil {
		return nil, s.storageFailure(log, "create", "create goal", err)
	}

	g := ToGoal(row)
	log.WithField("goal_id", g.ID).Info("Goal created successfully")
	observability.RecordGoalOperation("create", observability.OutcomeSuccess)
	return &g, nil
}

func (s *service) UpdateGoal(ctx context.Context, id uuid.UUID, update *GoalUpdate) (*Goal, error) {
	log := config.WithContext(ctx).WithField("goal_id", id)

	if update == nil {
		update = NewGoalUpdate()
	}
	if err := update.Validate(); err != nil {
		log.WithError(err).Warn("Rejected goal update")
		observability.RecordGoalOperation("update", observability.OutcomeInvalid)
		return nil, err
	}

	var (
		row *GoalRow
		err error
	)
	if update.IsEmpty() {
		row, err = s.repo.FindByID(ctx, id)
	} else {
		row, err = s.repo.Update(ctx, id, update.Columns())
	}
	if err != nil {
		return nil, s.storageFailure(log, "update", "update goal", err)
	}

	g := ToGoal(*row)
	log.WithField("fields", update.Fields()).Info("Goal updated successfully")
	observability.RecordGoalOperation("update", observability.OutcomeSuccess)
	return &g, nil
}

func (s *service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx).WithField("goal_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storageFailure(log, "delete", "delete goal", err)
	}

	log.Info("Goal deleted successfully")
	observability.RecordGoalOperation("delete", observability.OutcomeSuccess)
	return nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	stats := Summarize(goals)
	return &stats, nil
}

// storageFailure logs the storage cause and hides it behind a StorageError.
func (s *service) storageFailure(log logrus.FieldLogger, operation, op string, cause error) error {
	if errors.Is(cause, ErrNotFound) {
		log.Warnf("Goal not found while trying to %s", op)
		observability.RecordGoalOperation(operation, observability.OutcomeNotFound)
	} else {
		log.WithError(cause).Errorf("Failed to %s", op)
		observability.RecordGoalOperation(operation, observability.OutcomeError)
	}
	return newStorageError(op, cause)
}

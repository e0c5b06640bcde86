package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/setutil"
)

type AssignUsersCommand struct {
	Actor     *user.User
	ProjectID uint
	UserIDs   []uint
}

// AssignUsersUseCase adds a batch of collaborators to a project. The batch
// is all-or-nothing.
type AssignUsersUseCase struct {
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	userRepo       user.Repository
	notifier       AssignmentNotifier
	txManager      db.Transactor
	authz          *permission.Engine
	logger         logger.Interface
}

func NewAssignUsersUseCase(
	projectRepo project.Repository,
	assignmentRepo project.AssignmentRepository,
	userRepo user.Repository,
	notifier AssignmentNotifier,
	txManager db.Transactor,
	authz *permission.Engine,
	logger logger.Interface,
) *AssignUsersUseCase {
	return &AssignUsersUseCase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		txManager:      txManager,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *AssignUsersUseCase) Execute(ctx context.Context, cmd AssignUsersCommand) ([]*project.Assignment, error) {
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceProject, permission.ActionAssign, nil); err != nil {
		return nil, err
	}

	p, err := loadProject(ctx, uc.projectRepo, cmd.ProjectID, uc.logger)
	if err != nil {
		return nil, err
	}
	if len(cmd.UserIDs) == 0 {
		return nil, errors.NewValidationError("user_ids must not be empty")
	}

	var (
		assignments []*project.Assignment
		assignees   []*user.User
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		users, err := uc.checkBatch(txCtx, p.ID(), cmd.UserIDs)
		if err != nil {
			return err
		}

		assignments = make([]*project.Assignment, 0, len(cmd.UserIDs))
		for _, id := range cmd.UserIDs {
			a, err := project.NewAssignment(p.ID(), id)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			assignments = append(assignments, a)
		}
		if err := uc.assignmentRepo.CreateBatch(txCtx, assignments); err != nil {
			return err
		}

		assignees = users
		return nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to assign users", "error", err, "project_id", p.ID())
		}
		return nil, err
	}

	uc.logger.Infow("users assigned to project", "project_id", p.ID(), "count", len(assignments))

	for _, u := range assignees {
		if err := uc.notifier.NotifyAssigned(ctx, u, p); err != nil {
			uc.logger.Warnw("failed to send assignment notification", "error", err,
				"project_id", p.ID(), "user_id", u.ID())
		}
	}
	return assignments, nil
}

// checkBatch walks ids in request order and rejects the batch at the first
// id that is repeated, unknown or already assigned to the project. It
// returns the users in request order.
func (uc *AssignUsersUseCase) checkBatch(ctx context.Context, projectID uint, ids []uint) ([]*user.User, error) {
	found, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}
	byID := make(map[uint]*user.User, len(found))
	for _, u := range found {
		byID[u.ID()] = u
	}

	assigned, err := uc.assignmentRepo.AssignedUserIDs(ctx, projectID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignments: %w", err)
	}
	already := setutil.NewUintSetWithCap(len(assigned))
	for _, id := range assigned {
		already.Add(id)
	}

	users := make([]*user.User, 0, len(ids))
	seen := setutil.NewUintSetWithCap(len(ids))
	for _, id := range ids {
		if !seen.Add(id) {
			return nil, errors.NewConflictError(fmt.Sprintf("user %d appears more than once in the request", id))
		}
		u, ok := byID[id]
		if !ok {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		}
		if already.Has(id) {
			return nil, errors.NewConflictError(fmt.Sprintf("user %d is already assigned to this project", id))
		}
		users = append(users, u)
	}
	return users, nil
}

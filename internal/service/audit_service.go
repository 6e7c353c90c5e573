package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// AuditService records and exposes the audit trail.
type AuditService interface {
	// Record appends an entry. Failures are logged and never reach the caller.
	Record(ctx context.Context, actor, action, details string)
	List(ctx context.Context, limit int) ([]model.AuditLog, error)
	// Clear removes every entry, including the one announcing the clear.
	Clear(ctx context.Context, actor auth.Identity) error
}

type auditService struct {
	repo repository.AuditLogRepository
	log  *zap.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(repo repository.AuditLogRepository, log *zap.Logger) AuditService {
	if log == nil {
		log = zap.L()
	}
	return &auditService{repo: repo, log: log.Named("audit")}
}

func (s *auditService) Record(ctx context.Context, actor, action, details string) {
	entry := &model.AuditLog{
		ActorUsername: actor,
		ActionType:    action,
		Details:       details,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error("failed to write audit entry",
			zap.String("actor", actor),
			zap.String("action", action),
			zap.String("details", details),
			zap.Error(err),
		)
	}
}

func (s *auditService) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, storeErr("list audit logs", err)
	}
	return entries, nil
}

func (s *auditService) Clear(ctx context.Context, actor auth.Identity) error {
	if err := auth.RequireRole(actor, model.UserRoleAdmin); err != nil {
		return err
	}

	s.Record(ctx, actor.Username, model.ActionAuditLogCleared, fmt.Sprintf("All audit logs cleared by %s", actor.Username))

	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return storeErr("clear audit logs", err)
	}

	s.log.Info("audit log cleared",
		zap.String("actor", actor.Username),
		zap.String("actor_id", actor.ID),
		zap.Int64("removed", removed),
	)
	return nil
}

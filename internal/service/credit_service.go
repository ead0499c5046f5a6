package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/pkg/logger"
	"github.com/237films-bot/subtrack/internal/pkg/sanitize"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/pkg/cycle"
	"github.com/237films-bot/subtrack/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ICreditService manages credit-variant entities. ApplyUsage is the domain
// event counterpart of a subscription renewal: it records a ledger entry
// with the delta before overwriting the used-credits value.
type ICreditService interface {
	List(ctx context.Context) ([]dto.CreditPoolResponse, error)
	Create(ctx context.Context, req *dto.CreateCreditPoolRequest) ([]dto.CreditPoolResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCreditPoolRequest) ([]dto.CreditPoolResponse, error)
	Delete(ctx context.Context, id uuid.UUID) ([]dto.CreditPoolResponse, error)
	ApplyUsage(ctx context.Context, id uuid.UUID, req *dto.UpdateUsageRequest) ([]dto.CreditPoolResponse, error)
	History(ctx context.Context, id uuid.UUID) ([]dto.CreditChangeResponse, error)
}

type creditService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	logger     logger.ILogger
}

func NewCreditService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, log logger.ILogger) ICreditService {
	return &creditService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		logger:     log,
	}
}

func (s *creditService) List(ctx context.Context) ([]dto.CreditPoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.collection(ctx, uow)
}

func (s *creditService) Create(ctx context.Context, req *dto.CreateCreditPoolRequest) ([]dto.CreditPoolResponse, error) {
	if err := validateResetDay(entity.ResetCycle(req.ResetCycle), req.ResetDay, req.CustomResetDays); err != nil {
		return nil, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := time.Now()
	pool := &entity.CreditPool{
		Id:              uuid.New(),
		Name:            sanitize.Text(req.Name),
		Color:           req.Color,
		Icon:            req.Icon,
		URL:             sanitize.URL(req.URL),
		Notes:           sanitize.Text(req.Notes),
		TotalCredits:    req.TotalCredits,
		UsedCredits:     req.UsedCredits,
		ResetCycle:      entity.ResetCycle(req.ResetCycle),
		ResetDay:        req.ResetDay,
		CustomResetDays: req.CustomResetDays,
		Enabled:         enabled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if pool.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", apperror.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Credits().Create(ctx, pool); err != nil {
		s.logger.Error("CreditService", "create failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return s.collection(ctx, uow)
}

func validateResetDay(resetCycle entity.ResetCycle, resetDay, customResetDays int) error {
	switch resetCycle {
	case entity.ResetCycleMonthly:
		if resetDay < 1 || resetDay > 31 {
			return fmt.Errorf("%w: monthly reset_day must be 1-31", apperror.ErrValidation)
		}
	case entity.ResetCycleWeekly:
		if resetDay < 0 || resetDay > 6 {
			return fmt.Errorf("%w: weekly reset_day must be 0-6", apperror.ErrValidation)
		}
	case entity.ResetCycleYearly:
		month, dayOfMonth := resetDay/100, resetDay%100
		if month < 1 || month > 12 || dayOfMonth < 1 || dayOfMonth > 31 {
			return fmt.Errorf("%w: yearly reset_day must pack month and day as MMDD", apperror.ErrValidation)
		}
	case entity.ResetCycleCustom:
		if customResetDays <= 0 {
			return fmt.Errorf("%w: custom reset cycle requires custom_reset_days > 0", apperror.ErrValidation)
		}
	}
	return nil
}

func (s *creditService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCreditPoolRequest) ([]dto.CreditPoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.Credits().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: credit pool %s", apperror.ErrNotFound, id)
	}

	if err := applyCreditUpdate(pool, req); err != nil {
		return nil, err
	}
	pool.UpdatedAt = time.Now()

	if err := uow.Credits().Update(ctx, pool); err != nil {
		s.logger.Error("CreditService", "update failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, err
	}
	return s.collection(ctx, uow)
}

func applyCreditUpdate(pool *entity.CreditPool, req *dto.UpdateCreditPoolRequest) error {
	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be empty", apperror.ErrValidation)
		}
		pool.Name = name
	}
	if req.Color != nil {
		pool.Color = *req.Color
	}
	if req.Icon != nil {
		pool.Icon = *req.Icon
	}
	if req.URL != nil {
		pool.URL = sanitize.URL(*req.URL)
	}
	if req.Notes != nil {
		pool.Notes = sanitize.Text(*req.Notes)
	}
	if req.TotalCredits != nil {
		pool.TotalCredits = *req.TotalCredits
	}
	if req.UsedCredits != nil {
		pool.UsedCredits = *req.UsedCredits
	}
	if req.ResetCycle != nil {
		pool.ResetCycle = entity.ResetCycle(*req.ResetCycle)
	}
	if req.ResetDay != nil {
		pool.ResetDay = *req.ResetDay
	}
	if req.CustomResetDays != nil {
		pool.CustomResetDays = *req.CustomResetDays
	}
	if req.Enabled != nil {
		pool.Enabled = *req.Enabled
	}
	return validateResetDay(pool.ResetCycle, pool.ResetDay, pool.CustomResetDays)
}

func (s *creditService) Delete(ctx context.Context, id uuid.UUID) ([]dto.CreditPoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.Credits().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: credit pool %s", apperror.ErrNotFound, id)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.History().PurgeCreditChanges(ctx, id); err != nil {
		return nil, err
	}
	if err := uow.Credits().Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return s.collection(ctx, uow)
}

// ApplyUsage overwrites UsedCredits with the requested absolute value and
// appends the delta to the ledger. A no-op change (same value) is still
// recorded; the UI uses those entries as "checked in, no usage" markers.
func (s *creditService) ApplyUsage(ctx context.Context, id uuid.UUID, req *dto.UpdateUsageRequest) ([]dto.CreditPoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.Credits().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: credit pool %s", apperror.ErrNotFound, id)
	}

	now := time.Now()
	change := &entity.CreditChange{
		Id:           uuid.New(),
		PoolId:       pool.Id,
		PreviousUsed: pool.UsedCredits,
		NewUsed:      req.UsedCredits,
		Change:       req.UsedCredits - pool.UsedCredits,
		Date:         now,
		Note:         sanitize.Text(req.Note),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.History().CreateCreditChange(ctx, change); err != nil {
		return nil, err
	}
	pool.UsedCredits = req.UsedCredits
	pool.UpdatedAt = now
	if err := uow.Credits().Update(ctx, pool); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(events.TopicCreditsUpdated, events.CreditsUpdated{
		PoolId:       pool.Id,
		Name:         pool.Name,
		PreviousUsed: change.PreviousUsed,
		NewUsed:      change.NewUsed,
		Change:       change.Change,
		OccurredAt:   now,
	})
	s.logger.Info("CreditService", "usage applied", map[string]interface{}{
		"id":     pool.Id.String(),
		"change": change.Change,
	})
	return s.collection(ctx, uow)
}

func (s *creditService) History(ctx context.Context, id uuid.UUID) ([]dto.CreditChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.Credits().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, fmt.Errorf("%w: credit pool %s", apperror.ErrNotFound, id)
	}

	changes, err := uow.History().FindCreditChanges(ctx, id)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CreditChangeResponse, len(changes))
	for i, change := range changes {
		responses[i] = dto.CreditChangeResponse{
			Id:           change.Id,
			PreviousUsed: change.PreviousUsed,
			NewUsed:      change.NewUsed,
			Change:       change.Change,
			Date:         change.Date,
			Note:         change.Note,
		}
	}
	return responses, nil
}

func (s *creditService) collection(ctx context.Context, uow unitofwork.UnitOfWork) ([]dto.CreditPoolResponse, error) {
	pools, err := uow.Credits().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	responses := make([]dto.CreditPoolResponse, len(pools))
	for i, pool := range pools {
		responses[i] = toCreditPoolResponse(pool, now)
	}
	return responses, nil
}

func toCreditPoolResponse(pool *entity.CreditPool, now time.Time) dto.CreditPoolResponse {
	return dto.CreditPoolResponse{
		Id:              pool.Id,
		Name:            pool.Name,
		Color:           pool.Color,
		Icon:            pool.Icon,
		URL:             pool.URL,
		Notes:           pool.Notes,
		TotalCredits:    pool.TotalCredits,
		UsedCredits:     pool.UsedCredits,
		Remaining:       pool.TotalCredits - pool.UsedCredits,
		ResetCycle:      string(pool.ResetCycle),
		ResetDay:        pool.ResetDay,
		CustomResetDays: pool.CustomResetDays,
		Enabled:         pool.Enabled,
		NextReset:       cycle.NextReset(pool, now).Format(renewalDateLayout),
		DaysUntilReset:  cycle.DaysUntilReset(pool, now),
		ProgressPercent: cycle.ResetProgress(pool, now),
		CreatedAt:       pool.CreatedAt,
		UpdatedAt:       pool.UpdatedAt,
	}
}

func (s *creditService) publish(topic string, payload interface{}) {
	if s.pubSub == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := message.NewMessage(uuid.NewString(), raw)
	if err := s.pubSub.Publish(topic, msg); err != nil {
		s.logger.Warn("CreditService", "event publish failed", map[string]interface{}{"topic": topic, "error": err.Error()})
	}
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/domain/reward"
	"reclaim/internal/domain/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
)

const tracerName = "reclaim/usecase"

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager     repository.TransactionManager
	ledgerRepo    repository.TokenTransactionRepository
	collectorRepo repository.CollectorRepository
	pickupRepo    repository.PickupRepository
	exporter      service.LedgerExporter
	metrics       service.MetricsRecorder
	logger        *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	LedgerRepo    repository.TokenTransactionRepository
	CollectorRepo repository.CollectorRepository
	PickupRepo    repository.PickupRepository
	Exporter      service.LedgerExporter  `optional:"true"`
	Metrics       service.MetricsRecorder `optional:"true"`
	Logger        *slog.Logger
}

func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &tokenService{
		txManager:     params.TxManager,
		ledgerRepo:    params.LedgerRepo,
		collectorRepo: params.CollectorRepo,
		pickupRepo:    params.PickupRepo,
		exporter:      params.Exporter,
		metrics:       metrics,
		logger:        params.Logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AwardTokens serializes on the collector row so the balance read and the insert see
// the same ledger.
func (srv *tokenService) AwardTokens(ctx context.Context, input *usecase.AwardInput) (*entity.AwardResult, error) {
	if input == nil || input.CollectorID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collector id is required")
	}
	if !input.Source.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown transaction source %q", input.Source))
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "TokenService.AwardTokens")
	defer span.End()
	span.SetAttributes(
		attribute.String("collector.id", input.CollectorID.String()),
		attribute.String("token.source", string(input.Source)),
		attribute.Int64("token.amount", input.Amount),
	)

	var (
		result     *entity.AwardResult
		newBalance int64
	)
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewCollectorRepository().LockForUpdate(ctx, input.CollectorID); err != nil {
			return err
		}

		ledger := f.NewTokenTransactionRepository()
		balance, err := ledger.SumByCollector(ctx, input.CollectorID)
		if err != nil {
			return err
		}

		newBalance = balance + input.Amount
		if newBalance < 0 {
			result = &entity.AwardResult{Success: false}

			return nil
		}

		tx := &entity.TokenTransaction{
			CollectorID:  input.CollectorID,
			Amount:       input.Amount,
			Type:         input.Source.TransactionType(),
			Source:       input.Source,
			PickupID:     input.PickupID,
			Description:  input.Description,
			Metadata:     input.Metadata,
			BalanceAfter: newBalance,
		}
		if err := ledger.Create(ctx, tx); err != nil {
			return err
		}

		result = &entity.AwardResult{Success: true, TransactionID: &tx.ID, NewBalance: &newBalance}

		return nil
	})
	if err != nil {
		srv.metrics.ObserveAward(string(input.Source), input.Amount, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "award failed")

		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return nil, domainerrors.ErrDuplicateAward.WrapMessage(err.Error())
		}

		return nil, errors.Wrap(err, "failed to award tokens")
	}

	srv.metrics.ObserveAward(string(input.Source), input.Amount, result.Success)

	if !result.Success {
		srv.log(ctx).Warn("Award rejected, balance would go negative",
			slog.String("collector_id", input.CollectorID.String()),
			slog.Int64("amount", input.Amount),
			slog.String("source", string(input.Source)))

		return result, nil
	}

	// the ledger is authoritative, a stale cache is repaired by RecalculateTokenBalance
	if err := srv.collectorRepo.UpdateCachedBalance(ctx, input.CollectorID, newBalance); err != nil {
		srv.log(ctx).Warn("Failed to update cached balance",
			slog.String("collector_id", input.CollectorID.String()),
			slog.Any("error", err))
	}

	return result, nil
}

func (srv *tokenService) GetTokenBalance(ctx context.Context, collectorID uuid.UUID) (int64, error) {
	balance, err := srv.ledgerRepo.SumByCollector(ctx, collectorID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger")
	}

	return balance, nil
}

// ProcessPickupTokens pays a verified pickup once. A uuid.Nil collectorID trusts the
// pickup's own collector, which is how the worker calls it.
func (srv *tokenService) ProcessPickupTokens(ctx context.Context, pickupID, collectorID uuid.UUID) (*entity.PickupRewardResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "TokenService.ProcessPickupTokens")
	defer span.End()
	span.SetAttributes(attribute.String("pickup.id", pickupID.String()))

	pickup, err := srv.pickupRepo.FindByID(ctx, pickupID)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return nil, domainerrors.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to load pickup")
	}

	if collectorID == uuid.Nil {
		collectorID = pickup.CollectorID
	} else if pickup.CollectorID != collectorID {
		return nil, domainerrors.ErrPickupOwnershipViolation
	}

	// a recorded award is returned even if the pickup's status moved on since
	if processed, err := srv.findProcessed(ctx, collectorID, pickupID); err != nil || processed != nil {
		return processed, err
	}

	if !pickup.Status.CountsAsVerified() {
		return nil, domainerrors.ErrPickupNotVerified.WithDetails(fmt.Sprintf("status is %s", pickup.Status))
	}

	calc := reward.CalculateTokensForPickup(reward.ParamsFromPickup(pickup))
	confidence := 1.0
	if pickup.Verification.AIConfidence != nil {
		confidence = *pickup.Verification.AIConfidence
	}

	award, err := srv.AwardTokens(ctx, &usecase.AwardInput{
		CollectorID: collectorID,
		Amount:      calc.TotalTokens,
		Source:      entity.SourcePickupVerification,
		PickupID:    &pickupID,
		Description: fmt.Sprintf("Pickup verified: %.2f kg %s", pickup.ScoringWeight(), pickup.Category),
		Metadata: entity.PickupMetadata{
			Category:      pickup.Category,
			Weight:        pickup.ScoringWeight(),
			AIConfidence:  confidence,
			HasAfterPhoto: pickup.HasAfterPhoto(),
			ManualReview:  pickup.Verification.ManualReview,
			Breakdown:     calc.Breakdown,
		},
	})
	if err != nil {
		// a concurrent run won the unique key
		if errors.Is(err, domainerrors.ErrDuplicateAward) {
			processed, findErr := srv.findProcessed(ctx, collectorID, pickupID)
			if findErr == nil && processed != nil {
				return processed, nil
			}
		}

		return nil, err
	}
	if !award.Success {
		return nil, domainerrors.ErrTokenAwardFailed.WithDetails("pickup award was rejected by the balance check")
	}

	result := &entity.PickupRewardResult{
		CollectorID:       collectorID,
		TokensAwarded:     calc.TotalTokens,
		MilestonesAwarded: srv.awardMilestones(ctx, collectorID),
	}

	srv.log(ctx).Info("Pickup tokens awarded",
		slog.String("pickup_id", pickupID.String()),
		slog.String("collector_id", collectorID.String()),
		slog.Int64("tokens", result.TokensAwarded),
		slog.Int("milestones", len(result.MilestonesAwarded)))

	return result, nil
}

// findProcessed returns nil, nil when the pickup has not been paid yet.
func (srv *tokenService) findProcessed(ctx context.Context, collectorID, pickupID uuid.UUID) (*entity.PickupRewardResult, error) {
	existing, err := srv.ledgerRepo.FindByPickup(ctx, collectorID, pickupID, entity.SourcePickupVerification)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing pickup award")
	}

	return &entity.PickupRewardResult{
		CollectorID:       collectorID,
		TokensAwarded:     existing.Amount,
		MilestonesAwarded: []entity.AwardedMilestone{},
		AlreadyProcessed:  true,
	}, nil
}

// awardMilestones grants every milestone hit exactly by the current verified count.
// Failures are logged and skipped; the pickup award already stands.
func (srv *tokenService) awardMilestones(ctx context.Context, collectorID uuid.UUID) []entity.AwardedMilestone {
	awarded := []entity.AwardedMilestone{}

	count, err := srv.pickupRepo.CountVerifiedByCollector(ctx, collectorID)
	if err != nil {
		srv.log(ctx).Error("Failed to count verified pickups",
			slog.String("collector_id", collectorID.String()),
			slog.Any("error", err))

		return awarded
	}

	for _, m := range reward.CheckMilestones(count) {
		res, err := srv.AwardTokens(ctx, &usecase.AwardInput{
			CollectorID: collectorID,
			Amount:      m.Tokens,
			Source:      entity.SourceMilestone,
			Description: m.Description,
			Metadata: entity.MilestoneMetadata{
				Key:         m.Key,
				Threshold:   m.Threshold,
				PickupCount: count,
			},
		})
		if err != nil || !res.Success {
			srv.log(ctx).Error("Failed to award milestone",
				slog.String("collector_id", collectorID.String()),
				slog.String("milestone", m.Key),
				slog.Any("error", err))

			continue
		}

		srv.metrics.ObserveMilestone(m.Key)
		awarded = append(awarded, entity.AwardedMilestone{
			Key:           m.Key,
			Tokens:        m.Tokens,
			Description:   m.Description,
			TransactionID: *res.TransactionID,
		})
	}

	return awarded
}

func (srv *tokenService) RecalculateTokenBalance(ctx context.Context, collectorID uuid.UUID) (int64, error) {
	balance, err := srv.ledgerRepo.SumByCollector(ctx, collectorID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger")
	}

	if err := srv.collectorRepo.UpdateCachedBalance(ctx, collectorID, balance); err != nil {
		return 0, errors.Wrap(err, "failed to store recalculated balance")
	}

	srv.log(ctx).Info("Token balance recalculated",
		slog.String("collector_id", collectorID.String()),
		slog.Int64("balance", balance))

	return balance, nil
}

func (srv *tokenService) GetTransactionHistory(ctx context.Context, filter entity.TransactionFilter) (*usecase.TransactionPage, error) {
	if filter.CollectorID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collector id is required")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown transaction type %q", *filter.Type))
	}
	if filter.Source != nil && !filter.Source.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown transaction source %q", *filter.Source))
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("from must not be after to")
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = constants.DefaultPageLimit
	case filter.Limit > constants.MaxPageLimit:
		filter.Limit = constants.MaxPageLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	txs, total, err := srv.ledgerRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return &usecase.TransactionPage{
		Transactions: txs,
		Total:        total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}, nil
}

func (srv *tokenService) GetNextMilestone(ctx context.Context, collectorID uuid.UUID) (*entity.MilestoneProgress, error) {
	count, err := srv.pickupRepo.CountVerifiedByCollector(ctx, collectorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count verified pickups")
	}

	return reward.NextMilestone(count), nil
}

func (srv *tokenService) ExportTransactions(ctx context.Context, collectorID uuid.UUID) (*usecase.LedgerExport, error) {
	if srv.exporter == nil {
		return nil, domainerrors.ErrExportUnavailable
	}

	txs, err := srv.ledgerRepo.ListAll(ctx, collectorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger")
	}

	data, checksum, err := srv.exporter.EncodeCSV(txs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode ledger")
	}

	return &usecase.LedgerExport{Data: data, Checksum: checksum, Rows: len(txs)}, nil
}

func (srv *tokenService) ArchiveTransactions(ctx context.Context, collectorID uuid.UUID) (*usecase.LedgerExport, error) {
	export, err := srv.ExportTransactions(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("ledger/%s/%s.csv", collectorID, time.Now().UTC().Format("20060102T150405Z"))
	location, err := srv.exporter.Archive(ctx, key, export.Data)
	if err != nil {
		return nil, err
	}
	export.Location = location

	srv.log(ctx).Info("Ledger archived",
		slog.String("collector_id", collectorID.String()),
		slog.String("location", location),
		slog.Int("rows", export.Rows))

	return export, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveAward(string, int64, bool) {}

func (noopMetrics) ObserveMilestone(string) {}

func (noopMetrics) ObserveRoute(string, int, float64) {}

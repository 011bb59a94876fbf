package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"reclaim/config"
	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/domain/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pickupService struct {
	pickupRepo   repository.PickupRepository
	tokenUsecase usecase.TokenUsecase
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	async        bool
	logger       *slog.Logger
}

// PickupServiceParams holds dependencies for PickupService, injected by Fx.
type PickupServiceParams struct {
	fx.In

	Config       *config.Config
	PickupRepo   repository.PickupRepository
	TokenUsecase usecase.TokenUsecase
	QRService    service.QRCodeService
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

func NewPickupService(params PickupServiceParams) usecase.PickupUsecase {
	async := params.Publisher != nil &&
		params.Config.Rewards != nil && params.Config.Rewards.AsyncProcessing &&
		params.Config.PubSub != nil && params.Config.PubSub.Provider != ""

	return &pickupService{
		pickupRepo:   params.PickupRepo,
		tokenUsecase: params.TokenUsecase,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		async:        async,
		logger:       params.Logger,
	}
}

func (srv *pickupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pickupService) CreatePickup(ctx context.Context, input *usecase.CreatePickupInput) (*entity.Pickup, error) {
	if input == nil || input.CollectorID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collector id is required")
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown category %q", input.Category))
	}
	if !positiveFinite(input.EstimatedWeight) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("estimated weight must be positive")
	}
	if lat, lng := input.Location.Lat(), input.Location.Lon(); lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location out of range")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup id")
	}

	pickup := &entity.Pickup{
		ID:              id,
		CollectorID:     input.CollectorID,
		Category:        input.Category,
		EstimatedWeight: input.EstimatedWeight,
		Location:        input.Location,
		Address:         input.Address,
		Status:          entity.PickupStatusPending,
		Photos:          entity.PickupPhotos{Before: input.PhotoBefore},
	}
	if err := srv.pickupRepo.Create(ctx, pickup); err != nil {
		return nil, errors.Wrap(err, "failed to create pickup")
	}

	srv.log(ctx).Info("Pickup logged",
		slog.String("pickup_id", pickup.ID.String()),
		slog.String("collector_id", pickup.CollectorID.String()),
		slog.String("category", string(pickup.Category)),
		slog.Float64("estimated_weight", pickup.EstimatedWeight))

	return pickup, nil
}

func (srv *pickupService) GetPickup(ctx context.Context, collectorID, pickupID uuid.UUID) (*entity.Pickup, error) {
	pickup, err := srv.findPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}
	if pickup.CollectorID != collectorID {
		return nil, domainerrors.ErrPickupOwnershipViolation
	}

	return pickup, nil
}

func (srv *pickupService) GeneratePickupQR(ctx context.Context, collectorID, pickupID uuid.UUID) ([]byte, error) {
	pickup, err := srv.GetPickup(ctx, collectorID, pickupID)
	if err != nil {
		return nil, err
	}
	if pickup.Status != entity.PickupStatusPending {
		return nil, domainerrors.ErrPickupAlreadyVerified
	}

	png, err := srv.qrService.GeneratePickupQR(pickup.ID, pickup.CollectorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// VerifyPickup records the verifier's assessment. Token processing runs afterwards and
// never undoes the verification.
func (srv *pickupService) VerifyPickup(ctx context.Context, input *usecase.VerifyPickupInput) (*usecase.VerifyPickupOutput, error) {
	if err := validateVerifyInput(input); err != nil {
		return nil, err
	}

	pickup, err := srv.findPickup(ctx, input.PickupID)
	if err != nil {
		return nil, err
	}
	if pickup.Status != entity.PickupStatusPending {
		return nil, domainerrors.ErrPickupAlreadyVerified.WithDetails(fmt.Sprintf("status is %s", pickup.Status))
	}

	now := time.Now().UTC()
	verifier := input.VerifierID
	pickup.Status = entity.PickupStatusVerified
	if input.Reject {
		pickup.Status = entity.PickupStatusRejected
	}
	if input.ActualWeight != nil {
		pickup.ActualWeight = input.ActualWeight
	}
	if input.PhotoAfter != "" {
		pickup.Photos.After = input.PhotoAfter
	}
	pickup.Verification = entity.PickupVerification{
		AIConfidence: input.AIConfidence,
		ManualReview: input.ManualReview,
		VerifiedBy:   &verifier,
		VerifiedAt:   &now,
	}

	if err := srv.pickupRepo.UpdateVerification(ctx, pickup); err != nil {
		switch {
		case errors.Is(err, repository.ErrPickupNotFound):
			return nil, domainerrors.ErrPickupNotFound
		case errors.Is(err, repository.ErrPickupNotPending):
			return nil, domainerrors.ErrPickupAlreadyVerified.WithDetails("verified concurrently")
		}

		return nil, errors.Wrap(err, "failed to store verification")
	}

	srv.log(ctx).Info("Pickup verification recorded",
		slog.String("pickup_id", pickup.ID.String()),
		slog.String("status", string(pickup.Status)),
		slog.String("verifier_id", verifier.String()))

	output := &usecase.VerifyPickupOutput{Pickup: pickup}
	if input.Reject {
		return output, nil
	}

	if srv.async {
		if err := srv.publish(ctx, pickup, now); err == nil {
			output.Queued = true

			return output, nil
		}
		// fall through to inline processing so the award is not lost
	}

	reward, err := srv.tokenUsecase.ProcessPickupTokens(ctx, pickup.ID, pickup.CollectorID)
	if err != nil {
		srv.log(ctx).Error("Token processing failed after verification",
			slog.String("pickup_id", pickup.ID.String()),
			slog.Any("error", err))
		output.LedgerError = err.Error()

		return output, nil
	}
	output.Reward = reward

	return output, nil
}

func (srv *pickupService) VerifyPickupByQR(ctx context.Context, qrData string, input *usecase.VerifyPickupInput) (*usecase.VerifyPickupOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing verification input")
	}

	handoff, err := srv.qrService.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidPickupQRCode.WithDetails(err.Error())
	}

	pickup, err := srv.findPickup(ctx, handoff.PickupID)
	if err != nil {
		return nil, err
	}
	if pickup.CollectorID != handoff.CollectorID {
		return nil, domainerrors.ErrInvalidPickupQRCode.WithDetails("collector does not match pickup")
	}

	resolved := *input
	resolved.PickupID = handoff.PickupID

	return srv.VerifyPickup(ctx, &resolved)
}

func (srv *pickupService) publish(ctx context.Context, pickup *entity.Pickup, verifiedAt time.Time) error {
	msg := &service.PickupVerifiedMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		PickupVerifiedEvent: entity.PickupVerifiedEvent{
			PickupID:    pickup.ID,
			CollectorID: pickup.CollectorID,
			VerifiedAt:  verifiedAt,
		},
	}

	if err := srv.publisher.PublishPickupVerified(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to queue token processing, processing inline",
			slog.String("pickup_id", pickup.ID.String()),
			slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *pickupService) findPickup(ctx context.Context, pickupID uuid.UUID) (*entity.Pickup, error) {
	pickup, err := srv.pickupRepo.FindByID(ctx, pickupID)
	if err != nil {
		if errors.Is(err, repository.ErrPickupNotFound) {
			return nil, domainerrors.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to load pickup")
	}

	return pickup, nil
}

func validateVerifyInput(input *usecase.VerifyPickupInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("missing verification input")
	case input.PickupID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WrapMessage("pickup id is required")
	case input.VerifierID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WrapMessage("verifier id is required")
	case input.ActualWeight != nil && !positiveFinite(*input.ActualWeight):
		return domainerrors.ErrValidationFailed.WrapMessage("actual weight must be positive")
	case input.AIConfidence != nil && (math.IsNaN(*input.AIConfidence) || *input.AIConfidence < 0 || *input.AIConfidence > 1):
		return domainerrors.ErrValidationFailed.WrapMessage("ai confidence must be within [0, 1]")
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

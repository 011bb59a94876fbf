package impl

import (
	"context"
	"testing"

	"reclaim/config"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/domain/service"
	mockRepo "reclaim/internal/mocks/repository"
	mockSvc "reclaim/internal/mocks/service"
	mockUsecase "reclaim/internal/mocks/usecase"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pickupTestDeps struct {
	pickupRepo *mockRepo.MockPickupRepository
	tokens     *mockUsecase.MockTokenUsecase
	qr         *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
}

func createTestPickupService(t *testing.T, async bool) (usecase.PickupUsecase, *pickupTestDeps) {
	deps := &pickupTestDeps{
		pickupRepo: mockRepo.NewMockPickupRepository(t),
		tokens:     mockUsecase.NewMockTokenUsecase(t),
		qr:         mockSvc.NewMockQRCodeService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Rewards: &config.RewardsConfig{AsyncProcessing: async},
		PubSub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}

	svc := NewPickupService(PickupServiceParams{
		Config:       cfg,
		PickupRepo:   deps.pickupRepo,
		TokenUsecase: deps.tokens,
		QRService:    deps.qr,
		Publisher:    deps.publisher,
		Logger:       discardLogger(),
	})

	return svc, deps
}

func pendingPickup(collectorID uuid.UUID) *entity.Pickup {
	return &entity.Pickup{
		ID:              uuid.New(),
		CollectorID:     collectorID,
		Category:        entity.CategoryPET,
		EstimatedWeight: 10,
		Location:        orb.Point{121.5654, 25.0330},
		Status:          entity.PickupStatusPending,
	}
}

func TestPickupService_CreatePickup(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	collectorID := uuid.New()

	deps.pickupRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Pickup) bool {
			return p.CollectorID == collectorID && p.Status == entity.PickupStatusPending && p.ID != uuid.Nil
		})).
		Return(nil)

	pickup, err := svc.CreatePickup(ctx, &usecase.CreatePickupInput{
		CollectorID:     collectorID,
		Category:        entity.CategoryHDPE,
		EstimatedWeight: 4.5,
		Location:        orb.Point{121.5, 25.0},
		PhotoBefore:     "before.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryHDPE, pickup.Category)
	assert.Equal(t, "before.jpg", pickup.Photos.Before)
	assert.Equal(t, uuid.Version(7), pickup.ID.Version())
}

func TestPickupService_CreatePickup_Validation(t *testing.T) {
	svc, _ := createTestPickupService(t, false)
	ctx := context.Background()
	collectorID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.CreatePickupInput
	}{
		{"missing collector", &usecase.CreatePickupInput{Category: entity.CategoryPET, EstimatedWeight: 1}},
		{"unknown category", &usecase.CreatePickupInput{CollectorID: collectorID, Category: "PVC", EstimatedWeight: 1}},
		{"zero weight", &usecase.CreatePickupInput{CollectorID: collectorID, Category: entity.CategoryPET}},
		{"latitude out of range", &usecase.CreatePickupInput{CollectorID: collectorID, Category: entity.CategoryPET, EstimatedWeight: 1, Location: orb.Point{0, 91}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePickup(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPickupService_GetPickup_Ownership(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)

	_, err := svc.GetPickup(ctx, uuid.New(), pickup.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPickupOwnershipViolation)
}

func TestPickupService_GeneratePickupQR(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	collectorID := uuid.New()
	pickup := pendingPickup(collectorID)

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.qr.EXPECT().GeneratePickupQR(pickup.ID, collectorID).Return([]byte("png"), nil)

	png, err := svc.GeneratePickupQR(ctx, collectorID, pickup.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	verified := pendingPickup(collectorID)
	verified.Status = entity.PickupStatusVerified
	deps.pickupRepo.EXPECT().FindByID(ctx, verified.ID).Return(verified, nil)

	_, err = svc.GeneratePickupQR(ctx, collectorID, verified.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPickupAlreadyVerified)
}

func TestPickupService_VerifyPickup_Inline(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	collectorID, verifierID := uuid.New(), uuid.New()
	pickup := pendingPickup(collectorID)
	confidence := 0.97

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().
		UpdateVerification(ctx, mock.MatchedBy(func(p *entity.Pickup) bool {
			return p.Status == entity.PickupStatusVerified &&
				p.Verification.VerifiedBy != nil && *p.Verification.VerifiedBy == verifierID &&
				p.HasAfterPhoto()
		})).
		Return(nil)
	deps.tokens.EXPECT().
		ProcessPickupTokens(ctx, pickup.ID, collectorID).
		Return(&entity.PickupRewardResult{TokensAwarded: 19}, nil)

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{
		PickupID:     pickup.ID,
		VerifierID:   verifierID,
		AIConfidence: &confidence,
		PhotoAfter:   "after.jpg",
	})

	require.NoError(t, err)
	assert.False(t, out.Queued)
	require.NotNil(t, out.Reward)
	assert.Equal(t, int64(19), out.Reward.TokensAwarded)
	assert.Empty(t, out.LedgerError)
}

func TestPickupService_VerifyPickup_LedgerFailureKeepsVerification(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(nil)
	deps.tokens.EXPECT().
		ProcessPickupTokens(ctx, pickup.ID, pickup.CollectorID).
		Return(nil, errors.New("ledger unavailable"))

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: pickup.ID, VerifierID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, entity.PickupStatusVerified, out.Pickup.Status)
	assert.Nil(t, out.Reward)
	assert.Contains(t, out.LedgerError, "ledger unavailable")
}

func TestPickupService_VerifyPickup_LostRaceSkipsTokens(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(repository.ErrPickupNotPending)

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: pickup.ID, VerifierID: uuid.New(), Reject: true})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPickupAlreadyVerified)
	deps.tokens.AssertNotCalled(t, "ProcessPickupTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestPickupService_VerifyPickup_Async(t *testing.T) {
	svc, deps := createTestPickupService(t, true)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(nil)
	deps.publisher.EXPECT().
		PublishPickupVerified(ctx, mock.MatchedBy(func(msg *service.PickupVerifiedMessage) bool {
			return msg.PickupID == pickup.ID && msg.CollectorID == pickup.CollectorID
		})).
		Return(nil)

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: pickup.ID, VerifierID: uuid.New()})

	require.NoError(t, err)
	assert.True(t, out.Queued)
	assert.Nil(t, out.Reward)
}

func TestPickupService_VerifyPickup_PublishFailureFallsBackInline(t *testing.T) {
	svc, deps := createTestPickupService(t, true)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(nil)
	deps.publisher.EXPECT().PublishPickupVerified(ctx, mock.Anything).Return(errors.New("topic not found"))
	deps.tokens.EXPECT().
		ProcessPickupTokens(ctx, pickup.ID, pickup.CollectorID).
		Return(&entity.PickupRewardResult{TokensAwarded: 12}, nil)

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: pickup.ID, VerifierID: uuid.New()})

	require.NoError(t, err)
	assert.False(t, out.Queued)
	require.NotNil(t, out.Reward)
	assert.Equal(t, int64(12), out.Reward.TokensAwarded)
}

func TestPickupService_VerifyPickup_Reject(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(nil)

	out, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: pickup.ID, VerifierID: uuid.New(), Reject: true})

	require.NoError(t, err)
	assert.Equal(t, entity.PickupStatusRejected, out.Pickup.Status)
	assert.Nil(t, out.Reward)
}

func TestPickupService_VerifyPickup_Errors(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()

	_, err := svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	badConfidence := 1.5
	_, err = svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: uuid.New(), VerifierID: uuid.New(), AIConfidence: &badConfidence})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	missingID := uuid.New()
	deps.pickupRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrPickupNotFound)
	_, err = svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: missingID, VerifierID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrPickupNotFound)

	paid := pendingPickup(uuid.New())
	paid.Status = entity.PickupStatusPaid
	deps.pickupRepo.EXPECT().FindByID(ctx, paid.ID).Return(paid, nil)
	_, err = svc.VerifyPickup(ctx, &usecase.VerifyPickupInput{PickupID: paid.ID, VerifierID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrPickupAlreadyVerified)
}

func TestPickupService_VerifyPickupByQR(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.qr.EXPECT().
		ParsePickupQR("payload").
		Return(&service.PickupHandoff{PickupID: pickup.ID, CollectorID: pickup.CollectorID}, nil)
	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil).Times(2)
	deps.pickupRepo.EXPECT().UpdateVerification(ctx, pickup).Return(nil)
	deps.tokens.EXPECT().
		ProcessPickupTokens(ctx, pickup.ID, pickup.CollectorID).
		Return(&entity.PickupRewardResult{TokensAwarded: 19}, nil)

	out, err := svc.VerifyPickupByQR(ctx, "payload", &usecase.VerifyPickupInput{VerifierID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, pickup.ID, out.Pickup.ID)
	assert.Equal(t, int64(19), out.Reward.TokensAwarded)
}

func TestPickupService_VerifyPickupByQR_Invalid(t *testing.T) {
	svc, deps := createTestPickupService(t, false)
	ctx := context.Background()
	pickup := pendingPickup(uuid.New())

	deps.qr.EXPECT().ParsePickupQR("garbage").Return(nil, errors.New("invalid QR code data format"))
	_, err := svc.VerifyPickupByQR(ctx, "garbage", &usecase.VerifyPickupInput{VerifierID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupQRCode)

	deps.qr.EXPECT().
		ParsePickupQR("forged").
		Return(&service.PickupHandoff{PickupID: pickup.ID, CollectorID: uuid.New()}, nil)
	deps.pickupRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	_, err = svc.VerifyPickupByQR(ctx, "forged", &usecase.VerifyPickupInput{VerifierID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupQRCode)
}

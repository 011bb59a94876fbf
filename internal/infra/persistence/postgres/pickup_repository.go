package postgres

import (
	"context"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type pickupRepository struct {
	db *gorm.DB
}

func NewPickupRepository(db *gorm.DB) repository.PickupRepository {
	return &pickupRepository{
		db: db,
	}
}

func (repo *pickupRepository) Create(ctx context.Context, pickup *entity.Pickup) error {
	pickupM := fromPickupDomain(pickup)

	if err := repo.db.WithContext(ctx).Create(pickupM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid pickup record")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid collector reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup")
	}

	pickup.ID = pickupM.ID
	pickup.CreatedAt = pickupM.CreatedAt
	pickup.UpdatedAt = pickupM.UpdatedAt

	return nil
}

func (repo *pickupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pickup, error) {
	var pickupM model.PickupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pickupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup by ID")
	}

	return toPickupDomain(&pickupM), nil
}

func (repo *pickupRepository) UpdateVerification(ctx context.Context, pickup *entity.Pickup) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PickupModel{}).
		Where("id = ? AND status = ?", pickup.ID, string(entity.PickupStatusPending)).
		Updates(map[string]any{
			"status":        string(pickup.Status),
			"actual_weight": pickup.ActualWeight,
			"ai_confidence": pickup.Verification.AIConfidence,
			"manual_review": pickup.Verification.ManualReview,
			"verified_by":   pickup.Verification.VerifiedBy,
			"verified_at":   pickup.Verification.VerifiedAt,
			"photo_after":   pickup.Photos.After,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pickup verification")
	}

	if result.RowsAffected == 0 {
		// lost the race or never existed
		if _, err := repo.FindByID(ctx, pickup.ID); err != nil {
			return err
		}

		return repository.ErrPickupNotPending
	}

	return nil
}

func (repo *pickupRepository) CountVerifiedByCollector(ctx context.Context, collectorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PickupModel{}).
		Where("collector_id = ? AND status IN ?", collectorID, []string{
			string(entity.PickupStatusVerified),
			string(entity.PickupStatusPaid),
		}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count verified pickups")
	}

	return count, nil
}

func (repo *pickupRepository) FindPendingInBound(ctx context.Context, collectorID uuid.UUID, bound orb.Bound, limit int) ([]*entity.Pickup, error) {
	var pickupModels []*model.PickupModel

	query := repo.db.WithContext(ctx).
		Where("collector_id = ? AND status = ?", collectorID, string(entity.PickupStatusPending)).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&pickupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending pickups")
	}

	pickups := make([]*entity.Pickup, 0, len(pickupModels))
	for _, pickupM := range pickupModels {
		pickups = append(pickups, toPickupDomain(pickupM))
	}

	return pickups, nil
}

// --- Mapper Functions ---

func toPickupDomain(data *model.PickupModel) *entity.Pickup {
	if data == nil {
		return nil
	}

	return &entity.Pickup{
		ID:              data.ID,
		CollectorID:     data.CollectorID,
		Category:        entity.PlasticCategory(data.Category),
		EstimatedWeight: data.EstimatedWeight,
		ActualWeight:    data.ActualWeight,
		Location:        orb.Point{data.Longitude, data.Latitude},
		Address:         data.Address,
		Status:          entity.PickupStatus(data.Status),
		Verification: entity.PickupVerification{
			AIConfidence: data.AIConfidence,
			ManualReview: data.ManualReview,
			VerifiedBy:   data.VerifiedBy,
			VerifiedAt:   data.VerifiedAt,
		},
		Photos: entity.PickupPhotos{
			Before: data.PhotoBefore,
			After:  data.PhotoAfter,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPickupDomain(data *entity.Pickup) *model.PickupModel {
	if data == nil {
		return nil
	}

	return &model.PickupModel{
		ID:              data.ID,
		CollectorID:     data.CollectorID,
		Category:        string(data.Category),
		EstimatedWeight: data.EstimatedWeight,
		ActualWeight:    data.ActualWeight,
		Latitude:        data.Location.Lat(),
		Longitude:       data.Location.Lon(),
		Address:         data.Address,
		Status:          string(data.Status),
		AIConfidence:    data.Verification.AIConfidence,
		ManualReview:    data.Verification.ManualReview,
		VerifiedBy:      data.Verification.VerifiedBy,
		VerifiedAt:      data.Verification.VerifiedAt,
		PhotoBefore:     data.Photos.Before,
		PhotoAfter:      data.Photos.After,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

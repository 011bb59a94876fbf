package postgres

import (
	"context"
	"time"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type collectorRepository struct {
	db *gorm.DB
}

func NewCollectorRepository(db *gorm.DB) repository.CollectorRepository {
	return &collectorRepository{
		db: db,
	}
}

func (repo *collectorRepository) FindOrCreate(ctx context.Context, collectorID uuid.UUID) (*entity.CollectorProfile, error) {
	profileM := model.CollectorProfileModel{ID: collectorID}

	if err := repo.db.WithContext(ctx).
		Where(model.CollectorProfileModel{ID: collectorID}).
		FirstOrCreate(&profileM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load collector profile")
	}

	return toCollectorDomain(&profileM), nil
}

// LockForUpdate inserts a blank profile when absent, then takes SELECT ... FOR UPDATE on it.
func (repo *collectorRepository) LockForUpdate(ctx context.Context, collectorID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CollectorProfileModel{ID: collectorID}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure collector profile")
	}

	var profileM model.CollectorProfileModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", collectorID).
		Take(&profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock collector profile")
	}

	return nil
}

// UpdateCachedBalance upserts the profile row with the given balance.
func (repo *collectorRepository) UpdateCachedBalance(ctx context.Context, collectorID uuid.UUID, balance int64) error {
	now := time.Now()
	profileM := model.CollectorProfileModel{
		ID:           collectorID,
		TokenBalance: balance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_balance", "updated_at"}),
		}).
		Create(&profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cached token balance")
	}

	return nil
}

func toCollectorDomain(data *model.CollectorProfileModel) *entity.CollectorProfile {
	if data == nil {
		return nil
	}

	return &entity.CollectorProfile{
		ID:           data.ID,
		DisplayName:  data.DisplayName,
		TokenBalance: data.TokenBalance,
		UpdatedAt:    data.UpdatedAt,
	}
}

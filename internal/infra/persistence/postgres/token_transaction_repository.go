package postgres

import (
	"context"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type tokenTransactionRepository struct {
	db *gorm.DB
}

func NewTokenTransactionRepository(db *gorm.DB) repository.TokenTransactionRepository {
	return &tokenTransactionRepository{
		db: db,
	}
}

// Create appends a ledger row. A clash on either uniqueness key maps to ErrDuplicateTransaction.
func (repo *tokenTransactionRepository) Create(ctx context.Context, tx *entity.TokenTransaction) error {
	txM, err := fromTokenTransactionDomain(tx)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append token transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

func (repo *tokenTransactionRepository) FindByPickup(ctx context.Context, collectorID, pickupID uuid.UUID, source entity.TransactionSource) (*entity.TokenTransaction, error) {
	var txM model.TokenTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("collector_id = ? AND pickup_id = ? AND source = ?", collectorID, pickupID, string(source)).
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find token transaction by pickup")
	}

	return toTokenTransactionDomain(&txM)
}

func (repo *tokenTransactionRepository) SumByCollector(ctx context.Context, collectorID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TokenTransactionModel{}).
		Where("collector_id = ?", collectorID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum token transactions")
	}

	return total, nil
}

func (repo *tokenTransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TokenTransaction, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.TokenTransactionModel{}).
		Where("collector_id = ?", filter.CollectorID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Source != nil {
		query = query.Where("source = ?", string(*filter.Source))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count token transactions")
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var txModels []*model.TokenTransactionModel
	if err := query.Find(&txModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list token transactions")
	}

	txs, err := toTokenTransactionDomains(txModels)
	if err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

func (repo *tokenTransactionRepository) ListAll(ctx context.Context, collectorID uuid.UUID) ([]*entity.TokenTransaction, error) {
	var txModels []*model.TokenTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("collector_id = ?", collectorID).
		Order("created_at ASC").Order("id ASC").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all token transactions")
	}

	return toTokenTransactionDomains(txModels)
}

// --- Mapper Functions ---

func toTokenTransactionDomains(models []*model.TokenTransactionModel) ([]*entity.TokenTransaction, error) {
	txs := make([]*entity.TokenTransaction, 0, len(models))
	for _, txM := range models {
		tx, err := toTokenTransactionDomain(txM)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

func toTokenTransactionDomain(data *model.TokenTransactionModel) (*entity.TokenTransaction, error) {
	source := entity.TransactionSource(data.Source)

	metadata, err := entity.DecodeMetadata(source, data.Metadata)
	if err != nil {
		return nil, errors.Wrapf(err, "token transaction %s", data.ID)
	}

	return &entity.TokenTransaction{
		ID:           data.ID,
		CollectorID:  data.CollectorID,
		Amount:       data.Amount,
		Type:         entity.TransactionType(data.Type),
		Source:       source,
		PickupID:     data.PickupID,
		Description:  data.Description,
		Metadata:     metadata,
		BalanceAfter: data.BalanceAfter,
		CreatedAt:    data.CreatedAt,
	}, nil
}

func fromTokenTransactionDomain(data *entity.TokenTransaction) (*model.TokenTransactionModel, error) {
	raw, err := entity.EncodeMetadata(data.Metadata)
	if err != nil {
		return nil, err
	}

	txM := &model.TokenTransactionModel{
		ID:           data.ID,
		CollectorID:  data.CollectorID,
		PickupID:     data.PickupID,
		Source:       string(data.Source),
		Amount:       data.Amount,
		Type:         string(data.Type),
		Description:  data.Description,
		BalanceAfter: data.BalanceAfter,
		CreatedAt:    data.CreatedAt,
	}
	if raw != nil {
		txM.Metadata = datatypes.JSON(raw)
	}
	if m, ok := data.Metadata.(entity.MilestoneMetadata); ok && m.Key != "" {
		key := m.Key
		txM.MilestoneKey = &key
	}

	return txM, nil
}

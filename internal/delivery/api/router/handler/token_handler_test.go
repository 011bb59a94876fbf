package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	mockUsecase "reclaim/internal/mocks/usecase"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTokenHandler(t *testing.T) (*TokenHandler, *mockUsecase.MockTokenUsecase) {
	tokenUC := mockUsecase.NewMockTokenUsecase(t)

	return NewTokenHandler(TokenHandlerParams{TokenUC: tokenUC, Logger: discardLogger()}), tokenUC
}

func TestTokenHandler_GetBalance(t *testing.T) {
	h, tokenUC := createTestTokenHandler(t)
	collectorID := uuid.New()

	tokenUC.EXPECT().GetTokenBalance(mock.Anything, collectorID).Return(int64(69), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/tokens/balance", "", collectorID)
	require.NoError(t, h.GetBalance(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got BalanceResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, BalanceResponse{CollectorID: collectorID, Balance: 69}, got)
}

func TestTokenHandler_GetTransactions_Filter(t *testing.T) {
	h, tokenUC := createTestTokenHandler(t)
	collectorID := uuid.New()

	tokenUC.EXPECT().
		GetTransactionHistory(mock.Anything, mock.MatchedBy(func(f entity.TransactionFilter) bool {
			return f.CollectorID == collectorID &&
				f.Limit == 5 && f.Offset == 10 &&
				f.Type != nil && *f.Type == entity.TransactionTypeBonus &&
				f.Source != nil && *f.Source == entity.SourceMilestone &&
				f.From != nil && f.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.To == nil
		})).
		Return(&usecase.TransactionPage{Transactions: []*entity.TokenTransaction{}, Total: 12, Limit: 5, Offset: 10}, nil)

	target := "/api/v1/tokens/transactions?limit=5&offset=10&type=bonus&source=milestone&from=2026-01-01T00:00:00Z"
	c, rec := newTestContext(http.MethodGet, target, "", collectorID)
	require.NoError(t, h.GetTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var page usecase.TransactionPage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	assert.Equal(t, int64(12), page.Total)
}

func TestTokenHandler_GetTransactions_BadQuery(t *testing.T) {
	h, _ := createTestTokenHandler(t)

	for _, q := range []string{"limit=ten", "from=yesterday"} {
		c, rec := newTestContext(http.MethodGet, "/api/v1/tokens/transactions?"+q, "", uuid.New())
		require.NoError(t, h.GetTransactions(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	}
}

func TestTokenHandler_GetNextMilestone(t *testing.T) {
	h, tokenUC := createTestTokenHandler(t)
	collectorID := uuid.New()

	tokenUC.EXPECT().GetNextMilestone(mock.Anything, collectorID).Return(&entity.MilestoneProgress{
		Milestone: "ten_pickups",
		Tokens:    50,
		Progress:  30,
		Current:   3,
		Target:    10,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/tokens/milestones/next", "", collectorID)
	require.NoError(t, h.GetNextMilestone(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.MilestoneProgress
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "ten_pickups", got.Milestone)
	assert.InDelta(t, 30.0, got.Progress, 1e-9)
}

func TestTokenHandler_ExportTransactions(t *testing.T) {
	h, tokenUC := createTestTokenHandler(t)
	collectorID := uuid.New()

	tokenUC.EXPECT().ExportTransactions(mock.Anything, collectorID).Return(&usecase.LedgerExport{
		Data:     []byte("id,amount\n"),
		Checksum: "abc123",
		Rows:     0,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/tokens/transactions/export", "", collectorID)
	require.NoError(t, h.ExportTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", rec.Header().Get(constants.HeaderChecksum))
	assert.Equal(t, csvContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), collectorID.String())
	assert.Equal(t, "id,amount\n", rec.Body.String())
}

func TestTokenHandler_Recalculate(t *testing.T) {
	h, tokenUC := createTestTokenHandler(t)
	collectorID := uuid.New()

	tokenUC.EXPECT().RecalculateTokenBalance(mock.Anything, collectorID).Return(int64(0), domainerrors.ErrTransactionFailed)

	c, rec := newTestContext(http.MethodPost, "/api/v1/tokens/recalculate", "", collectorID)
	require.NoError(t, h.Recalculate(c))
	requireErrorCode(t, rec, http.StatusInternalServerError, "TRANSACTION_FAILED")
}

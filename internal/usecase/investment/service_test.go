package investment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// MockHoldingRepository is a mock implementation of HoldingRepository for testing
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) List(ctx context.Context) ([]*domain.Holding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) Create(ctx context.Context, holding *domain.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockHoldingRepository) Update(ctx context.Context, holding *domain.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockHoldingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWatchlistRepository is a mock implementation of WatchlistRepository for testing
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) List(ctx context.Context) ([]*domain.WatchlistItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WatchlistItem), args.Error(1)
}

func (m *MockWatchlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WatchlistItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WatchlistItem), args.Error(1)
}

func (m *MockWatchlistRepository) Create(ctx context.Context, item *domain.WatchlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Update(ctx context.Context, item *domain.WatchlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func symbol(s string) *string { return &s }

func TestPortfolio_ProfitScenario(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	// Setup: two lots, one priced, one at break-even
	holdings := []*domain.Holding{
		{ID: uuid.New(), Symbol: "AAPL", Shares: decimal.NewFromInt(10), AvgCost: decimal.NewFromInt(100), CurrentPrice: dec(150)},
		{ID: uuid.New(), Symbol: "VOO", Shares: decimal.NewFromInt(2), AvgCost: decimal.NewFromInt(250)},
	}
	mockHoldingRepo.On("List", ctx).Return(holdings, nil)

	// Execute
	portfolio, err := service.Portfolio(ctx)

	// Assert
	require.NoError(t, err)
	assert.True(t, portfolio.TotalValue.Equal(decimal.NewFromInt(2000))) // 1500 + 500
	assert.True(t, portfolio.TotalCost.Equal(decimal.NewFromInt(1500)))  // 1000 + 500
	assert.True(t, portfolio.TotalGain.Equal(decimal.NewFromInt(500)))   // 2000 - 1500
	assert.Equal(t, 2, portfolio.HoldingsCount)
	mockHoldingRepo.AssertExpectations(t)
}

func TestPortfolio_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	mockHoldingRepo.On("List", ctx).Return(nil, errors.New("connection reset"))

	portfolio, err := service.Portfolio(ctx)

	assert.Error(t, err)
	assert.Nil(t, portfolio)
	assert.Contains(t, err.Error(), "failed to list holdings")
}

func TestAddHolding_UppercasesSymbol(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	mockHoldingRepo.On("Create", ctx, mock.MatchedBy(func(h *domain.Holding) bool {
		return h.Symbol == "MSFT" && h.Shares.Equal(decimal.NewFromInt(5)) && h.CurrentPrice == nil
	})).Return(nil)

	holding, err := service.AddHolding(ctx, HoldingInput{
		Symbol:  symbol(" msft "),
		Shares:  dec(5),
		AvgCost: dec(300),
	})

	require.NoError(t, err)
	assert.Equal(t, "MSFT", holding.Symbol)
	mockHoldingRepo.AssertExpectations(t)
}

func TestAddHolding_RejectsNonPositiveShares(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	_, err := service.AddHolding(ctx, HoldingInput{Symbol: symbol("TSLA"), Shares: dec(0), AvgCost: dec(200)})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockHoldingRepo.AssertNotCalled(t, "Create")
}

func TestUpdateHolding_ClearsPrice(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	id := uuid.New()
	stored := &domain.Holding{ID: id, Symbol: "NVDA", Shares: decimal.NewFromInt(4), AvgCost: decimal.NewFromInt(400), CurrentPrice: dec(500)}
	mockHoldingRepo.On("GetByID", ctx, id).Return(stored, nil)
	mockHoldingRepo.On("Update", ctx, stored).Return(nil)

	holding, err := service.UpdateHolding(ctx, id, HoldingInput{ClearPrice: true, Shares: dec(6)})

	require.NoError(t, err)
	assert.Nil(t, holding.CurrentPrice)
	assert.True(t, holding.Shares.Equal(decimal.NewFromInt(6)))
}

func TestUpdateHolding_NotFound(t *testing.T) {
	ctx := context.Background()
	mockHoldingRepo := new(MockHoldingRepository)
	service := NewInvestmentService(mockHoldingRepo, new(MockWatchlistRepository))

	id := uuid.New()
	mockHoldingRepo.On("GetByID", ctx, id).Return(nil, domain.NotFound("holding", id))

	_, err := service.UpdateHolding(ctx, id, HoldingInput{Shares: dec(1)})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	mockHoldingRepo.AssertNotCalled(t, "Update")
}

func TestWatchlist(t *testing.T) {
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	service := NewInvestmentService(new(MockHoldingRepository), mockWatchlistRepo)

	mockWatchlistRepo.On("Create", ctx, mock.AnythingOfType("*domain.WatchlistItem")).Return(nil)

	item, err := service.AddToWatchlist(ctx, "amd", symbol("  earnings in Nov "))

	require.NoError(t, err)
	assert.Equal(t, "AMD", item.Symbol)
	assert.Equal(t, "earnings in Nov", *item.Notes)

	mockWatchlistRepo.On("GetByID", ctx, item.ID).Return(item, nil)
	mockWatchlistRepo.On("Update", ctx, item).Return(nil)

	updated, err := service.UpdateWatchlistNotes(ctx, item.ID, nil)

	require.NoError(t, err)
	assert.Nil(t, updated.Notes)
	mockWatchlistRepo.AssertExpectations(t)
}

package service

import (
	"context"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"
	"github.com/omapatel2503/UptradeX-Trading-Platform/repository"
)

// PortfolioService fronts the three persisted collections. Store failures are
// fatal to the single request they occurred in and surface as server errors.
type PortfolioService interface {
	AllHoldings(ctx context.Context) ([]model.Holding, error)
	AllPositions(ctx context.Context) ([]model.Position, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	NewOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error)
}

type PortfolioServiceImpl struct {
	holdings  *repository.HoldingRepository
	positions *repository.PositionRepository
	orders    *repository.OrderRepository
}

func NewPortfolioService(
	holdings *repository.HoldingRepository,
	positions *repository.PositionRepository,
	orders *repository.OrderRepository,
) PortfolioService {
	return &PortfolioServiceImpl{
		holdings:  holdings,
		positions: positions,
		orders:    orders,
	}
}

func (s *PortfolioServiceImpl) AllHoldings(ctx context.Context) ([]model.Holding, error) {
	return s.holdings.FindAll(ctx)
}

func (s *PortfolioServiceImpl) AllPositions(ctx context.Context) ([]model.Position, error) {
	return s.positions.FindAll(ctx)
}

func (s *PortfolioServiceImpl) AllOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *PortfolioServiceImpl) NewOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	return s.orders.Insert(ctx, req.ToEntity())
}

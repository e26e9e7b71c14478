package service

import (
	"context"

	"mobility-rental-backend/internal/clock"
)

type stockService struct {
	state *State
	clock clock.Clock
}

func NewStockService(state *State, clk clock.Clock) StockService {
	return &stockService{state: state, clock: clk}
}

func (s *stockService) Stock(ctx context.Context, order StockSort) []Availability {
	snap := s.state.Snapshot()
	stock := ComputeAvailability(snap.Items, snap.Rentals, s.clock.Now())
	SortStock(stock, order)
	return stock
}

func (s *stockService) Summary(ctx context.Context) DashboardSummary {
	snap := s.state.Snapshot()
	return Summarize(snap.Items, snap.Rentals, s.clock.Now())
}

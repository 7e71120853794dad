package handlers

import (
	"context"

	"github.com/healthforge/healthforge/internal/models"
	"github.com/healthforge/healthforge/internal/services/kit"
)

type mockAssembler struct {
	AssembleFunc func(ctx context.Context, profile models.UserProfile) (*kit.Result, error)
}

func (m *mockAssembler) Assemble(ctx context.Context, profile models.UserProfile) (*kit.Result, error) {
	if m.AssembleFunc != nil {
		return m.AssembleFunc(ctx, profile)
	}
	return &kit.Result{}, nil
}

type mockCatalogReader struct {
	ListFunc  func(ctx context.Context, category models.Category, limit int) ([]models.Item, error)
	CountFunc func(ctx context.Context) (int, error)
}

func (m *mockCatalogReader) List(ctx context.Context, category models.Category, limit int) ([]models.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category, limit)
	}
	return nil, nil
}

func (m *mockCatalogReader) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockHealthChecker struct {
	HealthFunc func(ctx context.Context) error
}

func (m *mockHealthChecker) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
)

// ConversionRepository is the in-memory receipt store. Receipts are
// immutable once saved.
type ConversionRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.ConversionResult
	ordered []string // insertion order, oldest first
}

// NewConversionRepository creates an empty receipt store.
func NewConversionRepository() *ConversionRepository {
	return &ConversionRepository{byID: make(map[string]domain.ConversionResult)}
}

var _ portsrepo.ConversionRepositoryFacade = (*ConversionRepository)(nil)

func (r *ConversionRepository) SaveConversion(ctx context.Context, result domain.ConversionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[result.ConversionID]; exists {
		return fmt.Errorf("%w: conversion %s", apperrors.ErrDuplicate, result.ConversionID)
	}
	r.byID[result.ConversionID] = result
	r.ordered = append(r.ordered, result.ConversionID)
	return nil
}

func (r *ConversionRepository) FindConversionByID(ctx context.Context, conversionID string) (*domain.ConversionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.byID[conversionID]
	if !ok {
		return nil, fmt.Errorf("%w: conversion %s", apperrors.ErrNotFound, conversionID)
	}
	return &result, nil
}

func (r *ConversionRepository) ListConversions(ctx context.Context, tenantID string, from, to time.Time) ([]domain.ConversionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ConversionResult
	for i := len(r.ordered) - 1; i >= 0; i-- {
		result := r.byID[r.ordered[i]]
		if result.TenantID != tenantID {
			continue
		}
		if !from.IsZero() && result.ConvertedAt.Before(from) {
			continue
		}
		if !to.IsZero() && result.ConvertedAt.After(to) {
			continue
		}
		out = append(out, result)
	}
	return out, nil
}

package services

import (
	"context"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// PricingService manages weight tiers and bag types.
type PricingService struct {
	Weights   WeightStore
	BagTypes  BagTypeStore
	RequestID string
}

func (s PricingService) ListWeights(ctx context.Context, f repositories.ListFilter) ([]models.Weight, error) {
	return s.Weights.List(ctx, f)
}

// AllWeights backs the public home page.
func (s PricingService) AllWeights(ctx context.Context) ([]models.Weight, error) {
	return s.Weights.List(ctx, repositories.ListFilter{Page: domain.Pagination{Page: 1, PageSize: domain.MaxPageSize}})
}

func (s PricingService) GetWeight(ctx context.Context, id int64) (models.Weight, error) {
	if err := requireID("weight", id); err != nil {
		return models.Weight{}, err
	}
	return s.Weights.GetByID(ctx, id)
}

func (s PricingService) CreateWeight(ctx context.Context, w models.Weight) (models.Weight, error) {
	w.Normalize()
	if err := w.Validate(); err != nil {
		return w, err
	}
	out, err := s.Weights.Create(ctx, w)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "weight", "create", out.ID)
	return out, nil
}

func (s PricingService) UpdateWeight(ctx context.Context, id int64, w models.Weight) (models.Weight, error) {
	existing, err := s.GetWeight(ctx, id)
	if err != nil {
		return w, err
	}
	w.ID = id
	w.Created = existing.Created
	w.Normalize()
	if err := w.Validate(); err != nil {
		return w, err
	}
	out, err := s.Weights.Update(ctx, w)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "weight", "update", id)
	return out, nil
}

func (s PricingService) DeleteWeight(ctx context.Context, id int64) error {
	if err := requireID("weight", id); err != nil {
		return err
	}
	if err := s.Weights.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "weight", "delete", id)
	return nil
}

func (s PricingService) ListBagTypes(ctx context.Context, f repositories.ListFilter) ([]models.BagType, error) {
	return s.BagTypes.List(ctx, f)
}

func (s PricingService) GetBagType(ctx context.Context, id int64) (models.BagType, error) {
	if err := requireID("bag type", id); err != nil {
		return models.BagType{}, err
	}
	return s.BagTypes.GetByID(ctx, id)
}

func (s PricingService) CreateBagType(ctx context.Context, b models.BagType) (models.BagType, error) {
	b.Normalize()
	if err := b.Validate(); err != nil {
		return b, err
	}
	out, err := s.BagTypes.Create(ctx, b)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "bag_type", "create", out.ID)
	return out, nil
}

func (s PricingService) UpdateBagType(ctx context.Context, id int64, b models.BagType) (models.BagType, error) {
	existing, err := s.GetBagType(ctx, id)
	if err != nil {
		return b, err
	}
	b.ID = id
	b.Created = existing.Created
	b.Normalize()
	if err := b.Validate(); err != nil {
		return b, err
	}
	out, err := s.BagTypes.Update(ctx, b)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "bag_type", "update", id)
	return out, nil
}

func (s PricingService) DeleteBagType(ctx context.Context, id int64) error {
	if err := requireID("bag type", id); err != nil {
		return err
	}
	if err := s.BagTypes.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "bag_type", "delete", id)
	return nil
}

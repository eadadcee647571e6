package services

import (
	"context"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

type CustomerService struct {
	Customers CustomerStore
	Bills     BillStore
	RequestID string
}

func (s CustomerService) List(ctx context.Context, f repositories.ListFilter) ([]models.Customer, error) {
	return s.Customers.List(ctx, f)
}

func (s CustomerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	if err := requireID("customer", id); err != nil {
		return models.Customer{}, err
	}
	return s.Customers.GetByID(ctx, id)
}

func (s CustomerService) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return c, err
	}
	out, err := s.Customers.Create(ctx, c)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "customer", "create", out.ID)
	return out, nil
}

func (s CustomerService) Update(ctx context.Context, id int64, c models.Customer) (models.Customer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return c, err
	}
	c.ID = id
	c.Created = existing.Created
	c.Normalize()
	if err := c.Validate(); err != nil {
		return c, err
	}
	out, err := s.Customers.Update(ctx, c)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "customer", "update", id)
	return out, nil
}

func (s CustomerService) Delete(ctx context.Context, id int64) error {
	if err := requireID("customer", id); err != nil {
		return err
	}
	if err := s.Customers.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "customer", "delete", id)
	return nil
}

// Detail returns the customer with the bills actor may view.
func (s CustomerService) Detail(ctx context.Context, actor domain.Actor, id int64) (CustomerDetail, error) {
	if err := requireActor(actor); err != nil {
		return CustomerDetail{}, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return CustomerDetail{}, err
	}
	bills, err := s.Bills.ListByCustomer(ctx, id)
	if err != nil {
		return CustomerDetail{}, err
	}
	return CustomerDetail{Customer: c, Bills: billViews(models.VisibleBills(actor, bills))}, nil
}

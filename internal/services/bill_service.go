package services

import (
	"context"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// ItemInput is one inline line item of a bill write.
// A missing quantity defaults to 1; an explicit 0 is rejected.
type ItemInput struct {
	WeightID  int64 `json:"weight_id"`
	BagTypeID int64 `json:"bag_type_id"`
	Quantity  *int  `json:"quantity"`
}

// BillInput is the writable part of a bill. added_by is not part of it:
// it is taken from the acting user on creation and never changed.
// A nil Items on update keeps the stored items.
type BillInput struct {
	CustomerID int64        `json:"customer_id"`
	TripID     int64        `json:"trip_id"`
	Items      *[]ItemInput `json:"items"`
}

func (in BillInput) bill() models.LuggageBill {
	b := models.LuggageBill{CustomerID: in.CustomerID, TripID: in.TripID, Items: []models.Luggage{}}
	if in.Items != nil {
		for _, it := range *in.Items {
			b.Items = append(b.Items, models.Luggage{
				WeightID:  it.WeightID,
				BagTypeID: it.BagTypeID,
				Quantity:  models.QuantityOrDefault(it.Quantity),
			})
		}
	}
	return b
}

type BillService struct {
	Bills     BillStore
	Customers CustomerStore
	Trips     TripStore
	Weights   WeightStore
	BagTypes  BagTypeStore
	RequestID string
}

// List returns the bills actor may view.
func (s BillService) List(ctx context.Context, actor domain.Actor, f repositories.ListFilter) ([]BillView, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !actor.IsSuperuser {
		f.AddedByID = actor.UserID
	}
	bills, err := s.Bills.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return billViews(models.VisibleBills(actor, bills)), nil
}

// Get loads one bill. Bills actor may not view are reported as not found.
func (s BillService) Get(ctx context.Context, actor domain.Actor, id int64) (BillView, error) {
	if err := requireActor(actor); err != nil {
		return BillView{}, err
	}
	b, err := s.load(ctx, actor, id)
	if err != nil {
		return BillView{}, err
	}
	return NewBillView(b), nil
}

func (s BillService) load(ctx context.Context, actor domain.Actor, id int64) (models.LuggageBill, error) {
	if err := requireID("luggage bill", id); err != nil {
		return models.LuggageBill{}, err
	}
	b, err := s.Bills.GetByID(ctx, id)
	if err != nil {
		return b, err
	}
	if !models.CanViewBill(actor, b) {
		return models.LuggageBill{}, domain.NotFoundError{Resource: "luggage bill"}
	}
	return b, nil
}

// checkRefs reports missing customer, trip, weight or bag type as validation errors.
func (s BillService) checkRefs(ctx context.Context, b models.LuggageBill) error {
	if err := refExists(ctx, "customer_id", b.CustomerID, func(ctx context.Context, id int64) error {
		_, err := s.Customers.GetByID(ctx, id)
		return err
	}); err != nil {
		return err
	}
	if err := refExists(ctx, "trip_id", b.TripID, func(ctx context.Context, id int64) error {
		_, err := s.Trips.GetByID(ctx, id)
		return err
	}); err != nil {
		return err
	}
	weights := map[int64]bool{}
	bagTypes := map[int64]bool{}
	for i, it := range b.Items {
		if !weights[it.WeightID] {
			if err := refExists(ctx, itemField(i, "weight_id"), it.WeightID, func(ctx context.Context, id int64) error {
				_, err := s.Weights.GetByID(ctx, id)
				return err
			}); err != nil {
				return err
			}
			weights[it.WeightID] = true
		}
		if !bagTypes[it.BagTypeID] {
			if err := refExists(ctx, itemField(i, "bag_type_id"), it.BagTypeID, func(ctx context.Context, id int64) error {
				_, err := s.BagTypes.GetByID(ctx, id)
				return err
			}); err != nil {
				return err
			}
			bagTypes[it.BagTypeID] = true
		}
	}
	return nil
}

// Create stores the bill with its items, attributed to actor.
func (s BillService) Create(ctx context.Context, actor domain.Actor, in BillInput) (BillView, error) {
	if err := requireActor(actor); err != nil {
		return BillView{}, err
	}
	b := in.bill()
	b.AttributeTo(actor)
	if err := b.Validate(); err != nil {
		return BillView{}, err
	}
	if err := s.checkRefs(ctx, b); err != nil {
		return BillView{}, err
	}
	out, err := s.Bills.Create(ctx, b)
	if err != nil {
		return BillView{}, err
	}
	logWrite(s.RequestID, "luggage_bill", "create", out.ID)
	return s.Get(ctx, actor, out.ID)
}

// Update changes customer, trip and optionally the items. added_by is kept.
func (s BillService) Update(ctx context.Context, actor domain.Actor, id int64, in BillInput) (BillView, error) {
	if err := requireActor(actor); err != nil {
		return BillView{}, err
	}
	existing, err := s.load(ctx, actor, id)
	if err != nil {
		return BillView{}, err
	}
	b := in.bill()
	b.ID = id
	b.AddedByID = existing.AddedByID
	b.AttributeTo(actor)
	if err := b.Validate(); err != nil {
		return BillView{}, err
	}
	if err := s.checkRefs(ctx, b); err != nil {
		return BillView{}, err
	}
	if _, err := s.Bills.Update(ctx, b, in.Items != nil); err != nil {
		return BillView{}, err
	}
	logWrite(s.RequestID, "luggage_bill", "update", id)
	return s.Get(ctx, actor, id)
}

func (s BillService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.Bills.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "luggage_bill", "delete", id)
	return nil
}

func itemField(i int, field string) string {
	return "items[" + idStr(int64(i)) + "]." + field
}

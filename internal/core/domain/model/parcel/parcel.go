package parcel

import (
	"errors"
	"fmt"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel belongs to exactly one order. The order reference is fixed at creation;
// description, weight and status are replaced together by Revise.
type Parcel struct {
	id          kernel.UUID
	orderID     kernel.UUID
	description string
	weight      decimal.Decimal
	status      Status

	isConstructed bool
}

func NewParcel(id, orderID kernel.UUID, description string, weight decimal.Decimal, status Status) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setWeight(weight),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}
	p.description = description

	return p, nil
}

func RestoreParcel(id, orderID kernel.UUID, description string, weight decimal.Decimal, status Status) (*Parcel, error) {
	return NewParcel(id, orderID, description, weight, status)
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID         { return p.id }
func (p *Parcel) OrderID() kernel.UUID    { return p.orderID }
func (p *Parcel) Description() string     { return p.description }
func (p *Parcel) Weight() decimal.Decimal { return p.weight }
func (p *Parcel) Status() Status          { return p.status }

// Revise replaces description, weight and status wholesale. It is all or nothing.
func (p *Parcel) Revise(description string, weight decimal.Decimal, status Status) error {
	next := *p
	if err := errors.Join(next.setWeight(weight), next.setStatus(status)); err != nil {
		return err
	}
	next.description = description
	*p = next
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Parcel) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

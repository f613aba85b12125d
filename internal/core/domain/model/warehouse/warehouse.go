package warehouse

import (
	"errors"
	"strings"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed indicates a Warehouse that was not built by NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse stores goods at a location. Capacity and available space are plain
// counters; available space is not bounded by capacity.
type Warehouse struct {
	id             kernel.UUID
	location       string
	capacity       int
	availableSpace int
	managerID      *kernel.UUID

	isConstructed bool
}

// NewWarehouse creates a warehouse.
//
// Parameters:
//   - id: The warehouse identifier, must not be the nil UUID
//   - location: Required, stored trimmed; locations are unique across warehouses
//   - capacity, availableSpace: Stored as given
//   - managerID: Optional; when present it must not be the nil UUID
//
// Returns:
//   - *Warehouse: The created warehouse if all validations pass
//   - error: Every validation failure joined together
//
// Example:
//
//	managerID := manager.ID()
//	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Dock 7", 500, 120, &managerID)
//	if err != nil {
//	    // Handle validation error
//	}
func NewWarehouse(id kernel.UUID, location string, capacity, availableSpace int, managerID *kernel.UUID) (*Warehouse, error) {
	w := &Warehouse{id: id, isConstructed: true}

	var managerErr error
	if managerID != nil {
		if err := managerID.Validate(); err != nil {
			managerErr = errs.NewValueIsInvalidErrorWithCause("managerId", err)
		} else {
			m := *managerID
			w.managerID = &m
		}
	}

	if err := errors.Join(
		id.Validate(),
		managerErr,
		w.setDetails(location, capacity, availableSpace),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse rebuilds a Warehouse from persisted state with the same validation as NewWarehouse.
func RestoreWarehouse(id kernel.UUID, location string, capacity, availableSpace int, managerID *kernel.UUID) (*Warehouse, error) {
	return NewWarehouse(id, location, capacity, availableSpace, managerID)
}

// Validate ensures the Warehouse instance was properly constructed.
//
// Returns:
//   - nil if the warehouse is valid
//   - ErrWarehouseIsNotConstructed if the warehouse was not created via NewWarehouse
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Location returns where the warehouse is.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the total storage capacity.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// AvailableSpace returns the free storage space.
func (w *Warehouse) AvailableSpace() int {
	return w.availableSpace
}

// ManagerID returns a copy of the manager reference, or nil when unset.
func (w *Warehouse) ManagerID() *kernel.UUID {
	if w.managerID == nil {
		return nil
	}
	id := *w.managerID
	return &id
}

// Revise replaces location, capacity and available space. The manager is kept.
func (w *Warehouse) Revise(location string, capacity, availableSpace int) error {
	next := *w
	if err := next.setDetails(location, capacity, availableSpace); err != nil {
		return err
	}
	*w = next
	return nil
}

func (w *Warehouse) setDetails(location string, capacity, availableSpace int) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	w.location = location
	w.capacity = capacity
	w.availableSpace = availableSpace
	return nil
}

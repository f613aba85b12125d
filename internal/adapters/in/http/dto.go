package http

import (
	"encoding/json"
	"strings"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/core/domain/model/route"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// localDateTimeLayout is accepted alongside RFC 3339 and read as UTC.
const localDateTimeLayout = "2006-01-02T15:04:05"

// DateTime decodes RFC 3339 timestamps as well as zone-less local date-times.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryTime", err)
	}

	for _, layout := range []string{time.RFC3339Nano, localDateTimeLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return errs.NewValueIsInvalidError("estimatedDeliveryTime")
}

func (d *DateTime) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// optionalID parses a UUID body field. An empty value yields the zero UUID,
// which the command constructors report as a missing field.
func optionalID(field, raw string) (kernel.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.UUID{}, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type OrderRequest struct {
	ClientID              string    `json:"clientId"`
	Status                string    `json:"status"`
	Origin                string    `json:"origin"`
	Destination           string    `json:"destination"`
	EstimatedDeliveryTime *DateTime `json:"estimatedDeliveryTime"`
}

type OrderResponse struct {
	ID                    string     `json:"id"`
	ClientID              string     `json:"clientId"`
	Status                string     `json:"status"`
	Origin                string     `json:"origin"`
	Destination           string     `json:"destination"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                    o.ID().String(),
		ClientID:              o.ClientID().String(),
		Status:                o.Status().String(),
		Origin:                o.Origin(),
		Destination:           o.Destination(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
	}
}

type PackageRequest struct {
	OrderID     string          `json:"orderId"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	Status      string          `json:"status"`
}

type PackageResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	Status      string          `json:"status"`
}

func toPackageResponse(p *parcel.Parcel) PackageResponse {
	return PackageResponse{
		ID:          p.ID().String(),
		OrderID:     p.OrderID().String(),
		Description: p.Description(),
		Weight:      p.Weight(),
		Status:      p.Status().String(),
	}
}

type RouteRequest struct {
	VehicleID         string `json:"vehicleId"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	EstimatedTime     string `json:"estimatedTime"`
	TrafficConditions string `json:"trafficConditions"`
}

type RouteResponse struct {
	ID                string `json:"id"`
	VehicleID         string `json:"vehicleId"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	EstimatedTime     string `json:"estimatedTime"`
	TrafficConditions string `json:"trafficConditions"`
}

func toRouteResponse(r *route.Route) RouteResponse {
	return RouteResponse{
		ID:                r.ID().String(),
		VehicleID:         r.VehicleID().String(),
		Origin:            r.Origin(),
		Destination:       r.Destination(),
		EstimatedTime:     r.EstimatedTime(),
		TrafficConditions: r.TrafficConditions(),
	}
}

// VehicleRequest carries no driver: drivers change through assign-driver only.
type VehicleRequest struct {
	Type            string          `json:"type"`
	LicensePlate    string          `json:"licensePlate"`
	Capacity        decimal.Decimal `json:"capacity"`
	CurrentLocation string          `json:"currentLocation"`
}

type VehicleResponse struct {
	ID              string          `json:"id"`
	DriverID        *string         `json:"driverId"`
	Type            string          `json:"type"`
	LicensePlate    string          `json:"licensePlate"`
	Capacity        decimal.Decimal `json:"capacity"`
	CurrentLocation string          `json:"currentLocation"`
}

func toVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID().String(),
		DriverID:        idString(v.DriverID()),
		Type:            v.Type(),
		LicensePlate:    v.LicensePlate(),
		Capacity:        v.Capacity(),
		CurrentLocation: v.CurrentLocation(),
	}
}

type WarehouseRequest struct {
	ManagerID      string `json:"managerId"`
	Location       string `json:"location"`
	Capacity       int    `json:"capacity"`
	AvailableSpace int    `json:"availableSpace"`
}

type WarehouseResponse struct {
	ID             string  `json:"id"`
	ManagerID      *string `json:"managerId"`
	Location       string  `json:"location"`
	Capacity       int     `json:"capacity"`
	AvailableSpace int     `json:"availableSpace"`
}

func toWarehouseResponse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:             w.ID().String(),
		ManagerID:      idString(w.ManagerID()),
		Location:       w.Location(),
		Capacity:       w.Capacity(),
		AvailableSpace: w.AvailableSpace(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserResponse never includes the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

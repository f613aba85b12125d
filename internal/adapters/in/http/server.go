// Package http exposes the logistics services over a JSON API built on echo.
//
// Every route under /api/v1 except /auth passes through bearer token
// authentication and then through the policy gate for its operation.
package http

import (
	"context"
	"net/http"
	"time"

	"waypoint/internal/core/application/services"
	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/core/domain/model/route"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/core/domain/policy"
	"waypoint/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

type OrderService interface {
	ListAll(ctx context.Context) ([]*order.Order, error)
	Create(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)
	UpdateStatus(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type ParcelService interface {
	ListAll(ctx context.Context) ([]*parcel.Parcel, error)
	Create(ctx context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error)
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error)
	Update(ctx context.Context, cmd commands.UpdateParcelCommand) (*parcel.Parcel, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type RouteService interface {
	ListAll(ctx context.Context) ([]*route.Route, error)
	Create(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error)
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error)
	Update(ctx context.Context, cmd commands.UpdateRouteCommand) (*route.Route, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type VehicleService interface {
	ListAll(ctx context.Context) ([]*vehicle.Vehicle, error)
	Create(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error)
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	AssignDriver(ctx context.Context, cmd commands.AssignDriverCommand) (*vehicle.Vehicle, error)
	Update(ctx context.Context, cmd commands.UpdateVehicleCommand) (*vehicle.Vehicle, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type WarehouseService interface {
	ListAll(ctx context.Context) ([]*warehouse.Warehouse, error)
	Create(ctx context.Context, cmd commands.CreateWarehouseCommand) (*warehouse.Warehouse, error)
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
	GetByLocation(ctx context.Context, location string) (*warehouse.Warehouse, error)
	Update(ctx context.Context, cmd commands.UpdateWarehouseCommand) (*warehouse.Warehouse, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type UserService interface {
	Register(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	ListAll(ctx context.Context) ([]*user.User, error)
	UpdateProfile(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error)
}

var (
	_ OrderService     = (*services.OrderService)(nil)
	_ ParcelService    = (*services.ParcelService)(nil)
	_ RouteService     = (*services.RouteService)(nil)
	_ VehicleService   = (*services.VehicleService)(nil)
	_ WarehouseService = (*services.WarehouseService)(nil)
	_ UserService      = (*services.UserService)(nil)
)

// Services bundles the application services the API dispatches to.
type Services struct {
	Orders     OrderService
	Parcels    ParcelService
	Routes     RouteService
	Vehicles   VehicleService
	Warehouses WarehouseService
	Users      UserService
}

// AuthConfig controls token issue and verification.
type AuthConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// Server owns the echo instance and its routes.
type Server struct {
	services Services
	auth     AuthConfig
	logger   *logger.Logger
	echo     *echo.Echo
}

func NewServer(svc Services, auth AuthConfig, l *logger.Logger) *Server {
	if auth.TokenTTL <= 0 {
		auth.TokenTTL = 24 * time.Hour
	}

	s := &Server{services: svc, auth: auth, logger: l.Named("http")}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = s.errorHandler
	e.Use(s.logRequests)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	s.routes(e.Group("/api/v1"))
	s.echo = e

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on address until the server is shut down.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("http server listening")
	return s.echo.Start(address)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) routes(api *echo.Group) {
	auth := api.Group("/auth")
	auth.POST("/register", s.register, s.authenticate)
	auth.POST("/login", s.login)

	api = api.Group("", s.authenticate)

	orders := api.Group("/orders")
	orders.GET("", s.listOrders, require(policy.OrderList))
	orders.POST("", s.createOrder, require(policy.OrderCreate))
	orders.GET("/:id", s.getOrder, require(policy.OrderGet))
	orders.GET("/client/:clientId", s.listOrdersByClient, require(policy.OrderListByClient))
	orders.PUT("/:id/status", s.updateOrderStatus, require(policy.OrderUpdateStatus))
	orders.DELETE("/:id", s.deleteOrder, require(policy.OrderDelete))

	packages := api.Group("/packages")
	packages.GET("", s.listPackages, require(policy.PackageList))
	packages.POST("", s.createPackage, require(policy.PackageCreate))
	packages.GET("/:id", s.getPackage, require(policy.PackageGet))
	packages.GET("/order/:orderId", s.listPackagesByOrder, require(policy.PackageListByOrder))
	packages.PUT("/:id", s.updatePackage, require(policy.PackageUpdate))
	packages.DELETE("/:id", s.deletePackage, require(policy.PackageDelete))

	routes := api.Group("/routes")
	routes.GET("", s.listRoutes, require(policy.RouteList))
	routes.POST("", s.createRoute, require(policy.RouteCreate))
	routes.GET("/:id", s.getRoute, require(policy.RouteGet))
	routes.GET("/vehicle/:vehicleId", s.listRoutesByVehicle, require(policy.RouteListByVehicle))
	routes.PUT("/:id", s.updateRoute, require(policy.RouteUpdate))
	routes.DELETE("/:id", s.deleteRoute, require(policy.RouteDelete))

	vehicles := api.Group("/vehicles")
	vehicles.GET("", s.listVehicles, require(policy.VehicleList))
	vehicles.POST("", s.createVehicle, require(policy.VehicleCreate))
	vehicles.GET("/:id", s.getVehicle, require(policy.VehicleGet))
	vehicles.GET("/license-plate/:plate", s.getVehicleByLicensePlate, require(policy.VehicleGetByLicensePlate))
	vehicles.PUT("/:id/assign-driver/:driverId", s.assignDriver, require(policy.VehicleAssignDriver))
	vehicles.PUT("/:id", s.updateVehicle, require(policy.VehicleUpdate))
	vehicles.DELETE("/:id", s.deleteVehicle, require(policy.VehicleDelete))

	warehouses := api.Group("/warehouses")
	warehouses.GET("", s.listWarehouses, require(policy.WarehouseList))
	warehouses.POST("", s.createWarehouse, require(policy.WarehouseCreate))
	warehouses.GET("/:id", s.getWarehouse, require(policy.WarehouseGet))
	warehouses.GET("/location/:location", s.getWarehouseByLocation, require(policy.WarehouseGetByLocation))
	warehouses.PUT("/:id", s.updateWarehouse, require(policy.WarehouseUpdate))
	warehouses.DELETE("/:id", s.deleteWarehouse, require(policy.WarehouseDelete))

	users := api.Group("/users")
	users.GET("", s.listUsers, require(policy.UserList))
	users.GET("/:id", s.getUser, require(policy.UserGet))
	users.PUT("/:id", s.updateProfile, require(policy.UserUpdateProfile))
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	httpadapter "waypoint/internal/adapters/in/http"
	"waypoint/internal/adapters/out/kafka"
	"waypoint/internal/adapters/out/postgres"
	"waypoint/internal/core/application/resolver"
	"waypoint/internal/core/application/services"
	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/application/usecases/queries"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/ports"
	"waypoint/internal/jobs"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/logger"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters and services for one process.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	closers    []func() error
	log        *logger.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, log *logger.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		log:        log,
	}

	if config.KafkaHost != "" {
		p := kafka.NewOrderChangedPublisher(config.KafkaHost, config.KafkaOrderChangedTopic)
		c.publisher = p
		c.closers = append(c.closers, p.Close)
	} else {
		log.Info().Msg("KAFKA_HOST not set, order change events are disabled")
		c.publisher = kafka.NopPublisher{}
	}

	return c
}

func (c *CompositionRoot) CreateOrderService() *services.OrderService {
	f := FuncOrderUoWFactory(func() services.OrderUoW { return c.uowFactory.Create() })
	return services.NewOrderService(f, resolver.New(), c.publisher, c.log)
}

func (c *CompositionRoot) CreateParcelService() *services.ParcelService {
	f := FuncParcelUoWFactory(func() services.ParcelUoW { return c.uowFactory.Create() })
	return services.NewParcelService(f, resolver.New(), c.log)
}

func (c *CompositionRoot) CreateRouteService() *services.RouteService {
	f := FuncRouteUoWFactory(func() services.RouteUoW { return c.uowFactory.Create() })
	return services.NewRouteService(f, resolver.New(), c.log)
}

func (c *CompositionRoot) CreateVehicleService() *services.VehicleService {
	f := FuncVehicleUoWFactory(func() services.VehicleUoW { return c.uowFactory.Create() })
	return services.NewVehicleService(f, resolver.New(), c.log)
}

func (c *CompositionRoot) CreateWarehouseService() *services.WarehouseService {
	f := FuncWarehouseUoWFactory(func() services.WarehouseUoW { return c.uowFactory.Create() })
	return services.NewWarehouseService(f, resolver.New(), c.log)
}

func (c *CompositionRoot) CreateUserService() *services.UserService {
	f := FuncUserUoWFactory(func() services.UserUoW { return c.uowFactory.Create() })
	return services.NewUserService(f, c.log)
}

func (c *CompositionRoot) CreateGetDanglingReferencesQueryHandler() queries.GetDanglingReferencesQueryHandler {
	return queries.NewGetDanglingReferencesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	audit := jobs.NewDanglingReferenceAuditJob(
		c.CreateGetDanglingReferencesQueryHandler(),
		c.config.AuditSchedule,
		c.log,
	)
	return jobs.NewJobManager(audit)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Services{
			Orders:     c.CreateOrderService(),
			Parcels:    c.CreateParcelService(),
			Routes:     c.CreateRouteService(),
			Vehicles:   c.CreateVehicleService(),
			Warehouses: c.CreateWarehouseService(),
			Users:      c.CreateUserService(),
		},
		httpadapter.AuthConfig{
			Secret:   c.config.JWTSecret,
			Issuer:   c.config.JWTIssuer,
			TokenTTL: c.config.JWTTokenTTL,
		},
		c.log,
	)
}

// EnsureBootstrapAdmin registers the configured admin account. An account
// that already exists under that email is left untouched.
func (c *CompositionRoot) EnsureBootstrapAdmin(ctx context.Context) error {
	if c.config.BootstrapAdminEmail == "" || c.config.BootstrapAdminPassword == "" {
		return nil
	}

	cmd, err := commands.NewRegisterUserCommand(
		c.config.BootstrapAdminEmail, "admin", c.config.BootstrapAdminPassword, user.Admin,
	)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	_, err = c.CreateUserService().Register(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return nil
	case err != nil:
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	c.log.Info().Str("email", c.config.BootstrapAdminEmail).Msg("bootstrap admin created")
	return nil
}

// Close releases adapters that hold connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn())
	}
	return errors.Join(errList...)
}

type FuncOrderUoWFactory func() services.OrderUoW

func (f FuncOrderUoWFactory) Create() services.OrderUoW {
	return f()
}

type FuncParcelUoWFactory func() services.ParcelUoW

func (f FuncParcelUoWFactory) Create() services.ParcelUoW {
	return f()
}

type FuncRouteUoWFactory func() services.RouteUoW

func (f FuncRouteUoWFactory) Create() services.RouteUoW {
	return f()
}

type FuncVehicleUoWFactory func() services.VehicleUoW

func (f FuncVehicleUoWFactory) Create() services.VehicleUoW {
	return f()
}

type FuncWarehouseUoWFactory func() services.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() services.WarehouseUoW {
	return f()
}

type FuncUserUoWFactory func() services.UserUoW

func (f FuncUserUoWFactory) Create() services.UserUoW {
	return f()
}

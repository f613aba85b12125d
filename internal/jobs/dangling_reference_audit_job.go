package jobs

import (
	"context"
	"time"

	"waypoint/internal/core/application/usecases/queries"
	"waypoint/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule is used when no schedule is configured.
const DefaultAuditSchedule = "@every 10m"

const auditTimeout = 30 * time.Second

// DanglingReferencesCounter runs the dangling reference query.
type DanglingReferencesCounter interface {
	Handle(ctx context.Context, query queries.GetDanglingReferencesQuery) (queries.GetDanglingReferencesQueryResponse, error)
}

// DanglingReferenceAuditJob periodically reports orphaned references.
type DanglingReferenceAuditJob struct {
	handler  DanglingReferencesCounter
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

func NewDanglingReferenceAuditJob(handler DanglingReferencesCounter, schedule string, log *logger.Logger) *DanglingReferenceAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &DanglingReferenceAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   log.Named("dangling_reference_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the scheduler.
func (j *DanglingReferenceAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		j.run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("dangling reference audit job started")
	return nil
}

// Stop halts the scheduler and waits for a running audit to finish.
func (j *DanglingReferenceAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("dangling reference audit job stopped")
}

func (j *DanglingReferenceAuditJob) run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, queries.NewGetDanglingReferencesQuery())
	if err != nil {
		j.logger.Error().Err(err).Msg("dangling reference audit failed")
		return
	}

	if result.Total() == 0 {
		j.logger.Debug().Msg("no dangling references")
		return
	}

	j.logger.Warn().
		Int64("ordersWithoutClient", result.OrdersWithoutClient).
		Int64("packagesWithoutOrder", result.PackagesWithoutOrder).
		Int64("routesWithoutVehicle", result.RoutesWithoutVehicle).
		Int64("vehiclesWithoutDriver", result.VehiclesWithoutDriver).
		Int64("warehousesWithoutManager", result.WarehousesWithoutManager).
		Msg("dangling references found")
}

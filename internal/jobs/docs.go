// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs run on github.com/robfig/cron/v3 and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.NewDanglingReferenceAuditJob(handler, "@every 10m", log))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DanglingReferenceAuditJob counts rows whose reference points at a deleted
// parent and logs a warning when any are found. Deletes never cascade, so
// the audit is the only place orphans become visible.
//
// Schedules accept the standard five-field cron syntax and descriptors such
// as "@hourly" or "@every 10m".
package jobs

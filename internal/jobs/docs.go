// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// 1. DriverRankReportJob - builds the global driver rank report and logs the leaderboard
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the job keeps its schedule. An invalid
// schedule makes StartAll fail.
package jobs

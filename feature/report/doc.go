// Package report runs validations on demand and archives their reports.
//
// Routes:
//
//	GET /report/{validator}   run post, taxonomy, user or all
//	GET /reports              list archived reports
//	GET /reports/{key}        fetch one archived report
//
// Concurrent requests for the same validator share one run. With
// server.report_cache_seconds set, finished documents are reused until they
// expire or a request passes fresh=true.
//
// Archived reports are JSON documents stored at
// <bucket>/<report_prefix>/<name>-<unix>.json.
package report

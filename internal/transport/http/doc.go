// Package http implements the HTTP handlers of the orgpulse API. Handlers
// are thin: they parse and validate the request, call the service layer
// and render the result.
//
// # Routes
//
// Mounted under /api/v1 by internal/app:
//
//	GET /departments                       fixed departments and member counts
//	GET /attendance/histogram?department=  time-of-day histogram
//	GET /attendance/heatmap                worked-hours heatmap
//	GET /social/graph?department=          department communication graph
//	GET /dashboard                         everything above in one payload
//	GET /export/{chart}?department=&format=csv|xlsx
//
// JSON responses use the envelope {"status":"success","data":...}.
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details:
//
//	{
//	    "type": "/errors/department/not-found",
//	    "title": "Department Not Found",
//	    "status": 404,
//	    "detail": "department not found: \"Ops\"",
//	    "instance": "/api/v1/social/graph",
//	    "trace_id": "..."
//	}
//
// ProblemMappings lists the service errors the ErrorHandler translates.
package http

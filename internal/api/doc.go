// Package api exposes the analysis pipeline over HTTP.
//
// Routes:
//
//	GET  /health                  liveness check
//	GET  /metrics                 Prometheus exposition
//	GET  /api/rules               rule catalogue
//	POST /api/analyze             analyze a document
//	POST /api/analyze/transcript  analyze a call transcript
//
// Request bodies carry the document text plus optional provider overrides;
// server config supplies the defaults. Analysis failures map to 502, auth
// failures to 401.
package api

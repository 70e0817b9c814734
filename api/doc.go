// Package api provides the HTTP API layer for GistFM.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: session, bookmark, playback, and catalog handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
//
// The JSON spec is served at /openapi.json and interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//	api.Register(humaAPI,
//	    handlers.NewSessionHandler(orchestrator),
//	    handlers.NewPlaybackHandler(controller),
//	)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 409,
//	    "title": "Conflict",
//	    "detail": "another operation is in progress"
//	}
//
// Operations rejected in the current state return 409. Failures inside a pipeline
// (extraction, scriptwriting, synthesis) are not HTTP errors: they move the session
// to the ERROR state and the response body carries the user-facing message.
package api

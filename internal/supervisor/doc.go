// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

/*
Package supervisor runs the long-lived parts of the service under a suture v4
supervisor tree.

	RootSupervisor ("coursemate")
	├── ArtifactsSupervisor ("artifacts-layer")
	│   └── ArtifactRefreshService (if ARTIFACT_REFRESH_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The layers restart independently: a refresh loop that keeps failing backs off
without taking the HTTP server down. Supervisor events are logged through
sutureslog into the zerolog-backed slog handler.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx) // returns when ctx is canceled

Service wrappers live in the services subpackage.
*/
package supervisor

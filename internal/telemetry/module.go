package telemetry

import "go.uber.org/fx"

// Module provides the metrics set to the fx container.
var Module = fx.Provide(New)

package config

import "go.uber.org/fx"

// Module wires application and invoicing configuration.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewInvoicingConfigHolder,
	),
)

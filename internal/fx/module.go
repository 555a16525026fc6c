package fx

import "go.uber.org/fx"

// AppModule assembles the full application graph.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)

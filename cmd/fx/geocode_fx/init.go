package geocode_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	provideGeocodeService)

func provideGeocodeService(client infra.GeocodeClientInterface) services.GeocodeServiceInterface {
	return services.NewGeocodeService(client)
}

package wizard_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/planner"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	provideWizardService)

func provideWizardService(store planner.DraftStore) services.WizardServiceInterface {
	return services.NewWizardService(store)
}

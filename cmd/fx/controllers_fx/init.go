package controllers_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewPhotoController),
	fx.Provide(controllers.NewGeocodeController))

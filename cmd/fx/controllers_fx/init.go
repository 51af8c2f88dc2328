package controllers_fx

import (
	"go.uber.org/fx"
	"murmur/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDigController),
	fx.Provide(controllers.NewQuoteController),
	fx.Provide(controllers.NewJournalController),
	fx.Provide(controllers.NewMurmurationController),
	fx.Provide(controllers.NewBillingController))

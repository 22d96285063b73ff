package trip_fx

import (
	"os"

	"go.uber.org/fx"

	"tripway/internal/api/controllers"
	"tripway/internal/infra"
	"tripway/internal/services"
)

var Module = fx.Provide(
	ProvideSubmissionService,
	ProvideNegotiationService,
	ProvideAggregatorService,
	ProvideTripController,
)

func ProvideSubmissionService(planner infra.PlannerAPI) services.SubmissionServiceInterface {
	return services.NewSubmissionService(planner)
}

func ProvideNegotiationService(
	planner infra.PlannerAPI,
	submission services.SubmissionServiceInterface,
	sessions services.SessionStore,
) services.NegotiationServiceInterface {
	return services.NewNegotiationService(planner, submission, sessions)
}

func ProvideAggregatorService() services.AggregatorServiceInterface {
	return services.NewAggregatorService(os.Getenv("PDF_FONT_PATH"))
}

func ProvideTripController(
	negotiation services.NegotiationServiceInterface,
	submission services.SubmissionServiceInterface,
	aggregator services.AggregatorServiceInterface,
	planner infra.PlannerAPI,
) *controllers.TripController {
	return controllers.NewTripController(negotiation, submission, aggregator, planner)
}

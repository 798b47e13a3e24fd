package controller

import (
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newQuoteRoutesHandler(api, services, validate)
	newComparisonRoutesHandler(api, services, validate)
}

package controller

import (
	"net/http"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type comparisonRoutesHandler struct {
	tournamentService service.Tournament
	validate          *validator.Validate
}

func newComparisonRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *comparisonRoutesHandler {
	h := &comparisonRoutesHandler{tournamentService: services.Tournament, validate: v}
	outer.GET("/jobs/:jobId/compare/start", h.StartComparison)
	outer.POST("/jobs/:jobId/compare/next", h.NextCandidate)
	outer.PUT("/quotes/:quoteId/compare/eliminate", h.Eliminate)
	outer.PUT("/jobs/:jobId/compare/accept", h.AcceptFinal)

	return h
}

type startComparisonInput struct {
	JobId string `param:"jobId" validate:"required,max=100"`
	Email string `query:"email" validate:"required,email"`
}

// /jobs/:jobId/compare/start
func (h *comparisonRoutesHandler) StartComparison(c echo.Context) error {
	var input startComparisonInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	round, err := h.tournamentService.StartComparison(c.Request().Context(), input.JobId, input.Email)
	if err == nil {
		if e := c.JSON(http.StatusOK, round); e != nil {
			return e
		}

		return nil
	}

	return h.respondComparisonError(c, err)
}

type nextCandidateInput struct {
	JobId              string   `param:"jobId" validate:"required,max=100"`
	Email              string   `json:"email" validate:"required,email"`
	RemainingTradieIds []string `json:"remainingTradieIds" validate:"dive,max=100"`
	RemainingQuoteIds  []string `json:"remainingQuoteIds" validate:"dive,max=100"`
	EliminatedQuoteId  string   `json:"eliminatedQuoteId" validate:"required,max=100"`
	Side               string   `json:"side" validate:"required,oneof=left right top bottom"`
}

// /jobs/:jobId/compare/next
func (h *comparisonRoutesHandler) NextCandidate(c echo.Context) error {
	var input nextCandidateInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	next, err := h.tournamentService.NextCandidate(c.Request().Context(), input.JobId, input.Email,
		input.RemainingTradieIds, input.RemainingQuoteIds, input.EliminatedQuoteId, entity.Side(input.Side))
	if err == nil {
		if e := c.JSON(http.StatusOK, next); e != nil {
			return e
		}

		return nil
	}

	return h.respondComparisonError(c, err)
}

type eliminateInput struct {
	QuoteId string `param:"quoteId" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Side    string `json:"side" validate:"required"`
}

// /quotes/:quoteId/compare/eliminate
func (h *comparisonRoutesHandler) Eliminate(c echo.Context) error {
	var input eliminateInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	remaining, err := h.tournamentService.Eliminate(c.Request().Context(), input.QuoteId, input.Email, entity.Side(input.Side))
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]int{"remainingPending": remaining}); e != nil {
			return e
		}

		return nil
	}

	return h.respondComparisonError(c, err)
}

type acceptFinalInput struct {
	JobId string `param:"jobId" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// /jobs/:jobId/compare/accept
func (h *comparisonRoutesHandler) AcceptFinal(c echo.Context) error {
	var input acceptFinalInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	quote, err := h.tournamentService.AcceptFinal(c.Request().Context(), input.JobId, input.Email)
	if err == nil {
		if e := c.JSON(http.StatusOK, quote); e != nil {
			return e
		}

		return nil
	}

	return h.respondComparisonError(c, err)
}

func (h *comparisonRoutesHandler) respondComparisonError(c echo.Context, err error) error {
	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrQuoteNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no quote with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given email"}); e != nil {
			return e
		}
	case service.ErrNotJobOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You are not allowed to perform this action"}); e != nil {
			return e
		}
	case service.ErrInsufficientCandidates:
		if e := c.JSON(http.StatusConflict, errorResponse{"Fewer than two tradies have pending quotes on this job"}); e != nil {
			return e
		}
	case service.ErrNoCandidate:
		if e := c.JSON(http.StatusConflict, errorResponse{"No pending quote left to accept"}); e != nil {
			return e
		}
	case service.ErrInvalidSide:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Side must be one of left, right, top, bottom"}); e != nil {
			return e
		}
	case service.ErrMalformedQuote:
		if e := c.JSON(http.StatusUnprocessableEntity, errorResponse{"A quote in this comparison has unreadable price or duration"}); e != nil {
			return e
		}
	case service.ErrStaleState:
		if e := c.JSON(http.StatusConflict, errorResponse{"Quote was already resolved, refresh and try again"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

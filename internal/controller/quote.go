package controller

import (
	"net/http"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type quoteRoutesHandler struct {
	quoteService service.Quote
	validate     *validator.Validate
}

func newQuoteRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *quoteRoutesHandler {
	h := &quoteRoutesHandler{quoteService: services.Quote, validate: v}
	outer.POST("/quotes/new", h.PostQuote)
	outer.GET("/quotes/my", h.GetUserQuotes)
	outer.GET("/quotes/:jobId/list", h.GetJobQuotes)
	outer.GET("/quotes/duplicate", h.CheckDuplicate)

	outer.PUT("/quotes/:quoteId/accept", h.AcceptQuote)
	outer.PUT("/quotes/:quoteId/reject", h.RejectQuote)
	outer.PUT("/quotes/:quoteId/rated", h.MarkRated)
	outer.DELETE("/quotes/:quoteId", h.RetractQuote)

	return h
}

type postQuoteInput struct {
	Price       string `json:"price" validate:"required,max=20"`
	WorkTime    string `json:"workTime" validate:"required,max=10"`
	Email       string `json:"email" validate:"max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
	Description string `json:"description" validate:"required,max=255"`
	JobId       string `json:"jobId" validate:"required,max=100"`
	UserId      string `json:"userId" validate:"required,max=100"`
}

// /quotes/new
func (h *quoteRoutesHandler) PostQuote(c echo.Context) error {
	var input postQuoteInput
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

	model := &entity.CreateQuoteInput{
		Price: input.Price, WorkTime: input.WorkTime, Email: input.Email,
		PhoneNumber: input.PhoneNumber, Description: input.Description,
		JobId: input.JobId, UserId: input.UserId,
	}

	quote, err := h.quoteService.SubmitQuote(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, quote); e != nil {
			return e
		}

		return nil
	}

	if validationErr, ok := asValidationError(err); ok {
		if e := c.JSON(http.StatusBadRequest, newValidationResponse(validationErr)); e != nil {
			return e
		}

		return err
	}

	switch err {
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	case service.ErrJobNotPosted:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Job is not open for quotes"}); e != nil {
			return e
		}
	case service.ErrDuplicateQuote:
		if e := c.JSON(http.StatusConflict, errorResponse{"You already have a pending quote on this job"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getUserQuotesInput struct {
	Email    string `query:"email" validate:"required,email"`
	Status   string `query:"status" validate:"max=20"`
	Page     int32  `query:"page" validate:"gte=0"`
	PageSize int32  `query:"pageSize" validate:"gte=0,lte=50"`
}

func newGetUserQuotesInput() getUserQuotesInput {
	return getUserQuotesInput{Page: defaultPage, PageSize: defaultPageSize}
}

// /quotes/my
func (h *quoteRoutesHandler) GetUserQuotes(c echo.Context) error {
	var input = newGetUserQuotesInput()
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

	quotes, err := h.quoteService.GetUserQuotes(c.Request().Context(), input.Email, input.Status, int(input.Page), int(input.PageSize))
	if err == nil {
		if e := c.JSON(http.StatusOK, quotes); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given email"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getJobQuotesInput struct {
	JobId    string `param:"jobId" validate:"required,max=100"`
	Email    string `query:"email" validate:"required,email"`
	Page     int32  `query:"page" validate:"gte=0"`
	PageSize int32  `query:"pageSize" validate:"gte=0,lte=50"`
}

func newGetJobQuotesInput() getJobQuotesInput {
	return getJobQuotesInput{Page: defaultPage, PageSize: defaultPageSize}
}

// /quotes/:jobId/list
func (h *quoteRoutesHandler) GetJobQuotes(c echo.Context) error {
	var input = newGetJobQuotesInput()
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

	quotes, err := h.quoteService.GetJobQuotes(c.Request().Context(), input.JobId, input.Email, int(input.Page), int(input.PageSize))
	if err == nil {
		if e := c.JSON(http.StatusOK, quotes); e != nil {
			return e
		}

		return nil
	}

	return h.respondQuoteError(c, err)
}

type checkDuplicateInput struct {
	UserId string `query:"userId" validate:"required,max=100"`
	JobId  string `query:"jobId" validate:"required,max=100"`
}

// /quotes/duplicate
func (h *quoteRoutesHandler) CheckDuplicate(c echo.Context) error {
	var input checkDuplicateInput
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

	duplicate, err := h.quoteService.CheckDuplicate(c.Request().Context(), input.UserId, input.JobId)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"duplicate": duplicate}); e != nil {
		return e
	}

	return nil
}

type acceptQuoteInput struct {
	QuoteId          string `param:"quoteId" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email"`
	RetractListing   bool   `json:"retractListing"`
	ConvertToExpense bool   `json:"convertToExpense"`
}

// /quotes/:quoteId/accept
func (h *quoteRoutesHandler) AcceptQuote(c echo.Context) error {
	var input acceptQuoteInput
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

	quote, err := h.quoteService.AcceptQuote(c.Request().Context(), input.QuoteId, input.Email, input.RetractListing, input.ConvertToExpense)
	if err == nil {
		if e := c.JSON(http.StatusOK, quote); e != nil {
			return e
		}

		return nil
	}

	return h.respondQuoteError(c, err)
}

type rejectQuoteInput struct {
	QuoteId string `param:"quoteId" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
}

// /quotes/:quoteId/reject
func (h *quoteRoutesHandler) RejectQuote(c echo.Context) error {
	var input rejectQuoteInput
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

	remaining, err := h.quoteService.RejectQuote(c.Request().Context(), input.QuoteId, input.Email)
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]int{"remainingPending": remaining}); e != nil {
			return e
		}

		return nil
	}

	return h.respondQuoteError(c, err)
}

type markRatedInput struct {
	QuoteId string `param:"quoteId" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
}

// /quotes/:quoteId/rated
func (h *quoteRoutesHandler) MarkRated(c echo.Context) error {
	var input markRatedInput
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

	quote, err := h.quoteService.MarkRated(c.Request().Context(), input.QuoteId, input.Email)
	if err == nil {
		if e := c.JSON(http.StatusOK, quote); e != nil {
			return e
		}

		return nil
	}

	return h.respondQuoteError(c, err)
}

type retractQuoteInput struct {
	QuoteId string `param:"quoteId" validate:"required,max=100"`
	Email   string `query:"email" validate:"required,email"`
}

// /quotes/:quoteId
func (h *quoteRoutesHandler) RetractQuote(c echo.Context) error {
	var input retractQuoteInput
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

	err := h.quoteService.RetractQuote(c.Request().Context(), input.QuoteId, input.Email)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	return h.respondQuoteError(c, err)
}

func (h *quoteRoutesHandler) respondQuoteError(c echo.Context, err error) error {
	switch err {
	case service.ErrQuoteNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no quote with given id"}); e != nil {
			return e
		}
	case service.ErrJobNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no job with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given email"}); e != nil {
			return e
		}
	case service.ErrNotJobOwner, service.ErrNotQuoteSender:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You are not allowed to perform this action"}); e != nil {
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

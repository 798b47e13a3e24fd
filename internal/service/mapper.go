package service

import (
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
)

func mapQuote(q *entity.Quote) *entity.QuoteOutputModel {
	return &entity.QuoteOutputModel{
		Id:          q.Id.String(),
		Price:       q.Price,
		WorkTime:    q.WorkTime,
		Email:       q.Email,
		PhoneNumber: q.PhoneNumber,
		Description: q.Description,
		Status:      string(q.Status),
		Rated:       q.Rated,
		JobId:       q.JobId.String(),
		UserId:      q.UserId.String(),
		CreatedAt:   q.CreatedAt,
	}
}

func mapQuotes(quotes []entity.Quote) []entity.QuoteOutputModel {
	s := make([]entity.QuoteOutputModel, 0)
	for _, quote := range quotes {
		s = append(s, *mapQuote(&quote))
	}

	return s
}

func mapUser(u *entity.User) entity.UserOutputModel {
	return entity.UserOutputModel{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

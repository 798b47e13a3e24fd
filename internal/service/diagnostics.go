package service

import "github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"

type DiagnosticsService struct {
	diagnosticsRepo repo.Diagnostics
}

func NewDiagnosticsService(repos *repo.Repositories) *DiagnosticsService {
	return &DiagnosticsService{repos.Diagnostics}
}

func (s *DiagnosticsService) Ping() error {
	if err := s.diagnosticsRepo.Ping(); err != nil {
		return err
	}

	return nil
}

package query

import (
	"context"
	"log"
	"time"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Execute runs the statement verbatim and shapes the result by statement
// classification. SELECT statements return columns and rows; everything else
// returns the fixed acknowledgment.
func (s *Service) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	start := time.Now()

	if IsSelect(req.Query) {
		cols, data, err := s.repo.Query(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		if cols == nil {
			cols = []string{}
		}
		log.Printf("select executed: %d columns, %d rows, %s", len(cols), len(data), time.Since(start))
		return &ExecuteResponse{
			Status:  "success",
			Columns: cols,
			Data:    data,
		}, nil
	}

	if err := s.repo.Exec(ctx, req.Query); err != nil {
		return nil, err
	}
	log.Printf("command executed: %s", time.Since(start))
	return &ExecuteResponse{
		Status:  "success",
		Message: "Command executed successfully!",
		Columns: []string{},
		Data:    [][]any{},
	}, nil
}

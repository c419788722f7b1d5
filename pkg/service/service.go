package service

import (
	"context"
	"errors"
	"sync"

	"github.com/stockchange/pkg/models"
)

// ErrTimeout is returned when the context expires before the last job is done.
var ErrTimeout = errors.New("pipeline took too long")

type Service interface {
	Execute(ctx context.Context, request *models.ExecuteRequest) (response models.ExecuteResponse, err error)
}

type service struct {
	mu   sync.Mutex
	Jobs []models.Job
}

// Execute chains the jobs with channels and waits for the last one. The
// output of the last job is a models.Summary or an error. Runs never overlap.
func (s *service) Execute(ctx context.Context, request *models.ExecuteRequest) (response models.ExecuteResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := make(chan interface{})
	close(input)
	for i := range s.Jobs {
		output := make(chan interface{})
		go func(i int, input, output chan interface{}) {
			s.Jobs[i](runCtx, input, output)
			close(output)
		}(i, input, output)

		input = output
	}

	for {
		select {
		case <-ctx.Done():
			cancel()
			for range input {
			}
			err = ErrTimeout
			return
		case val, ok := <-input:
			if !ok {
				return
			}
			switch v := val.(type) {
			case models.Summary:
				response.Data = v
			case error:
				if err == nil {
					err = v
				}
			}
		}
	}
}

func NewService(jobs []models.Job) Service {
	return &service{Jobs: jobs}
}

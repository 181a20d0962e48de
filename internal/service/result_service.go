package service

import (
	"encoding/json"
	"fire_planner_backend/internal/model"
	"fire_planner_backend/internal/repository"
	"fire_planner_backend/pkg/logger"

	"go.uber.org/zap"
)

// ResultService persists completed analyses and lists them back per user.
type ResultService struct {
	repo *repository.AnalysisRepository
}

func NewResultService(repo *repository.AnalysisRepository) *ResultService {
	return &ResultService{repo: repo}
}

func (s *ResultService) Save(userID string, profile map[string]string, result *AnalysisResult) (*model.Analysis, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	a := &model.Analysis{
		UserID:           userID,
		ProfileData:      profileJSON,
		Career:           result.Career,
		ROI:              result.ROI,
		Fire:             result.Fire,
		SideHustle:       result.SideHustle,
		InterestsRoadmap: result.InterestsRoadmap,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// SaveDetached persists in a detached goroutine with a logging-only failure
// channel. The analysis is the product; a lost database write must never
// block delivering it, so the submission path does not wait on this.
func (s *ResultService) SaveDetached(userID string, profile map[string]string, result *AnalysisResult) {
	go func() {
		if _, err := s.Save(userID, profile, result); err != nil {
			logger.Log.Error("failed to persist analysis",
				zap.String("userId", userID),
				zap.Error(err),
			)
		}
	}()
}

func (s *ResultService) ListForUser(userID string) ([]model.Analysis, error) {
	return s.repo.ListByUser(userID)
}

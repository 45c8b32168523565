package service

import (
	"math"
	"sort"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/google/uuid"
)

const dateFormat = "2006-01-02"

// TrendPoint is one aggregated score for a (calendar date, team) pair
type TrendPoint struct {
	Date     string    `json:"date"`
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
	Score    int       `json:"score"`
}

// ChartRow is a pivoted trend row for charting: the date plus one score
// field per team that logged that day. Teams without logs on a date have no
// field at all, which is how "no data" stays distinct from a zero score.
type ChartRow map[string]interface{}

// TrendsResponse carries both the flat points and the pivoted chart rows
type TrendsResponse struct {
	Points []TrendPoint `json:"points"`
	Chart  []ChartRow   `json:"chart"`
}

// TrendService derives daily per-team sentiment trends from the log
type TrendService struct {
	logRepo  repository.SentimentLogRepositoryInterface
	teamRepo repository.TeamRepositoryInterface
	cfg      *config.Config
}

// NewTrendService creates a new trend service
func NewTrendService(logRepo repository.SentimentLogRepositoryInterface, teamRepo repository.TeamRepositoryInterface, cfg *config.Config) *TrendService {
	return &TrendService{
		logRepo:  logRepo,
		teamRepo: teamRepo,
		cfg:      cfg,
	}
}

// GetTrends aggregates sentiment logs into one point per (date, team).
// A nil teamID covers all teams.
func (s *TrendService) GetTrends(teamID *uuid.UUID) (*TrendsResponse, error) {
	teams, err := s.teamRepo.GetAll()
	if err != nil {
		return nil, apperrors.NewStorageError("list teams", err)
	}
	teamNames := make(map[uuid.UUID]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	logs, err := s.logRepo.List(teamID)
	if err != nil {
		return nil, apperrors.NewStorageError("list sentiment logs", err)
	}

	points := aggregateTrends(logs, teamNames, s.cfg.ScoreFor)
	return &TrendsResponse{
		Points: points,
		Chart:  pivotChart(points),
	}, nil
}

// aggregateTrends reduces an ordered log stream to one mean score per
// (date, team), sorted ascending by date then team name. It is a pure
// function: same logs in, same points out.
func aggregateTrends(logs []models.SentimentLog, teamNames map[uuid.UUID]string, score func(models.Sentiment) int) []TrendPoint {
	type bucket struct {
		date   string
		teamID uuid.UUID
		sum    int
		count  int
	}
	type key struct {
		date   string
		teamID uuid.UUID
	}

	buckets := make(map[key]*bucket)
	for _, log := range logs {
		k := key{date: log.CreatedAt.Format(dateFormat), teamID: log.TeamID}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{date: k.date, teamID: k.teamID}
			buckets[k] = b
		}
		b.sum += score(log.Sentiment)
		b.count++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, TrendPoint{
			Date:     b.date,
			TeamID:   b.teamID,
			TeamName: teamNames[b.teamID],
			Score:    int(math.Round(float64(b.sum) / float64(b.count))),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].TeamName < points[j].TeamName
	})

	return points
}

// pivotChart groups points into one row per date, keyed "date" plus a
// field per team name present that day
func pivotChart(points []TrendPoint) []ChartRow {
	rows := make([]ChartRow, 0)
	index := make(map[string]ChartRow)
	for _, point := range points {
		row, ok := index[point.Date]
		if !ok {
			row = ChartRow{"date": point.Date}
			index[point.Date] = row
			rows = append(rows, row)
		}
		row[point.TeamName] = point.Score
	}
	return rows
}

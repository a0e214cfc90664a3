package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/stats"

	"github.com/google/uuid"
)

func (s *IntegrationTestSuite) doRequest(method, path, token string, body []byte) (int, []byte) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, serverEndpoint+path, reader)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) addExercise(name string, group repo.MuscleGroup, createdBy string) repo.Exercise {
	ex, err := s.store.AddExercise(context.Background(), repo.Exercise{
		Name:        name,
		MuscleGroup: group,
		CreatedBy:   createdBy,
		IsDefault:   createdBy == "",
	})
	s.Require().NoError(err)
	return *ex
}

func (s *IntegrationTestSuite) addSession(ownerID string, start time.Time, status repo.SessionStatus, exercises ...repo.SessionExercise) {
	session := repo.TrainingSession{
		OwnerID:   ownerID,
		Name:      "session " + start.Format(time.DateOnly),
		StartDate: start,
		Status:    status,
		Exercises: exercises,
	}
	if status == repo.SessionStatusClosed {
		end := start.Add(time.Hour)
		session.EndDate = &end
	}
	_, err := s.store.AddSession(context.Background(), session)
	s.Require().NoError(err)
}

func sets(exerciseID string, repsAndWeights ...float64) repo.SessionExercise {
	se := repo.SessionExercise{ExerciseID: exerciseID}
	for i := 0; i+1 < len(repsAndWeights); i += 2 {
		se.Sets = append(se.Sets, repo.SetRecord{Reps: int(repsAndWeights[i]), Weight: repsAndWeights[i+1]})
	}
	return se
}

func (s *IntegrationTestSuite) TestStatistics_Unauthorized() {
	status, _ := s.doRequest(http.MethodGet, "/statistics/summary", "", nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest(http.MethodGet, "/statistics/summary", "not-a-session", nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestStatistics_Summary() {
	userID := uuid.NewString()
	token := s.login(userID, false)
	bench := s.addExercise("Bench Press", repo.MuscleGroupChest, "")

	s.addSession(userID, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), repo.SessionStatusClosed, sets(bench.ID, 10, 100, 8, 100))
	s.addSession(userID, time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC), repo.SessionStatusClosed, sets(bench.ID, 5, 120))
	s.addSession(userID, time.Date(2024, 1, 25, 9, 0, 0, 0, time.UTC), repo.SessionStatusOpen, sets(bench.ID, 10, 200))
	// someone else's session in the same window
	s.addSession(uuid.NewString(), time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC), repo.SessionStatusClosed, sets(bench.ID, 10, 50))

	status, body := s.doRequest(http.MethodGet, "/statistics/summary?startDate=2024-01-01&endDate=2024-01-31", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var summary stats.Summary
	s.Require().NoError(json.Unmarshal(body, &summary))
	s.Equal(2, summary.TotalSessions)
	s.Equal(23, summary.TotalReps)
	s.InDelta(2400.0, summary.TotalVolume, 1e-9)
	s.Equal(0, summary.SessionsThisMonth)

	status, body = s.doRequest(http.MethodGet, "/statistics/summary?startDate=2024-01-15", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Require().NoError(json.Unmarshal(body, &summary))
	s.Equal(1, summary.TotalSessions)
	s.InDelta(600.0, summary.TotalVolume, 1e-9)

	status, _ = s.doRequest(http.MethodGet, "/statistics/summary?startDate=15.01.2024", token, nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestStatistics_MuscleDistribution() {
	userID := uuid.NewString()
	token := s.login(userID, false)
	bench := s.addExercise("Bench Press", repo.MuscleGroupChest, "")
	row := s.addExercise("Barbell Row", repo.MuscleGroupBack, "")
	curl := s.addExercise("Cable Curl", repo.MuscleGroupBiceps, userID)

	day := time.Date(2024, 2, 5, 18, 0, 0, 0, time.UTC)
	s.addSession(userID, day, repo.SessionStatusClosed,
		sets(bench.ID, 10, 60, 10, 60, 8, 70),
		sets(row.ID, 10, 50),
		sets(curl.ID, 12, 20),
		// dangling reference, not counted anywhere
		sets(uuid.NewString(), 10, 10),
	)

	status, body := s.doRequest(http.MethodGet, "/statistics/muscle-distribution", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var shares []stats.MuscleShare
	s.Require().NoError(json.Unmarshal(body, &shares))
	s.Require().Len(shares, 3)
	s.Equal(repo.MuscleGroupChest, shares[0].MuscleGroup)
	s.Equal(3, shares[0].SetCount)
	s.InDelta(60.0, shares[0].Percentage, 1e-9)
	// ties sorted by muscle group name
	s.Equal(repo.MuscleGroupBack, shares[1].MuscleGroup)
	s.Equal(repo.MuscleGroupBiceps, shares[2].MuscleGroup)
	s.InDelta(20.0, shares[2].Percentage, 1e-9)
}

func (s *IntegrationTestSuite) TestStatistics_ExerciseProgress() {
	userID := uuid.NewString()
	token := s.login(userID, false)
	squat := s.addExercise("Squat", repo.MuscleGroupQuadriceps, "")
	foreign := s.addExercise("Secret Lift", repo.MuscleGroupGlutes, uuid.NewString())

	first := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 8, 7, 0, 0, 0, time.UTC)
	s.addSession(userID, second, repo.SessionStatusClosed, sets(squat.ID, 5, 110, 3, 120))
	s.addSession(userID, first, repo.SessionStatusClosed, sets(squat.ID, 5, 100))

	status, body := s.doRequest(http.MethodGet, "/statistics/progress/"+squat.ID, token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var points []stats.ProgressPoint
	s.Require().NoError(json.Unmarshal(body, &points))
	s.Require().Len(points, 2)
	s.True(points[0].Date.Equal(first))
	s.InDelta(100.0, points[0].MaxWeight, 1e-9)
	s.InDelta(500.0, points[0].Volume, 1e-9)
	s.InDelta(116.67, points[0].OneRepMax, 1e-9)
	s.True(points[1].Date.Equal(second))
	s.InDelta(120.0, points[1].MaxWeight, 1e-9)
	s.InDelta(910.0, points[1].Volume, 1e-9)
	s.InDelta(132.0, points[1].OneRepMax, 1e-9)

	status, _ = s.doRequest(http.MethodGet, "/statistics/progress/"+uuid.NewString(), token, nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.doRequest(http.MethodGet, "/statistics/progress/"+foreign.ID, token, nil)
	s.Equal(http.StatusForbidden, status)

	adminToken := s.login("admin-"+uuid.NewString(), true)
	status, body = s.doRequest(http.MethodGet, "/statistics/progress/"+squat.ID+"/"+userID, adminToken, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Require().NoError(json.Unmarshal(body, &points))
	s.Len(points, 2)
}

func (s *IntegrationTestSuite) TestStatistics_BodyMetrics() {
	userID := uuid.NewString()
	token := s.login(userID, false)

	status, body := s.doRequest(http.MethodPost, "/statistics/metrics", token, []byte(`{"weight": 82.4, "bodyFat": 17.5}`))
	s.Require().Equal(http.StatusCreated, status, string(body))

	var added repo.BodyMetric
	s.Require().NoError(json.Unmarshal(body, &added))
	s.NotEmpty(added.ID)
	s.Equal(userID, added.OwnerID)
	s.Nil(added.Height)

	status, body = s.doRequest(http.MethodPost, "/statistics/metrics", token, []byte(`{"weight": 82.9}`))
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, _ = s.doRequest(http.MethodPost, "/statistics/metrics", token, []byte(`{"weight": -1}`))
	s.Equal(http.StatusBadRequest, status)
	status, _ = s.doRequest(http.MethodPost, "/statistics/metrics", token, []byte(`{"mood": "great"}`))
	s.Equal(http.StatusBadRequest, status)

	status, body = s.doRequest(http.MethodGet, "/statistics/metrics", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var list []repo.BodyMetric
	s.Require().NoError(json.Unmarshal(body, &list))
	s.Require().Len(list, 2)
	s.Equal(added.ID, list[0].ID)
	s.InDelta(82.9, *list[1].Weight, 1e-9)
	s.False(list[1].MeasuredAt.Before(list[0].MeasuredAt))

	var count int
	s.Require().NoError(s.DB.QueryRow("SELECT count(*) FROM body_metric WHERE owner_id = $1", userID).Scan(&count))
	s.Equal(2, count)
}

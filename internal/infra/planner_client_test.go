package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/utils"
)

func TestParseRequestPostsUserInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/request/parse-request", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload request_models.ParseRequestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "去成都玩四天", payload.UserInput)

		json.NewEncoder(w).Encode(response_models.ParseRequestResponse{
			Success:       true,
			Status:        response_models.ParseStatusIncomplete,
			MissingFields: []string{"start_date"},
			Suggestions:   "请告诉我出发日期",
		})
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	envelope, err := client.ParseRequest(context.Background(), "去成都玩四天")

	require.NoError(t, err)
	assert.Equal(t, response_models.ParseStatusIncomplete, envelope.Status)
	assert.Equal(t, []string{"start_date"}, envelope.MissingFields)
	assert.Equal(t, "请告诉我出发日期", envelope.Suggestions)
}

func TestParseRequestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	_, err := client.ParseRequest(context.Background(), "去成都")

	assert.ErrorIs(t, err, utils.ErrPlannerUnavailable)
}

func TestParseRequestMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	_, err := client.ParseRequest(context.Background(), "去成都")

	assert.ErrorIs(t, err, utils.ErrPlannerUnavailable)
}

func TestParseRequestConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := NewPlannerClient(server.URL, time.Second)
	_, err := client.ParseRequest(context.Background(), "去成都")

	assert.ErrorIs(t, err, utils.ErrPlannerUnavailable)
}

func TestCreatePlanSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trip/plan", r.URL.Path)

		var payload request_models.TripRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "杭州", payload.City)

		json.NewEncoder(w).Encode(response_models.TripPlanResponse{
			Success: true,
			Data: &response_models.TripPlan{
				City:      "杭州",
				StartDate: "2026-10-01",
				EndDate:   "2026-10-03",
				Days:      []response_models.DayPlan{{DayIndex: 1, Date: "2026-10-01"}},
			},
		})
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	envelope, err := client.CreatePlan(context.Background(), request_models.TripRequest{
		City: "杭州", StartDate: "2026-10-01", EndDate: "2026-10-03", TravelDays: 3,
	})

	require.NoError(t, err)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, "杭州", envelope.Data.City)
}

func TestCreatePlanTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, 50*time.Millisecond)
	_, err := client.CreatePlan(context.Background(), request_models.TripRequest{City: "杭州"})

	assert.ErrorIs(t, err, utils.ErrPlannerTimeout)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trip/health", r.URL.Path)
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	assert.NoError(t, client.Health(context.Background()))
}

func TestHealthUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewPlannerClient(server.URL, time.Second)
	assert.ErrorIs(t, client.Health(context.Background()), utils.ErrPlannerUnavailable)
}

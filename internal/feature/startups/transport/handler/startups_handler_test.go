package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"market_terminal/internal/feature/startups/domain"
	"market_terminal/internal/feature/startups/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockStartupsUsecase はStartupsUsecaseインターフェースのモック実装です。
type mockStartupsUsecase struct {
	ListStartupsFunc func(ctx context.Context) ([]entity.Startup, error)
	GetStartupFunc   func(ctx context.Context, id string) (entity.Startup, error)
}

func (m *mockStartupsUsecase) ListStartups(ctx context.Context) ([]entity.Startup, error) {
	if m.ListStartupsFunc != nil {
		return m.ListStartupsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStartupsUsecase) GetStartup(ctx context.Context, id string) (entity.Startup, error) {
	if m.GetStartupFunc != nil {
		return m.GetStartupFunc(ctx, id)
	}
	return entity.Startup{}, nil
}

func newTestRouter(uc *mockStartupsUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStartupsHandler(uc)
	r := gin.New()
	r.GET("/api/startups", h.List)
	r.GET("/api/startups/:id", h.Get)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// TestStartupsHandler_List はListハンドラーがシグナルスコアを導出してサマリーを返すことを検証します。
func TestStartupsHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		mockList       func(ctx context.Context) ([]entity.Startup, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns summaries with derived signal_score",
			mockList: func(ctx context.Context) ([]entity.Startup, error) {
				return []entity.Startup{
					{
						ID: "airship-ml", Name: "Airship ML", Sector: "Developer Tools", Stage: "Series A",
						Momentum: []entity.MomentumPoint{
							{Month: "2026-07", Hiring: 50, Buzz: 40},
						},
					},
					{ID: "moss-biosciences", Name: "Moss Biosciences", Sector: "Biotech", Stage: "Seed"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[
				{"id":"airship-ml","name":"Airship ML","sector":"Developer Tools","stage":"Series A","signal_score":46},
				{"id":"moss-biosciences","name":"Moss Biosciences","sector":"Biotech","stage":"Seed","signal_score":0}
			]`,
		},
		{
			name: "success: empty catalog returns empty array",
			mockList: func(ctx context.Context) ([]entity.Startup, error) {
				return []entity.Startup{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: usecase returns error",
			mockList: func(ctx context.Context) ([]entity.Startup, error) {
				return nil, errors.New("catalog unavailable")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"catalog unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockStartupsUsecase{ListStartupsFunc: tt.mockList})
			w := doGet(r, "/api/startups")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestStartupsHandler_Get はGetハンドラーの検索成功・404を検証します。
func TestStartupsHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockGet        func(ctx context.Context, id string) (entity.Startup, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns detail with momentum history",
			path: "/api/startups/voltgrid",
			mockGet: func(ctx context.Context, id string) (entity.Startup, error) {
				return entity.Startup{
					ID: "voltgrid", Name: "Voltgrid", Sector: "Energy", Stage: "Seed",
					Country: "India", Overview: "Battery analytics.",
					Momentum: []entity.MomentumPoint{
						{Month: "2026-06", Hiring: 24, Buzz: 31, Events: []string{"MOU with state discom"}},
						{Month: "2026-07", Hiring: 50, Buzz: 40},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id":"voltgrid","name":"Voltgrid","sector":"Energy","stage":"Seed",
				"signal_score":48.5,
				"country":"India","overview":"Battery analytics.",
				"momentum":[
					{"month":"2026-06","hiring":24,"buzz":31,"events":["MOU with state discom"]},
					{"month":"2026-07","hiring":50,"buzz":40}
				]
			}`,
		},
		{
			name: "failure: unknown id returns 404",
			path: "/api/startups/ghost",
			mockGet: func(ctx context.Context, id string) (entity.Startup, error) {
				return entity.Startup{}, domain.ErrStartupNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"startup not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockStartupsUsecase{GetStartupFunc: tt.mockGet})
			w := doGet(r, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

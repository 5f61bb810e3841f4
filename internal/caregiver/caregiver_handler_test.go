package caregiver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fichaje/internal/caregiver"
	timeclockerrors "fichaje/internal/timeclock/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCaregiverService struct {
	listFn func(ctx context.Context) ([]caregiver.CaregiverResponse, error)
}

func (f *fakeCaregiverService) List(ctx context.Context) ([]caregiver.CaregiverResponse, error) {
	return f.listFn(ctx)
}

type caregiverEnvelope struct {
	Ok    bool                          `json:"ok"`
	Data  []caregiver.CaregiverResponse `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupCaregiverRouter(svc caregiver.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	caregiver.RegisterRoutes(api, caregiver.NewHandler(svc))
	return r
}

func TestCaregiverHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCaregiverService{
			listFn: func(_ context.Context) ([]caregiver.CaregiverResponse, error) {
				return []caregiver.CaregiverResponse{
					{Name: "Ana"},
					{Name: "Luis", IsActive: true, LastClockIn: "02/01/2024, 09:00:00"},
				}, nil
			},
		}
		router := setupCaregiverRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/caregivers", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env caregiverEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		if assert.Len(t, env.Data, 2) {
			assert.True(t, env.Data[1].IsActive)
			assert.Equal(t, "02/01/2024, 09:00:00", env.Data[1].LastClockIn)
		}
	})

	t.Run("store outage maps to 503", func(t *testing.T) {
		svc := &fakeCaregiverService{
			listFn: func(_ context.Context) ([]caregiver.CaregiverResponse, error) {
				return nil, timeclockerrors.ErrStoreUnavailable(context.DeadlineExceeded)
			},
		}
		router := setupCaregiverRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/caregivers", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var env caregiverEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, timeclockerrors.CodeStoreUnavailable, env.Error.Code)
		}
	})
}

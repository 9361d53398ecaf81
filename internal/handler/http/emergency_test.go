package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestEmergencyAccess(t *testing.T) {
	emergency := &mockEmergencyService{
		accessFn: func(_ context.Context, userUUID, token string) (models.EmergencyProfile, error) {
			if token != "right-token" {
				return models.EmergencyProfile{}, service.ErrInvalidEmergencyToken
			}
			return models.EmergencyProfile{
				UserUUID:           userUUID,
				Name:               "Ada",
				MedicalInfo:        models.JSONMap{"blood_type": "O-"},
				EmergencyDocuments: models.EmergencyDocumentList{},
			}, nil
		},
	}
	h := newTestHandler(&service.Services{EmergencyService: emergency})

	req := jsonRequest(http.MethodGet, "/api/emergency/"+testUserUUID, "")
	req.Header.Set(utils.HeaderEmergencyToken, "right-token")
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"blood_type":"O-"`)

	req = jsonRequest(http.MethodGet, "/api/emergency/"+testUserUUID, "")
	req.Header.Set(utils.HeaderEmergencyToken, "guess")
	rec = serve(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestIssueEmergencyToken(t *testing.T) {
	h := newTestHandler(&service.Services{
		TokenService: tokenFor(models.RoleFree),
		EmergencyService: &mockEmergencyService{
			issueFn: func(_ context.Context, userID int64) (models.EmergencyTokenResponse, error) {
				return models.EmergencyTokenResponse{Token: "shown-once", UserUUID: testUserUUID}, nil
			},
		},
	})

	rec := serve(t, h, authedRequest(http.MethodPost, "/api/user/emergency/token", ""))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"token":"shown-once","user_uuid":"`+testUserUUID+`"}`, rec.Body.String())
}

func TestSaveEmergencyProfile_QuotaExceeded(t *testing.T) {
	h := newTestHandler(&service.Services{
		TokenService: tokenFor(models.RoleFree),
		EmergencyService: &mockEmergencyService{
			saveProfileFn: func(_ context.Context, claims models.Claims, req models.SaveEmergencyProfileRequest) (models.EmergencyProfile, error) {
				assert.Len(t, req.EmergencyDocuments, 4)
				return models.EmergencyProfile{}, service.ErrQuotaExceeded
			},
		},
	})

	body := `{"emergency_documents":[{"id":"1","title":"a"},{"id":"2","title":"b"},{"id":"3","title":"c"},{"id":"4","title":"d"}]}`
	rec := serve(t, h, authedRequest(http.MethodPut, "/api/user/emergency/profile", body))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

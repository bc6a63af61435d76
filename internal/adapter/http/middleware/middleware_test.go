package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webhook-resender/internal/core/domain"
	"webhook-resender/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderCnpjSH, "11222333000144")
	req.Header.Set(HeaderTokenSH, "tok-sh")
	req.Header.Set(HeaderCnpjCedente, "12345678000199")
	req.Header.Set(HeaderTokenCed, "tok-ced")
	return req
}

func authRouter(repo *mocks.MockTenantRepository) *gin.Engine {
	router := gin.New()
	router.GET("/test", TenantAuth(repo, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"cedenteId": c.GetString(CtxCedenteID)})
	})
	return router
}

func TestTenantAuth_MissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	router := authRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantAuth_UnknownSoftwareHouse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().
		FindSoftwareHouse(gomock.Any(), "11222333000144", "tok-sh").
		Return(nil, nil)

	router := authRouter(repo)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body["code"])
	// generic message, regardless of which check failed
	assert.Equal(t, "Credenciais inválidas", body["error"])
}

func TestTenantAuth_InactiveCedente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().
		FindSoftwareHouse(gomock.Any(), "11222333000144", "tok-sh").
		Return(&domain.SoftwareHouse{ID: "sh-1", Status: domain.StatusActive}, nil)
	repo.EXPECT().
		FindCedente(gomock.Any(), "12345678000199", "tok-ced", "sh-1").
		Return(&domain.Cedente{ID: "ced-1", Status: domain.StatusInactive}, nil)

	router := authRouter(repo)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().
		FindSoftwareHouse(gomock.Any(), "11222333000144", "tok-sh").
		Return(&domain.SoftwareHouse{ID: "sh-1", Status: domain.StatusActive}, nil)
	repo.EXPECT().
		FindCedente(gomock.Any(), "12345678000199", "tok-ced", "sh-1").
		Return(&domain.Cedente{ID: "ced-1", Status: domain.StatusActive}, nil)

	router := authRouter(repo)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest())

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ced-1", body["cedenteId"])
}

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/boom", func(c *gin.Context) {
		panic("something broke")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
}

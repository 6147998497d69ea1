package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hitbadge-backend/models"
	"hitbadge-backend/services"
	"hitbadge-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCounterService implements services.CounterServiceInterface
type MockCounterService struct {
	mock.Mock
}

func (m *MockCounterService) RecordVisit(user, pageID string, suppressCount bool) (*models.HitRecord, error) {
	args := m.Called(user, pageID, suppressCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HitRecord), args.Error(1)
}

// MockUserService implements services.UserServiceInterface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(user string) (bool, error) {
	args := m.Called(user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) IsAllowed(user string) (bool, error) {
	args := m.Called(user)
	return args.Bool(0), args.Error(1)
}

type HitControllerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	counterService *MockCounterService
	userService    *MockUserService
}

func (s *HitControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.counterService = new(MockCounterService)
	s.userService = new(MockUserService)

	h := NewHitController(s.counterService, s.userService, logger.NewLogger("error", "text"))

	s.router = gin.New()
	s.router.GET("/hc/:user/:pageId", h.Hit)
	s.router.POST("/hc/:user", h.Register)
}

func (s *HitControllerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HitControllerTestSuite) post(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HitControllerTestSuite) TestHitRendersBadge() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "home", false).
		Return(models.NewHitRecord("alice", "home", 42), nil)

	w := s.get("/hc/alice/home")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("image/svg+xml; charset=utf-8", w.Header().Get("Content-Type"))
	s.Equal("no-cache, no-store, must-revalidate, max-age=0", w.Header().Get("Cache-Control"))
	s.Contains(w.Body.String(), "<svg")
	s.Contains(w.Body.String(), "42")
}

func (s *HitControllerTestSuite) TestHitNormalizesIdentifiers() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "my-page_1", false).
		Return(models.NewHitRecord("alice", "my-page_1", 1), nil)

	w := s.get("/hc/Alice/My-Page_1")

	s.Equal(http.StatusOK, w.Code)
	s.counterService.AssertCalled(s.T(), "RecordVisit", "alice", "my-page_1", false)
}

func (s *HitControllerTestSuite) TestHitNoCountSuppressesIncrement() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "home", true).
		Return(models.NewHitRecord("alice", "home", 42), nil)

	w := s.get("/hc/alice/home?noCount=true")

	s.Equal(http.StatusOK, w.Code)
	s.counterService.AssertCalled(s.T(), "RecordVisit", "alice", "home", true)
}

func (s *HitControllerTestSuite) TestHitCustomColorsReachTheBadge() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "home", false).
		Return(models.NewHitRecord("alice", "home", 5), nil)

	w := s.get("/hc/alice/home?textBackgroundColorCode=%23123456")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "#123456")
	// Untouched options keep their defaults.
	s.Contains(w.Body.String(), "#555555")
}

func (s *HitControllerTestSuite) TestHitInvalidUser() {
	w := s.get("/hc/not_valid/home")

	s.Equal(http.StatusBadRequest, w.Code)
	s.userService.AssertNotCalled(s.T(), "IsAllowed", mock.Anything)
	s.counterService.AssertNotCalled(s.T(), "RecordVisit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HitControllerTestSuite) TestHitUserTooLong() {
	w := s.get("/hc/" + strings.Repeat("a", 11) + "/home")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HitControllerTestSuite) TestHitInvalidPageID() {
	w := s.get("/hc/alice/bad%20page")

	s.Equal(http.StatusBadRequest, w.Code)
	s.counterService.AssertNotCalled(s.T(), "RecordVisit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HitControllerTestSuite) TestHitUnregisteredUser() {
	s.userService.On("IsAllowed", "ghost").Return(false, nil)

	w := s.get("/hc/ghost/home")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.counterService.AssertNotCalled(s.T(), "RecordVisit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HitControllerTestSuite) TestHitGuardFullReturns503() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "home", false).
		Return(nil, services.ErrServerBusy)

	w := s.get("/hc/alice/home")

	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *HitControllerTestSuite) TestHitStorageFailureReturns500() {
	s.userService.On("IsAllowed", "alice").Return(true, nil)
	s.counterService.On("RecordVisit", "alice", "home", false).
		Return(nil, assert.AnError)

	w := s.get("/hc/alice/home")

	s.Equal(http.StatusInternalServerError, w.Code)

	var resp models.APIResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("error", resp.Status)
}

func (s *HitControllerTestSuite) TestRegisterNewUser() {
	s.userService.On("Register", "alice").Return(true, nil)

	w := s.post("/hc/alice")

	s.Equal(http.StatusOK, w.Code)

	var resp models.APIResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("success", resp.Status)
}

func (s *HitControllerTestSuite) TestRegisterExistingUserConflicts() {
	s.userService.On("Register", "alice").Return(false, nil)

	w := s.post("/hc/alice")

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HitControllerTestSuite) TestRegisterInvalidUser() {
	w := s.post("/hc/not_valid")

	s.Equal(http.StatusBadRequest, w.Code)
	s.userService.AssertNotCalled(s.T(), "Register", mock.Anything)
}

func (s *HitControllerTestSuite) TestRegisterStorageFailure() {
	s.userService.On("Register", "alice").Return(false, assert.AnError)

	w := s.post("/hc/alice")

	s.Equal(http.StatusInternalServerError, w.Code)
}

func TestHitControllerTestSuite(t *testing.T) {
	suite.Run(t, new(HitControllerTestSuite))
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/constants"
	"github.com/reliefmap/relief-coordination-api/internal/dto"
	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

// HelpRequestHandlerTestSuite defines the test suite for HelpRequestHandler
type HelpRequestHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *HelpRequestHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *HelpRequestHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	helpRequestService := services.NewHelpRequestService(repository.NewHelpRequestRepository(suite.db))
	suite.handler = NewHelpRequestHandler(helpRequestService)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.GET("/api/help-requests", suite.handler.List)
	suite.router.GET("/api/help-requests/summary", suite.handler.Summary)
	suite.router.GET("/api/help-requests/:helpRequestId", suite.handler.Get)
	suite.router.POST("/api/help-requests", suite.handler.Create)
}

func (suite *HelpRequestHandlerTestSuite) createTestHelpRequest(urgency models.Urgency, status models.HelpRequestStatus, area string) *models.HelpRequest {
	hr := &models.HelpRequest{
		Lat:         23.81,
		Lng:         90.41,
		Urgency:     urgency,
		Status:      status,
		TotalPeople: 2,
		RationItems: datatypes.NewJSONSlice([]string{"rice"}),
	}
	if area != "" {
		hr.ApproxArea = &area
	}
	suite.db.Create(hr)
	return hr
}

func (suite *HelpRequestHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HelpRequestHandlerTestSuite) TestList_ReturnsOnlyOpen() {
	open := suite.createTestHelpRequest(models.UrgencyHigh, models.HelpRequestStatusOpen, "Dhaka")
	suite.createTestHelpRequest(models.UrgencyHigh, models.HelpRequestStatusClosed, "Dhaka")

	w := suite.serve(http.MethodGet, "/api/help-requests", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data []dto.HelpRequestDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().Len(data, 1)
	suite.Equal(open.ID, data[0].ID)
	suite.Equal([]string{"rice"}, data[0].RationItems)
}

func (suite *HelpRequestHandlerTestSuite) TestList_FiltersByUrgencyAndDistrict() {
	match := suite.createTestHelpRequest(models.UrgencyHigh, models.HelpRequestStatusOpen, "Mirpur, Dhaka")
	suite.createTestHelpRequest(models.UrgencyLow, models.HelpRequestStatusOpen, "Mirpur, Dhaka")
	suite.createTestHelpRequest(models.UrgencyHigh, models.HelpRequestStatusOpen, "Sylhet")

	w := suite.serve(http.MethodGet, "/api/help-requests?urgency=HIGH&district=dhaka", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data []dto.HelpRequestDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().Len(data, 1)
	suite.Equal(match.ID, data[0].ID)
}

func (suite *HelpRequestHandlerTestSuite) TestList_RejectsUnknownUrgency() {
	w := suite.serve(http.MethodGet, "/api/help-requests?urgency=SEVERE", nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Urgency must be LOW, MEDIUM or HIGH", decodeResponse(suite.T(), w.Body.Bytes()).Error)
}

func (suite *HelpRequestHandlerTestSuite) TestGet() {
	hr := suite.createTestHelpRequest(models.UrgencyMedium, models.HelpRequestStatusOpen, "Dhaka")

	w := suite.serve(http.MethodGet, "/api/help-requests/1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data dto.HelpRequestDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Equal(hr.ID, data.ID)
	suite.Equal("Dhaka", data.ApproxArea)
}

func (suite *HelpRequestHandlerTestSuite) TestGet_NotFound() {
	w := suite.serve(http.MethodGet, "/api/help-requests/999", nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func (suite *HelpRequestHandlerTestSuite) TestGet_InvalidID() {
	w := suite.serve(http.MethodGet, "/api/help-requests/abc", nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid help request ID", decodeResponse(suite.T(), w.Body.Bytes()).Error)
}

func (suite *HelpRequestHandlerTestSuite) TestCreate_Anonymous() {
	payload := map[string]interface{}{
		"lat":         23.81,
		"lng":         90.41,
		"urgency":     "HIGH",
		"shortNote":   "Water entered the house",
		"approxArea":  "Feni",
		"totalPeople": 4,
		"children":    2,
		"rationItems": []string{"rice", "water"},
	}
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	w := suite.serve(http.MethodPost, "/api/help-requests", body)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var data dto.HelpRequestDTO
	resp := decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Equal("Help request created successfully", resp.Message)
	suite.Nil(data.UserID)
	suite.Equal(models.HelpRequestStatusOpen, data.Status)
	suite.Equal([]string{"rice", "water"}, data.RationItems)
}

func (suite *HelpRequestHandlerTestSuite) TestCreate_Authenticated() {
	user := &models.User{Username: "requester", Role: models.RoleUser, Status: models.UserStatusActive}
	suite.db.Create(user)

	authed := gin.New()
	authed.POST("/api/help-requests", func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, user.ID)
		suite.handler.Create(c)
	})

	body, err := json.Marshal(map[string]interface{}{
		"lat":     23.81,
		"lng":     90.41,
		"urgency": "LOW",
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/help-requests", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	authed.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code)

	var data dto.HelpRequestDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().NotNil(data.UserID)
	suite.Equal(user.ID, *data.UserID)
}

func (suite *HelpRequestHandlerTestSuite) TestCreate_MissingCoordinates() {
	body, err := json.Marshal(map[string]interface{}{"urgency": "HIGH"})
	suite.Require().NoError(err)

	w := suite.serve(http.MethodPost, "/api/help-requests", body)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request body", decodeResponse(suite.T(), w.Body.Bytes()).Error)
}

func (suite *HelpRequestHandlerTestSuite) TestSummary() {
	suite.createTestHelpRequest(models.UrgencyHigh, models.HelpRequestStatusOpen, "Dhaka")
	suite.createTestHelpRequest(models.UrgencyLow, models.HelpRequestStatusClosed, "Dhaka")

	w := suite.serve(http.MethodGet, "/api/help-requests/summary", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data repository.HelpRequestSummary
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Equal(int64(2), data.Total)
	suite.Equal(int64(1), data.ByUrgency[models.UrgencyHigh])
	suite.Equal(int64(1), data.ByStatus[models.HelpRequestStatusClosed])
	suite.Equal(int64(2), data.ByDistrict["Dhaka"])
	suite.Equal(int64(4), data.People.TotalPeople)
	suite.Equal(int64(2), data.RationItems["rice"])
}

func TestHelpRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HelpRequestHandlerTestSuite))
}

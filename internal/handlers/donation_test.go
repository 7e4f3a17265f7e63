package handlers

import (
	"bytes"
	"fmt"
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

// DonationHandlerTestSuite defines the test suite for DonationHandler
type DonationHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *DonationHandler
	owner   *models.User
	donator *models.User
	request *models.HelpRequest
}

// SetupTest runs before each test
func (suite *DonationHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())

	donationService := services.NewDonationService(
		repository.NewDonationRepository(suite.db),
		repository.NewHelpRequestRepository(suite.db),
	)
	suite.handler = NewDonationHandler(donationService)

	gin.SetMode(gin.TestMode)

	contact := "0171234567"
	suite.owner = &models.User{Username: "owner", Role: models.RoleUser, Status: models.UserStatusActive}
	suite.donator = &models.User{Username: "donator", ContactNumber: &contact, Role: models.RoleUser, Status: models.UserStatusActive}
	suite.db.Create(suite.owner)
	suite.db.Create(suite.donator)

	suite.request = &models.HelpRequest{
		UserID:  &suite.owner.ID,
		Lat:     23.81,
		Lng:     90.41,
		Urgency: models.UrgencyHigh,
		Status:  models.HelpRequestStatusOpen,
	}
	suite.db.Create(suite.request)
}

// router wires the donation routes; userID 0 leaves the request anonymous.
func (suite *DonationHandlerTestSuite) router(userID uint64) *gin.Engine {
	r := gin.New()
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, userID)
			c.Next()
		})
	}
	r.GET("/api/help-requests/:helpRequestId/donations", suite.handler.List)
	r.POST("/api/help-requests/:helpRequestId/donations", suite.handler.Create)
	r.PATCH("/api/help-requests/:helpRequestId/donations/:donationId/schedule", suite.handler.MarkAsScheduled)
	r.PATCH("/api/help-requests/:helpRequestId/donations/:donationId/complete-donator", suite.handler.MarkAsCompletedByDonator)
	r.PATCH("/api/help-requests/:helpRequestId/donations/:donationId/complete-owner", suite.handler.MarkAsCompletedByOwner)
	return r
}

func (suite *DonationHandlerTestSuite) serve(r *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *DonationHandlerTestSuite) createTestDonation() *models.Donation {
	donation := &models.Donation{
		HelpRequestID: suite.request.ID,
		DonatorID:     suite.donator.ID,
		RationItems:   datatypes.NewJSONType(map[string]int64{"rice": 5}),
	}
	suite.db.Create(donation)
	return donation
}

func (suite *DonationHandlerTestSuite) donationsURL() string {
	return fmt.Sprintf("/api/help-requests/%d/donations", suite.request.ID)
}

func (suite *DonationHandlerTestSuite) TestCreate() {
	r := suite.router(suite.donator.ID)
	body := []byte(`{"rationItems":{"rice":5,"water":10}}`)

	w := suite.serve(r, http.MethodPost, suite.donationsURL(), body)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var data dto.DonationDTO
	resp := decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Equal("Donation created successfully", resp.Message)
	suite.Equal(suite.donator.ID, data.DonatorID)
	suite.Equal(map[string]int64{"rice": 5, "water": 10}, data.RationItems)
	suite.False(data.DonatorMarkedScheduled)
	suite.Equal("donator", data.DonatorUsername)
	// Contact numbers are never disclosed on the create path.
	suite.Empty(data.DonatorContactNumber)
}

func (suite *DonationHandlerTestSuite) TestCreate_RequiresAuth() {
	r := suite.router(0)
	body := []byte(`{"rationItems":{"rice":5}}`)

	w := suite.serve(r, http.MethodPost, suite.donationsURL(), body)
	suite.Require().Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DonationHandlerTestSuite) TestCreate_MissingRationItems() {
	r := suite.router(suite.donator.ID)

	w := suite.serve(r, http.MethodPost, suite.donationsURL(), []byte(`{}`))
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Ration items are required", decodeResponse(suite.T(), w.Body.Bytes()).Error)

	w = suite.serve(r, http.MethodPost, suite.donationsURL(), []byte(`{"rationItems":{}}`))
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Ration items are required", decodeResponse(suite.T(), w.Body.Bytes()).Error)
}

func (suite *DonationHandlerTestSuite) TestCreate_UnknownHelpRequest() {
	r := suite.router(suite.donator.ID)
	body := []byte(`{"rationItems":{"rice":5}}`)

	w := suite.serve(r, http.MethodPost, "/api/help-requests/999/donations", body)
	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func (suite *DonationHandlerTestSuite) TestList_OwnerSeesContactNumber() {
	suite.createTestDonation()

	w := suite.serve(suite.router(suite.owner.ID), http.MethodGet, suite.donationsURL(), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data []dto.DonationDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().Len(data, 1)
	suite.Equal("donator", data[0].DonatorUsername)
	suite.Equal("0171234567", data[0].DonatorContactNumber)
}

func (suite *DonationHandlerTestSuite) TestList_OthersDoNotSeeContactNumber() {
	suite.createTestDonation()

	// The donator themselves is not the owner.
	w := suite.serve(suite.router(suite.donator.ID), http.MethodGet, suite.donationsURL(), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data []dto.DonationDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().Len(data, 1)
	suite.Empty(data[0].DonatorContactNumber)

	// Anonymous readers do not either.
	w = suite.serve(suite.router(0), http.MethodGet, suite.donationsURL(), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Require().Len(data, 1)
	suite.Empty(data[0].DonatorContactNumber)
}

func (suite *DonationHandlerTestSuite) TestMarkAsScheduled() {
	donation := suite.createTestDonation()
	url := fmt.Sprintf("%s/%d/schedule", suite.donationsURL(), donation.ID)

	w := suite.serve(suite.router(suite.donator.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data dto.DonationDTO
	resp := decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.Equal("Donation marked as scheduled", resp.Message)
	suite.True(data.DonatorMarkedScheduled)
}

func (suite *DonationHandlerTestSuite) TestMarkAsCompleted_BothSides() {
	donation := suite.createTestDonation()

	url := fmt.Sprintf("%s/%d/complete-donator", suite.donationsURL(), donation.ID)
	w := suite.serve(suite.router(suite.donator.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data dto.DonationDTO
	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.True(data.DonatorMarkedCompleted)

	url = fmt.Sprintf("%s/%d/complete-owner", suite.donationsURL(), donation.ID)
	w = suite.serve(suite.router(suite.owner.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	decodeData(suite.T(), w.Body.Bytes(), &data)
	suite.True(data.DonatorMarkedCompleted)
	suite.True(data.OwnerMarkedCompleted)
}

func (suite *DonationHandlerTestSuite) TestMarkFlags_WrongActor() {
	donation := suite.createTestDonation()

	// The owner cannot set donator flags.
	url := fmt.Sprintf("%s/%d/schedule", suite.donationsURL(), donation.ID)
	w := suite.serve(suite.router(suite.owner.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Failed to update donation", decodeResponse(suite.T(), w.Body.Bytes()).Error)

	// The donator cannot set the owner flag.
	url = fmt.Sprintf("%s/%d/complete-owner", suite.donationsURL(), donation.ID)
	w = suite.serve(suite.router(suite.donator.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *DonationHandlerTestSuite) TestMarkFlags_UnknownDonation() {
	url := fmt.Sprintf("%s/999/schedule", suite.donationsURL())
	w := suite.serve(suite.router(suite.donator.ID), http.MethodPatch, url, nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func TestDonationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

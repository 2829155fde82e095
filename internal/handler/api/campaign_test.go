//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cosme-store/internal/handler/api"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
	"cosme-store/tests/common/builder"
	"cosme-store/tests/common/httptest"
	"cosme-store/tests/common/testutil"
	commandsmock "cosme-store/tests/mock/commands"
	queriesmock "cosme-store/tests/mock/queries"
)

type CampaignHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCampaignCommands
	mockQueries  *queriesmock.MockCampaignQueries
	handler      *api.CampaignHandler
	adminID      uuid.UUID
}

func (s *CampaignHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCampaignCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCampaignQueries(s.mockCtrl)
	s.handler = api.NewCampaignHandler(s.mockCommands, s.mockQueries)
	s.adminID = uuid.New()

	identity := middleware.RequireUser()
	s.router.GET("/campaigns/active", s.handler.ListActive)
	s.router.GET("/admin/campaigns", identity, s.handler.List)
	s.router.POST("/admin/campaigns", identity, s.handler.Create)
	s.router.GET("/admin/campaigns/:id", identity, s.handler.Get)
	s.router.PUT("/admin/campaigns/:id", identity, s.handler.Update)
	s.router.POST("/admin/campaigns/:id/activate", identity, s.handler.Activate)
	s.router.POST("/admin/campaigns/:id/deactivate", identity, s.handler.Deactivate)
}

func (s *CampaignHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampaignHandlerSuite(t *testing.T) {
	suite.Run(t, new(CampaignHandlerTestSuite))
}

func (s *CampaignHandlerTestSuite) TestListActive() {
	url := "/campaigns/active"

	s.Run("success: returns 200 OK with banner items", func() {
		banner := builder.NewCampaignBuilder().BuildBannerItem()
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return([]*queries.CampaignBannerItem{banner}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CampaignBannerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(banner.ID, response[0].ID)
		s.Equal(banner.Title, response[0].Title)
	})

	s.Run("success: empty list when nothing is live", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CampaignBannerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *CampaignHandlerTestSuite) TestList() {
	url := "/admin/campaigns"

	s.Run("success: returns 200 OK with every campaign", func() {
		views := []*queries.CampaignView{
			builder.NewCampaignBuilder().BuildViewQuery(),
			builder.NewCampaignBuilder().AsInactive().BuildViewQuery(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminID.String())

		var response []resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 401 Unauthorized without X-User-ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *CampaignHandlerTestSuite) TestGet() {
	returnView := builder.NewCampaignBuilder().BuildViewQuery()
	url := "/admin/campaigns/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the campaign", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminID.String())

		var response resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Name, response.Name)
	})

	s.Run("error: 404 Not Found for unknown campaign", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrCampaignNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})

	s.Run("error: 400 Bad Request on malformed campaign ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/campaigns/not-a-uuid", nil, s.adminID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid campaign ID")
	})
}

func (s *CampaignHandlerTestSuite) TestCreate() {
	url := "/admin/campaigns"

	campaignBuilder := builder.NewCampaignBuilder()
	reqBody := campaignBuilder.BuildCreateRequestDTO()
	returnView := campaignBuilder.BuildViewQuery()

	s.Run("success: returns 201 Created with the campaign", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminID.String())

		var response resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/campaigns/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil)},
			{name: "missing field: scope (required)", mutate: testutil.Field("scope", nil)},
			{name: "missing field: starts_at (required)", mutate: testutil.Field("starts_at", nil)},
			{name: "missing field: ends_at (required)", mutate: testutil.Field("ends_at", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.adminID.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate code",
				commandsError:  commands.ErrCampaignCodeTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Campaign code already in use",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.adminID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CampaignHandlerTestSuite) TestUpdate() {
	campaignBuilder := builder.NewCampaignBuilder()
	reqBody := campaignBuilder.BuildUpdateRequestDTO()
	returnView := campaignBuilder.BuildViewQuery()
	url := "/admin/campaigns/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the updated campaign", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.adminID.String())

		var response resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 404 Not Found for unknown campaign", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, commands.ErrCampaignNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.adminID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})

	s.Run("error: 409 Conflict when the code belongs to another campaign", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, commands.ErrCampaignCodeTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.adminID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Campaign code already in use")
	})
}

func (s *CampaignHandlerTestSuite) TestSetActive() {
	campaignID := uuid.New()

	s.Run("success: activate returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), campaignID, true).
			Return(nil).Times(1)

		url := "/admin/campaigns/" + campaignID.String() + "/activate"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.adminID.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: deactivate returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), campaignID, false).
			Return(nil).Times(1)

		url := "/admin/campaigns/" + campaignID.String() + "/deactivate"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.adminID.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown campaign", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), campaignID, true).
			Return(commands.ErrCampaignNotFound).Times(1)

		url := "/admin/campaigns/" + campaignID.String() + "/activate"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.adminID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	mockusecase "homepros/internal/mocks/usecase"
	"homepros/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func newSearchTestContext(t *testing.T, target string) (*SearchHandler, *mockusecase.MockDirectoryUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	directoryUC := mockusecase.NewMockDirectoryUsecase(t)
	handler := &SearchHandler{
		directoryUC: directoryUC,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, directoryUC, c, rec
}

func TestSearchHandler_Search_Integration(t *testing.T) {
	handler, directoryUC, c, rec := newSearchTestContext(t, "/api/search?services=1,3&cities=Chillicothe,Trenton&zip=64601&radius=50")

	directoryUC.EXPECT().
		SearchListings(c.Request().Context(), usecase.SearchQuery{
			ServiceIDs:  []int64{1, 3},
			Cities:      []string{"Chillicothe", "Trenton"},
			Zip:         "64601",
			RadiusMiles: floatPtr(50),
		}).
		Return([]*entity.ListingSummary{
			{ID: 7, Name: "Grand River Plumbing", City: "Chillicothe"},
		}, nil)

	err := handler.Search(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "contractors")
	assert.Contains(t, responseBody, "Grand River Plumbing")
}

func TestSearchHandler_Search_InvalidServiceID_Integration(t *testing.T) {
	handler, directoryUC, c, rec := newSearchTestContext(t, "/api/search?services=1,abc")

	err := handler.Search(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SERVICE_ID")
	directoryUC.AssertNotCalled(t, "SearchListings")
}

func TestSearchHandler_Search_InvalidRadius_Integration(t *testing.T) {
	handler, directoryUC, c, rec := newSearchTestContext(t, "/api/search?cities=Moberly&radius=-10")

	err := handler.Search(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_RADIUS")
	directoryUC.AssertNotCalled(t, "SearchListings")
}

func TestSearchHandler_Search_FilterRequired_Integration(t *testing.T) {
	handler, directoryUC, c, rec := newSearchTestContext(t, "/api/search?zip=63501")

	directoryUC.EXPECT().
		SearchListings(c.Request().Context(), usecase.SearchQuery{Zip: "63501"}).
		Return(nil, domainerrors.ErrSearchFilterRequired)

	err := handler.Search(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SEARCH_FILTER_REQUIRED")
}

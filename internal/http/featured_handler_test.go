package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshop/internal/entity"
	"bookshop/internal/store/mocks"
	"bookshop/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testFeatured = entity.FeaturedBook{
	ID:             1,
	Title:          "Signature Pick",
	Description:    "The one book we keep on the landing page",
	CoverImage:     "http://cdn.example/book-covers/1-def.jpg",
	Price:          20,
	Features:       []string{"Signed copy", "Free shipping"},
	WhatsappNumber: "+994504540738",
	IsActive:       true,
}

func newFeaturedHandler(t *testing.T) (*FeaturedHandler, *mocks.MockFeaturedBookRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := mocks.NewMockFeaturedBookRepository(ctrl)
	return NewFeaturedHandler(usecase.NewFeaturedService(mockRepo)), mockRepo
}

func TestFeaturedHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockFeaturedBookRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(testFeatured, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no active row",
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(entity.FeaturedBook{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name: "multiple active rows",
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(entity.FeaturedBook{}, usecase.ErrMultipleActive)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DATA_INTEGRITY",
		},
		{
			name: "server error",
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(entity.FeaturedBook{}, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newFeaturedHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/featured-book", nil)

			handler.Get(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, w.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestFeaturedHandler_Update(t *testing.T) {
	validBody := `{"title":"New Pick","description":"Fresh","cover_image":"http://cdn.example/c.jpg","price":25,"features":["Signed"," ",""]}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockFeaturedBookRepository)
		expectedStatus int
	}{
		{
			name: "success - features trimmed and row stays active",
			body: validBody,
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(testFeatured, nil)
				m.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fb *entity.FeaturedBook) error {
						assert.Equal(t, []string{"Signed"}, fb.Features)
						assert.True(t, fb.IsActive)
						assert.Equal(t, usecase.DefaultWhatsappNumber, fb.WhatsappNumber)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "validation error",
			body:           `{"title":"","description":"","cover_image":"","price":0}`,
			setupMock:      func(m *mocks.MockFeaturedBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `not json`,
			setupMock:      func(m *mocks.MockFeaturedBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no active row to update",
			body: validBody,
			setupMock: func(m *mocks.MockFeaturedBookRepository) {
				m.EXPECT().GetActive(gomock.Any()).Return(entity.FeaturedBook{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newFeaturedHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/admin/featured-book", strings.NewReader(tt.body))

			handler.Update(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

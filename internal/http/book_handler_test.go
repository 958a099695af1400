package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookshop/internal/entity"
	"bookshop/internal/store/mocks"
	"bookshop/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testBook = entity.Book{
	ID:             7,
	Title:          "Bir Fincan Qəhvə",
	Author:         "E. Safarli",
	CoverImage:     "http://cdn.example/book-covers/1-abc.jpg",
	Description:    "A story told over coffee",
	Price:          15,
	WhatsappNumber: "+994504540738",
	DisplayOrder:   1,
	CreatedAt:      time.Now(),
	UpdatedAt:      time.Now(),
}

func newBookHandler(t *testing.T) (*BookHandler, *mocks.MockBookRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := mocks.NewMockBookRepository(ctrl)
	return NewBookHandler(usecase.NewCatalogService(mockRepo)), mockRepo
}

func TestBookHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success - empty catalog",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return([]entity.Book{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success - with books",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return([]entity.Book{testBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "server error",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/books", nil)

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"success":true`)
			}
		})
	}
}

func TestBookHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success",
			path: "/books/7",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/books/99",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entity.Book{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			path:           "/books/abc",
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)

			handler.Get(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Create(t *testing.T) {
	validBody := `{"title":"New Book","author":"Author","cover_image":"http://cdn.example/c.jpg","description":"Short","price":12.5}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success - appended to end of catalog",
			body: validBody,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().MaxDisplayOrder(gomock.Any()).Return(3, nil)
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *entity.Book) error {
						assert.Equal(t, 4, b.DisplayOrder)
						b.ID = 10
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation error - no store call",
			body:           `{"title":"","author":"","cover_image":"","description":"","price":0}`,
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "server error",
			body: validBody,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().MaxDisplayOrder(gomock.Any()).Return(0, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/admin/books", strings.NewReader(tt.body))

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Create_ValidationDetails(t *testing.T) {
	handler, _ := newBookHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/books",
		strings.NewReader(`{"title":"T","author":"A","cover_image":"c.jpg","description":"`+strings.Repeat("x", 131)+`","price":5}`))

	handler.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "at most 130")
}

func TestBookHandler_Update(t *testing.T) {
	validBody := `{"title":"Edited","author":"Author","cover_image":"http://cdn.example/c.jpg","description":"Short","price":9.9}`

	tests := []struct {
		name           string
		path           string
		body           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success - display order preserved",
			path: "/admin/books/7",
			body: validBody,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().GetByID(gomock.Any(), int64(7)).Return(testBook, nil)
				m.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *entity.Book) error {
						assert.Equal(t, testBook.DisplayOrder, b.DisplayOrder)
						assert.Equal(t, "Edited", b.Title)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/admin/books/99",
			body: validBody,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entity.Book{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "validation error",
			path:           "/admin/books/7",
			body:           `{"title":"","author":"A","cover_image":"c","description":"d","price":1}`,
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))

			handler.Update(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success",
			path: "/admin/books/7",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			path: "/admin/books/99",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().Delete(gomock.Any(), int64(99)).Return(usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, tt.path, nil)

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Reorder(t *testing.T) {
	catalog := []entity.Book{
		{ID: 1, DisplayOrder: 1},
		{ID: 2, DisplayOrder: 2},
		{ID: 3, DisplayOrder: 3},
	}

	tests := []struct {
		name           string
		path           string
		body           string
		setupMock      func(m *mocks.MockBookRepository)
		expectedStatus int
	}{
		{
			name: "success - middle book moves up",
			path: "/admin/books/2/reorder",
			body: `{"direction":"up"}`,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return(catalog, nil)
				m.EXPECT().SwapDisplayOrder(gomock.Any(), int64(2), 1, int64(1), 2).Return(nil)
				m.EXPECT().List(gomock.Any()).Return(catalog, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "first book up is a no-op",
			path: "/admin/books/1/reorder",
			body: `{"direction":"up"}`,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return(catalog, nil)
				m.EXPECT().List(gomock.Any()).Return(catalog, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown book",
			path: "/admin/books/42/reorder",
			body: `{"direction":"down"}`,
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().List(gomock.Any()).Return(catalog, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid direction",
			path:           "/admin/books/2/reorder",
			body:           `{"direction":"sideways"}`,
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing direction",
			path:           "/admin/books/2/reorder",
			body:           `{}`,
			setupMock:      func(m *mocks.MockBookRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newBookHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))

			handler.Reorder(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

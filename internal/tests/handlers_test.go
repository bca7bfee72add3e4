package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "daily-dish/internal/api/http"
	"daily-dish/internal/domain"
	"daily-dish/internal/mocks"
	"daily-dish/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(store *mocks.DishStore, images *mocks.ImageStore, clock *mocks.Clock) *mux.Router {
	menu := service.NewMenuService(store, images, nil, nil)
	daily := service.NewDailyService(store, clock, nil)
	handler := httpapi.NewHandler(menu, daily, service.DefaultQRGenerator{BaseURL: "http://localhost:8080"})

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func dishFormBody(t *testing.T, name, description string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if name != "" {
		_ = writer.WriteField("name", name)
	}
	if description != "" {
		_ = writer.WriteField("description", description)
	}
	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="dish.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create image part: %v", err)
		}
		_, _ = part.Write(image)
	}
	_ = writer.Close()
	return body, writer.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(mocks.NewDishStore(t), mocks.NewImageStore(t), mocks.NewClock(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "daily-dish", body["service"])
}

func TestListDishesHandler(t *testing.T) {
	store := mocks.NewDishStore(t)
	dishes := menuOf("Soup")
	dishes[0].Ratings = map[string]float64{"user1": 4}
	store.On("ReadCollection").Return(dishes, nil).Once()

	r := newTestRouter(store, mocks.NewImageStore(t), mocks.NewClock(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dishes", nil)
	req.Header.Set("X-User-ID", "user1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var views []domain.DishView
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	assert.Len(t, views, 1)
	assert.Equal(t, "Soup", views[0].Name)
	if assert.NotNil(t, views[0].YourRating) {
		assert.Equal(t, 4.0, *views[0].YourRating)
	}
}

func TestCreateDishHandler(t *testing.T) {
	tests := []struct {
		name         string
		formName     string
		image        []byte
		prepareMocks func(store *mocks.DishStore, images *mocks.ImageStore)
		wantCode     int
	}{
		{
			name:     "created",
			formName: "Soup",
			image:    []byte{0x89, 0x50, 0x4e, 0x47},
			prepareMocks: func(store *mocks.DishStore, images *mocks.ImageStore) {
				store.On("ReadCollection").Return([]domain.DishRecord{}, nil).Once()
				images.On("Store", mock.Anything, mock.Anything).Return("uploads/dish_1.png", nil).Once()
				store.On("WriteCollection", mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:         "missing image",
			formName:     "Soup",
			image:        nil,
			prepareMocks: func(store *mocks.DishStore, images *mocks.ImageStore) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:     "duplicate name",
			formName: "Soup",
			image:    []byte{0x89},
			prepareMocks: func(store *mocks.DishStore, images *mocks.ImageStore) {
				store.On("ReadCollection").Return(menuOf("Soup"), nil).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewDishStore(t)
			images := mocks.NewImageStore(t)
			testCase.prepareMocks(store, images)

			r := newTestRouter(store, images, mocks.NewClock(t))

			body, contentType := dishFormBody(t, testCase.formName, `[{"type":"paragraph","text":"tasty"}]`, testCase.image)
			req := httptest.NewRequest(http.MethodPost, "/api/dishes", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestRateDishHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMocks func(store *mocks.DishStore)
		wantCode     int
	}{
		{
			name: "ok",
			body: `{"user_id":"user1","rating":5}`,
			prepareMocks: func(store *mocks.DishStore) {
				store.On("ReadCollection").Return(menuOf("Soup"), nil).Once()
				store.On("WriteCollection", mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			body:         `{invalid}`,
			prepareMocks: func(store *mocks.DishStore) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "missing user",
			body:         `{"rating":5}`,
			prepareMocks: func(store *mocks.DishStore) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewDishStore(t)
			testCase.prepareMocks(store)

			r := newTestRouter(store, mocks.NewImageStore(t), mocks.NewClock(t))

			req := httptest.NewRequest(http.MethodPost, "/api/dishes/Soup/rating", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var resp map[string]float64
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 5.0, resp["average"])
			}
		})
	}
}

func TestDeleteDishHandler_NotFound(t *testing.T) {
	store := mocks.NewDishStore(t)
	store.On("ReadCollection").Return(menuOf("Soup"), nil).Once()

	r := newTestRouter(store, mocks.NewImageStore(t), mocks.NewClock(t))

	req := httptest.NewRequest(http.MethodDelete, "/api/dishes/Pasta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodayHandlers(t *testing.T) {
	store := mocks.NewDishStore(t)
	clock := mocks.NewClock(t)

	clock.On("Today").Return("2024-03-01")
	store.On("ReadCollection").Return(menuOf("Soup"), nil)

	r := newTestRouter(store, mocks.NewImageStore(t), clock)

	req := httptest.NewRequest(http.MethodGet, "/api/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var view domain.DishView
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, "Soup", view.Name)

	req = httptest.NewRequest(http.MethodPost, "/api/today/skip", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, "Soup", view.Name)
}

func TestTodayQRCodeHandler(t *testing.T) {
	store := mocks.NewDishStore(t)

	r := newTestRouter(store, mocks.NewImageStore(t), mocks.NewClock(t))

	req := httptest.NewRequest(http.MethodGet, "/api/today/qrcode", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huangsam/awardgap/internal/moviestore"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const movieList = "year;title;studios;producers;winner\n" +
	"1980;Test Movie;Studio A;Producer A;yes\n" +
	"1985;Other Movie;Studio C;Producer A;yes\n" +
	"1990;Third Movie;Studio D;Producer B;yes\n" +
	"2000;Fourth Movie;Studio E;Producer B;yes\n"

// uploadRequest builds a multipart POST /populate request. An empty filename omits the file part.
func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/populate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "It works!", rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPopulateThenListProducerWinners(t *testing.T) {
	router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))

	rec := serve(router, uploadRequest(t, "movielist.csv", movieList))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message": "Data processed successfully", "count": 4}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/list-producer-winners", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"min": [{"producer": "Producer A", "interval": 5, "previousWin": 1980, "followingWin": 1985}],
		"max": [{"producer": "Producer B", "interval": 10, "previousWin": 1990, "followingWin": 2000}]
	}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/movies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var movies []schema.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	assert.Len(t, movies, 4)
}

func TestListProducerWinners_Empty(t *testing.T) {
	router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/list-producer-winners", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"min": [], "max": []}`, rec.Body.String())
}

func TestPopulate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		message  string
	}{
		{"missing file", "", "", "File is required"},
		{"wrong extension", "movies.txt", movieList, "File must be a CSV file"},
		{"empty file", "movies.csv", "", "CSV file is empty"},
		{"missing columns", "movies.csv", "year;title\n1980;A\n", "missing required columns: studios, producers, winner"},
		{"invalid rows", "movies.csv", "year;title;studios;producers;winner\nabc;A;B;C;yes\n", "validation errors:\nRow 2: \"year\" must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))
			rec := serve(router, uploadRequest(t, tt.filename, tt.content))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, ErrorResponse{StatusCode: 400, Message: tt.message, Error: "Bad Request"}, decodeError(t, rec))
		})
	}
}

func TestPopulate_StoreFailure(t *testing.T) {
	store := &moviestore.MockMovieStore{}
	store.On("BulkUpsert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	mgr := &moviestore.MockStoreManager{}
	mgr.On("GetMovieStore").Return(store)

	rec := serve(NewRouter(mgr), uploadRequest(t, "movies.csv", movieList))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, ErrorResponse{StatusCode: 500, Message: "Internal server error", Error: "Internal Server Error"}, decodeError(t, rec))
}

func TestListMovies_StoreFailure(t *testing.T) {
	store := &moviestore.MockMovieStore{}
	store.On("ListMovies", mock.Anything).Return(nil, context.DeadlineExceeded)
	mgr := &moviestore.MockStoreManager{}
	mgr.On("GetMovieStore").Return(store)

	router := NewRouter(mgr)
	for _, path := range []string{"/movies", "/list-producer-winners"} {
		rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/populate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSwaggerDoc(t *testing.T) {
	router := NewRouter(moviestore.NewManager(moviestore.NewMemoryStore()))
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/populate")
	assert.Contains(t, paths, "/list-producer-winners")
}

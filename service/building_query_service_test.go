package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"building-query/api"
	"building-query/api/overpass"
	dao "building-query/dao/redis"
	"building-query/db"
	"building-query/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferSink struct {
	bytes.Buffer
	opened bool
	closed bool
}

func (b *bufferSink) Close() error {
	b.closed = true
	return nil
}

func (b *bufferSink) opener() OutputOpener {
	return func() (io.WriteCloser, error) {
		b.opened = true
		return b, nil
	}
}

type failingWriter struct{ closed bool }

func (f *failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }
func (f *failingWriter) Close() error                { f.closed = true; return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(apiClient overpass.OverpassAPI, cache ResponseCache) *BuildingQueryService {
	return NewBuildingQueryService(models.DefaultCityCatalog(), apiClient, cache, discardLogger())
}

func TestRun_Success(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 123456)
	mock := overpass.NewOverpassApiClientMock(body)
	sink := &bufferSink{}
	var diag bytes.Buffer

	err := newService(mock, nil).Run(context.Background(), "sydney", sink.opener(), &diag)

	require.NoError(t, err)
	assert.Equal(t, body, sink.Bytes())
	assert.True(t, sink.closed)
	assert.Equal(t, "Downloaded Overpass response, 123 kB\n", diag.String())
	require.Len(t, mock.Queries(), 1)
	assert.Contains(t, mock.Queries()[0], "(-33.940, 151.170, -33.840, 151.270)")
}

func TestRun_RemoteFailure(t *testing.T) {
	remoteErr := &api.RemoteRequestFailedError{
		StatusCode: 429,
		Status:     "429 Too Many Requests",
		Body:       []byte("rate limited \xff"),
	}
	mock := overpass.NewFailingOverpassApiClientMock(remoteErr)
	sink := &bufferSink{}
	var diag bytes.Buffer

	err := newService(mock, nil).Run(context.Background(), "hongkong", sink.opener(), &diag)

	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
	assert.False(t, sink.opened)
	assert.Zero(t, sink.Len())
	assert.Equal(t, "Overpass API error. Full response below:\n\nrate limited �\n", diag.String())
}

func TestRun_TransportErrorPropagates(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	sink := &bufferSink{}
	var diag bytes.Buffer

	err := newService(overpass.NewFailingOverpassApiClientMock(boom), nil).Run(context.Background(), "sydney", sink.opener(), &diag)

	assert.ErrorIs(t, err, boom)
	assert.False(t, sink.opened)
	assert.Empty(t, diag.String())
}

func TestRun_UnknownCityMakesNoRequest(t *testing.T) {
	mock := overpass.NewOverpassApiClientMock([]byte("{}"))
	sink := &bufferSink{}
	var diag bytes.Buffer

	err := newService(mock, nil).Run(context.Background(), "atlantis", sink.opener(), &diag)

	assert.ErrorIs(t, err, models.ErrUnknownCity)
	assert.Empty(t, mock.Queries())
	assert.False(t, sink.opened)
}

func TestRun_OpenError(t *testing.T) {
	mock := overpass.NewOverpassApiClientMock([]byte("{}"))
	var diag bytes.Buffer

	err := newService(mock, nil).Run(context.Background(), "sydney", func() (io.WriteCloser, error) {
		return nil, errors.New("permission denied")
	}, &diag)

	assert.ErrorContains(t, err, "failed to open output: permission denied")
}

func TestRun_WriteErrorClosesSink(t *testing.T) {
	mock := overpass.NewOverpassApiClientMock([]byte("{}"))
	w := &failingWriter{}
	var diag bytes.Buffer

	err := newService(mock, nil).Run(context.Background(), "sydney", func() (io.WriteCloser, error) {
		return w, nil
	}, &diag)

	assert.ErrorContains(t, err, "disk full")
	assert.True(t, w.closed)
}

func TestFetchBuildings_CachesSuccess(t *testing.T) {
	ctx := context.Background()
	mock := overpass.NewOverpassApiClientMock([]byte(`{"elements":[]}`))
	cache := dao.NewRedisResponseCacheDAO(db.NewMockRedisClient(), 0)
	svc := newService(mock, cache)

	first, err := svc.FetchBuildings(ctx, "sydney")
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := svc.FetchBuildings(ctx, "sydney")
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Body, second.Body)
	assert.Len(t, mock.Queries(), 1)

	_, err = svc.FetchBuildings(ctx, "hongkong")
	require.NoError(t, err)
	assert.Len(t, mock.Queries(), 2)
}

func TestFetchBuildings_DoesNotCacheFailure(t *testing.T) {
	ctx := context.Background()
	mock := overpass.NewFailingOverpassApiClientMock(&api.RemoteRequestFailedError{StatusCode: 504, Status: "504 Gateway Timeout"})
	svc := newService(mock, dao.NewRedisResponseCacheDAO(db.NewMockRedisClient(), 0))

	_, err := svc.FetchBuildings(ctx, "sydney")
	require.Error(t, err)
	_, err = svc.FetchBuildings(ctx, "sydney")
	require.Error(t, err)
	assert.Len(t, mock.Queries(), 2)
}

func TestRun_CacheHitReportsCachedSize(t *testing.T) {
	ctx := context.Background()
	mock := overpass.NewOverpassApiClientMock(bytes.Repeat([]byte("y"), 2500))
	svc := newService(mock, dao.NewRedisResponseCacheDAO(db.NewMockRedisClient(), 0))
	_, err := svc.FetchBuildings(ctx, "sydney")
	require.NoError(t, err)

	sink := &bufferSink{}
	var diag bytes.Buffer
	require.NoError(t, svc.Run(ctx, "sydney", sink.opener(), &diag))

	assert.Equal(t, "Loaded cached Overpass response, 2 kB\n", diag.String())
	assert.Equal(t, 2500, sink.Len())
	assert.Len(t, mock.Queries(), 1)
}

func TestRenderQuery(t *testing.T) {
	svc := newService(overpass.NewOverpassApiClientMock(nil), nil)

	query, err := svc.RenderQuery("sydney")
	require.NoError(t, err)
	assert.Equal(t, models.RenderBuildingQuery(models.BoundingBox{South: -33.94, West: 151.17, North: -33.84, East: 151.27}), query)

	_, err = svc.RenderQuery("")
	assert.ErrorIs(t, err, models.ErrUnknownCity)
}

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/jobpulse/internal/domain"
)

type fakeProvider struct {
	name string
	jobs []domain.Job
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Fetch(_ context.Context) []domain.Job { return p.jobs }

type captureSink struct {
	batches [][]domain.Job
	err     error
}

func (s *captureSink) Store(_ context.Context, jobs []domain.Job) error {
	s.batches = append(s.batches, jobs)
	return s.err
}

func makeJob(source, externalID string) domain.Job {
	return domain.Job{
		Source:     source,
		ExternalID: externalID,
		Title:      "Backend Developer",
	}
}

func TestService_StampsAndStores(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sink := &captureSink{}
	svc, err := NewService(
		WithProviders(&fakeProvider{name: "acme", jobs: []domain.Job{
			makeJob("acme", "a-1"),
			makeJob("acme", "a-2"),
		}}),
		WithSink(sink),
		WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	report, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.batches, 1)
	stored := sink.batches[0]
	require.Len(t, stored, 2)
	for _, j := range stored {
		assert.NotEqual(t, uuid.Nil, j.ID)
		assert.True(t, j.FetchedAt.Equal(now))
	}

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Fetched)
	assert.Equal(t, 2, report.Stored)
	assert.Equal(t, []domain.SourceReport{{Source: "acme", Fetched: 2}}, report.Sources)
	assert.True(t, report.StartedAt.Equal(now))
	assert.True(t, report.FinishedAt.Equal(now))
}

func TestService_DeduplicatesKeepingFirst(t *testing.T) {
	first := makeJob("acme", "a-1")
	first.Title = "first occurrence"
	second := makeJob("acme", "a-1")
	second.Title = "second occurrence"

	sink := &captureSink{}
	svc, err := NewService(
		WithProviders(&fakeProvider{name: "acme", jobs: []domain.Job{
			first, second, makeJob("acme", "a-2"),
		}}),
		WithSink(sink),
	)
	require.NoError(t, err)

	report, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.batches, 1)
	stored := sink.batches[0]
	require.Len(t, stored, 2)
	assert.Equal(t, "first occurrence", stored[0].Title)
	assert.Equal(t, 3, report.Fetched)
	assert.Equal(t, 2, report.Stored)
}

func TestService_PreservesUpstreamOrder(t *testing.T) {
	sink := &captureSink{}
	svc, err := NewService(
		WithProviders(&fakeProvider{name: "acme", jobs: []domain.Job{
			makeJob("acme", "c"),
			makeJob("acme", "a"),
			makeJob("acme", "b"),
		}}),
		WithSink(sink),
	)
	require.NoError(t, err)

	_, err = svc.Ingest(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.batches, 1)
	var ids []string
	for _, j := range sink.batches[0] {
		ids = append(ids, j.ExternalID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestService_SkipsUnkeyedJobs(t *testing.T) {
	sink := &captureSink{}
	svc, err := NewService(
		WithProviders(&fakeProvider{name: "acme", jobs: []domain.Job{
			makeJob("", "a-1"),
			makeJob("acme", ""),
		}}),
		WithSink(sink),
	)
	require.NoError(t, err)

	report, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sink.batches)
	assert.Equal(t, 2, report.Fetched)
	assert.Equal(t, 0, report.Stored)
}

func TestService_SinkErrorPropagates(t *testing.T) {
	sinkErr := errors.New("disk full")
	sink := &captureSink{err: sinkErr}
	svc, err := NewService(
		WithProviders(&fakeProvider{name: "acme", jobs: []domain.Job{makeJob("acme", "a-1")}}),
		WithSink(sink),
	)
	require.NoError(t, err)

	_, err = svc.Ingest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sinkErr)
}

func TestService_MultipleProviders(t *testing.T) {
	sink := &captureSink{}
	svc, err := NewService(
		WithProviders(
			&fakeProvider{name: "acme", jobs: []domain.Job{makeJob("acme", "shared-id")}},
			&fakeProvider{name: "globex", jobs: []domain.Job{makeJob("globex", "shared-id")}},
		),
		WithSink(sink),
	)
	require.NoError(t, err)

	report, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	// Same external id from different sources is not a duplicate.
	require.Len(t, sink.batches, 1)
	assert.Len(t, sink.batches[0], 2)
	require.Len(t, report.Sources, 2)
	assert.Equal(t, "acme", report.Sources[0].Source)
	assert.Equal(t, "globex", report.Sources[1].Source)
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(WithSink(&captureSink{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one provider")

	_, err = NewService(WithProviders(&fakeProvider{name: "acme"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink is required")
}

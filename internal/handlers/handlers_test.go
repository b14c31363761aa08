package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeline-studio/internal/catalog"
	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/models"
	"pipeline-studio/internal/sessions"
	"pipeline-studio/internal/store"
)

type testEnv struct {
	router    *mux.Router
	pipelines *store.PipelineStore
	queries   *store.QueryStore
	sessions  *sessions.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger, err := logging.NewZapLogger(logging.LogConfig{Level: logging.ErrorLevel, Output: io.Discard})
	require.NoError(t, err)

	env := &testEnv{
		pipelines: store.NewPipelineStore(
			store.WithLogger(logger),
			store.WithPipelines(store.FixturePipelines()...),
		),
		queries: store.NewQueryStore(
			store.WithQueryLogger(logger),
			store.WithQueries(store.FixtureQueries()...),
			store.WithQueryClock(func() time.Time {
				return time.Date(2025, time.November, 21, 10, 0, 0, 0, time.UTC)
			}),
		),
		sessions: sessions.NewManager(16, time.Minute, logger),
	}

	h := New(env.pipelines, env.queries, env.sessions, catalog.Default(), logger)

	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog/sources", h.GetSources).Methods("GET")
	api.HandleFunc("/catalog/outputs", h.GetOutputs).Methods("GET")
	api.HandleFunc("/pipelines", h.GetPipelines).Methods("GET")
	api.HandleFunc("/pipelines", h.CreatePipeline).Methods("POST")
	api.HandleFunc("/pipelines/{id}", h.GetPipeline).Methods("GET")
	api.HandleFunc("/pipelines/{id}", h.UpdatePipeline).Methods("PUT")
	api.HandleFunc("/pipelines/{id}", h.DeletePipeline).Methods("DELETE")
	api.HandleFunc("/pipelines/{id}/toggle", h.TogglePipeline).Methods("POST")
	api.HandleFunc("/builder", h.OpenBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}", h.GetBuilder).Methods("GET")
	api.HandleFunc("/builder/{sid}", h.PatchBuilder).Methods("PATCH")
	api.HandleFunc("/builder/{sid}/advance", h.AdvanceBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/retreat", h.RetreatBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/cancel", h.CancelBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/save", h.SaveBuilder).Methods("POST")
	api.HandleFunc("/builder/{sid}/sources/other", h.AddBuilderOtherSource).Methods("POST")
	api.HandleFunc("/builder/{sid}/sources/{id}/toggle", h.ToggleBuilderSource).Methods("POST")
	api.HandleFunc("/builder/{sid}/analyses/{kind}", h.AddBuilderAnalysis).Methods("POST")
	api.HandleFunc("/builder/{sid}/analyses/{index}", h.RemoveBuilderAnalysis).Methods("DELETE")
	api.HandleFunc("/queries", h.GetQueries).Methods("GET")
	api.HandleFunc("/queries", h.SaveQuery).Methods("POST")
	api.HandleFunc("/queries/{id}", h.DeleteQuery).Methods("DELETE")
	env.router = r

	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

// builderCall runs a builder operation and returns the decoded response
func (e *testEnv) builderCall(t *testing.T, method, path, body string) BuilderResponse {
	t.Helper()
	rr := e.do(t, method, path, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decodeBody[BuilderResponse](t, rr)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeBody[HealthResponse](t, rr)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 2, resp.Pipelines)
	assert.Equal(t, 0, resp.OpenBuilders)
	assert.Equal(t, 5, resp.CatalogSources)
}

func TestCatalogEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Sources", func(t *testing.T) {
		rr := env.do(t, "GET", "/api/catalog/sources", "")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeBody[SourcesResponse](t, rr)
		assert.Equal(t, 5, resp.Count)
		assert.Equal(t, "reddit", resp.Sources[0].ID)
		assert.False(t, resp.Sources[3].Enabled)
	})

	t.Run("Outputs", func(t *testing.T) {
		rr := env.do(t, "GET", "/api/catalog/outputs", "")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeBody[OutputsResponse](t, rr)
		assert.Equal(t, 6, resp.Count)
		assert.Contains(t, resp.Outputs, "Slack")
	})
}

func TestPipelineEndpoints(t *testing.T) {
	t.Run("ListAndGet", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "GET", "/api/pipelines", "")
		require.Equal(t, http.StatusOK, rr.Code)
		list := decodeBody[PipelinesResponse](t, rr)
		assert.Equal(t, 2, list.Count)
		assert.Equal(t, "1", list.Pipelines[0].ID)
		assert.Equal(t, "2", list.Pipelines[1].ID)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 2, list.TotalResults)

		rr = env.do(t, "GET", "/api/pipelines?page=2&per_page=1", "")
		paged := decodeBody[PipelinesResponse](t, rr)
		require.Equal(t, 1, paged.Count)
		assert.Equal(t, "2", paged.Pipelines[0].ID)
		assert.Equal(t, 2, paged.TotalPages)

		rr = env.do(t, "GET", "/api/pipelines/1", "")
		require.Equal(t, http.StatusOK, rr.Code)
		p := decodeBody[PipelineResponse](t, rr)
		assert.Equal(t, "Reddit Sentiment Analysis", p.Name)
		assert.Equal(t, []string{"Reddit"}, p.DataSources)
		assert.Contains(t, p.NextRun, "in ")
	})

	t.Run("GetUnknown", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "GET", "/api/pipelines/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "not_found", resp.Type)
	})

	t.Run("CreateWithDefaults", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "POST", "/api/pipelines", "")
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		resp := decodeBody[PipelineMutationResponse](t, rr)
		require.True(t, resp.Accepted)
		require.NotNil(t, resp.Pipeline)
		assert.NotEmpty(t, resp.Pipeline.ID)
		assert.Equal(t, models.DefaultPipelineName, resp.Pipeline.Name)
		assert.Equal(t, models.DefaultSchedule, resp.Pipeline.Schedule)
		assert.Equal(t, models.DefaultOutput, resp.Pipeline.Output)
		assert.Equal(t, models.StatusDraft, resp.Pipeline.Status)
		assert.Empty(t, resp.Pipeline.NextRun)
		assert.Equal(t, 3, env.pipelines.Len())
	})

	t.Run("CreateWithFields", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "POST", "/api/pipelines", `{"name":"Churn watch","data_sources":["Reddit","Zendesk"],"schedule":"Every hour","output":"Slack"}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		resp := decodeBody[PipelineMutationResponse](t, rr)
		require.NotNil(t, resp.Pipeline)
		assert.Equal(t, "Churn watch", resp.Pipeline.Name)
		assert.Equal(t, []string{"Reddit", "Zendesk"}, resp.Pipeline.DataSources)
		assert.Equal(t, "Every hour", resp.Pipeline.Schedule)
		assert.Equal(t, "Slack", resp.Pipeline.Output)
	})

	t.Run("CreateRejectsMalformedBodies", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "POST", "/api/pipelines", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = env.do(t, "POST", "/api/pipelines", `{"data_sources":["Reddit","Reddit"]}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "validation", resp.Type)

		assert.Equal(t, 2, env.pipelines.Len())
	})

	t.Run("Update", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "PUT", "/api/pipelines/1", `{"name":"Renamed"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[PipelineMutationResponse](t, rr)
		assert.True(t, resp.Accepted)
		require.NotNil(t, resp.Pipeline)
		assert.Equal(t, "Renamed", resp.Pipeline.Name)
		assert.Equal(t, "Google Sheets", resp.Pipeline.Output)

		rr = env.do(t, "PUT", "/api/pipelines/missing", `{"name":"Ghost"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		resp = decodeBody[PipelineMutationResponse](t, rr)
		assert.False(t, resp.Accepted)
		assert.Nil(t, resp.Pipeline)

		rr = env.do(t, "PUT", "/api/pipelines/1", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Toggle", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "POST", "/api/pipelines/1/toggle", "")
		resp := decodeBody[PipelineMutationResponse](t, rr)
		assert.True(t, resp.Accepted)
		assert.Equal(t, models.StatusPaused, resp.Pipeline.Status)

		rr = env.do(t, "POST", "/api/pipelines/1/toggle", "")
		resp = decodeBody[PipelineMutationResponse](t, rr)
		assert.True(t, resp.Accepted)
		assert.Equal(t, models.StatusActive, resp.Pipeline.Status)

		draft := env.pipelines.Create(models.PipelineFields{})
		rr = env.do(t, "POST", "/api/pipelines/"+draft.ID+"/toggle", "")
		resp = decodeBody[PipelineMutationResponse](t, rr)
		assert.False(t, resp.Accepted)
		assert.Equal(t, models.StatusDraft, resp.Pipeline.Status)

		rr = env.do(t, "POST", "/api/pipelines/missing/toggle", "")
		resp = decodeBody[PipelineMutationResponse](t, rr)
		assert.False(t, resp.Accepted)
	})

	t.Run("Delete", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "DELETE", "/api/pipelines/2", "")
		assert.True(t, decodeBody[PipelineMutationResponse](t, rr).Accepted)
		assert.Equal(t, 1, env.pipelines.Len())

		rr = env.do(t, "DELETE", "/api/pipelines/2", "")
		assert.False(t, decodeBody[PipelineMutationResponse](t, rr).Accepted)
	})
}

func TestBuilderCreateFlow(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/builder", "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	opened := decodeBody[BuilderResponse](t, rr)
	sid := opened.State.SessionID
	require.NotEmpty(t, sid)
	assert.Equal(t, "create", opened.State.Mode)
	assert.Equal(t, 0, opened.State.Step)
	assert.Equal(t, "Pipeline Name", opened.State.StepTitle)
	assert.False(t, opened.State.CanAdvance)
	assert.Equal(t, 1, env.sessions.Len())

	base := "/api/builder/" + sid

	// Step 0: name
	resp := env.builderCall(t, "POST", base+"/advance", "")
	assert.False(t, resp.Accepted)
	assert.Equal(t, 0, resp.State.Step)

	resp = env.builderCall(t, "PATCH", base, `{"name":"Support pulse"}`)
	assert.True(t, resp.Accepted)
	assert.True(t, resp.State.CanAdvance)

	resp = env.builderCall(t, "POST", base+"/advance", "")
	require.True(t, resp.Accepted)
	assert.Equal(t, 1, resp.State.Step)

	// Step 1: sources
	resp = env.builderCall(t, "POST", base+"/sources/slack/toggle", "")
	assert.False(t, resp.Accepted, "disabled sources cannot be selected")

	resp = env.builderCall(t, "POST", base+"/sources/reddit/toggle", "")
	assert.True(t, resp.Accepted)

	resp = env.builderCall(t, "POST", base+"/sources/other", `{"name":"  Discord "}`)
	assert.True(t, resp.Accepted)
	require.Len(t, resp.State.SelectedSources, 2)
	assert.Equal(t, "Discord", resp.State.SelectedSources[1].Name)
	assert.Equal(t, "other:Discord", resp.State.SelectedSources[1].ID)

	resp = env.builderCall(t, "POST", base+"/sources/other", `{"name":"Discord"}`)
	assert.False(t, resp.Accepted, "duplicate free-text source")

	resp = env.builderCall(t, "POST", base+"/sources/other", `{"name":"Reddit"}`)
	assert.False(t, resp.Accepted, "catalog source already selected")

	resp = env.builderCall(t, "POST", base+"/advance", "")
	require.True(t, resp.Accepted)
	assert.Equal(t, 2, resp.State.Step)

	// Step 2: analyses
	resp = env.builderCall(t, "POST", base+"/analyses/sentiment", "")
	assert.True(t, resp.Accepted)

	resp = env.builderCall(t, "POST", base+"/analyses/query", `{"query":"What do users say about pricing?"}`)
	assert.True(t, resp.Accepted)
	assert.Empty(t, resp.State.Inputs.Query)
	require.Len(t, resp.State.Draft.Analyses, 2)

	rr = env.do(t, "POST", base+"/analyses/bogus", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, "DELETE", base+"/analyses/first", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp = env.builderCall(t, "DELETE", base+"/analyses/7", "")
	assert.False(t, resp.Accepted)

	resp = env.builderCall(t, "DELETE", base+"/analyses/0", "")
	assert.True(t, resp.Accepted)
	require.Len(t, resp.State.Draft.Analyses, 1)
	assert.Equal(t, models.AnalysisQuery, resp.State.Draft.Analyses[0].Kind)

	resp = env.builderCall(t, "POST", base+"/advance", "")
	require.True(t, resp.Accepted)

	// Step 3: schedule
	resp = env.builderCall(t, "PATCH", base, `{"schedule":{"kind":"fortnightly"}}`)
	assert.False(t, resp.Accepted)

	resp = env.builderCall(t, "PATCH", base, `{"schedule":{"kind":"daily"}}`)
	assert.True(t, resp.Accepted)
	assert.Equal(t, "Daily at 9:00 AM", resp.State.Draft.Schedule)

	resp = env.builderCall(t, "POST", base+"/advance", "")
	require.True(t, resp.Accepted)
	assert.Equal(t, 4, resp.State.Step)

	// Step 4: output
	resp = env.builderCall(t, "POST", base+"/save", "")
	assert.False(t, resp.Accepted, "no output chosen yet")

	resp = env.builderCall(t, "PATCH", base, `{"output":"Carrier pigeon"}`)
	assert.False(t, resp.Accepted)

	resp = env.builderCall(t, "PATCH", base, `{"output":"Slack"}`)
	assert.True(t, resp.Accepted)

	resp = env.builderCall(t, "POST", base+"/save", "")
	require.True(t, resp.Accepted)
	assert.Equal(t, "saved", resp.State.Outcome)
	require.NotNil(t, resp.Pipeline)
	assert.Equal(t, "Support pulse", resp.Pipeline.Name)
	assert.Equal(t, []string{"Reddit", "Discord"}, resp.Pipeline.DataSources)
	assert.Equal(t, "Daily at 9:00 AM", resp.Pipeline.Schedule)
	assert.Equal(t, "Slack", resp.Pipeline.Output)
	assert.Equal(t, models.StatusDraft, resp.Pipeline.Status)

	assert.Equal(t, 3, env.pipelines.Len())
	assert.Equal(t, 0, env.sessions.Len())

	rr = env.do(t, "GET", base, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBuilderEditFlow(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/builder", `{"pipeline_id":"1"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	opened := decodeBody[BuilderResponse](t, rr)
	assert.Equal(t, "edit", opened.State.Mode)
	assert.Equal(t, "1", opened.State.PipelineID)
	assert.Equal(t, "Reddit Sentiment Analysis", opened.State.Draft.Name)
	assert.Equal(t, []string{"Reddit"}, opened.State.Draft.DataSources)
	assert.Equal(t, "Daily at 9:00 AM", opened.State.Draft.Schedule)
	assert.Equal(t, "Google Sheets", opened.State.Draft.Output)

	base := "/api/builder/" + opened.State.SessionID

	resp := env.builderCall(t, "PATCH", base, `{"name":"Reddit pulse"}`)
	require.True(t, resp.Accepted)
	for i := 0; i < 4; i++ {
		resp = env.builderCall(t, "POST", base+"/advance", "")
		require.True(t, resp.Accepted, "advance from step %d", i)
	}

	resp = env.builderCall(t, "POST", base+"/save", "")
	require.True(t, resp.Accepted)
	require.NotNil(t, resp.Pipeline)
	assert.Equal(t, "1", resp.Pipeline.ID)
	assert.Equal(t, "Reddit pulse", resp.Pipeline.Name)
	assert.Equal(t, models.StatusActive, resp.Pipeline.Status)

	assert.Equal(t, 2, env.pipelines.Len())
	p, ok := env.pipelines.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Reddit pulse", p.Name)
}

func TestBuilderOpenUnknownPipeline(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/builder", `{"pipeline_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 0, env.sessions.Len())
}

func TestBuilderRetreatFromFirstStepCancels(t *testing.T) {
	env := newTestEnv(t)

	opened := decodeBody[BuilderResponse](t, env.do(t, "POST", "/api/builder", ""))
	base := "/api/builder/" + opened.State.SessionID

	resp := env.builderCall(t, "POST", base+"/retreat", "")
	assert.True(t, resp.Accepted)
	assert.Equal(t, "cancelled", resp.State.Outcome)

	rr := env.do(t, "GET", base, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 2, env.pipelines.Len())
}

func TestBuilderCancel(t *testing.T) {
	env := newTestEnv(t)

	opened := decodeBody[BuilderResponse](t, env.do(t, "POST", "/api/builder", `{"pipeline_id":"2"}`))
	base := "/api/builder/" + opened.State.SessionID

	env.builderCall(t, "PATCH", base, `{"name":"Discarded"}`)
	resp := env.builderCall(t, "POST", base+"/cancel", "")
	assert.True(t, resp.Accepted)

	p, ok := env.pipelines.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Customer Support Insights", p.Name)
}

func TestBuilderUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/builder/nope"},
		{"POST", "/api/builder/nope/advance"},
		{"POST", "/api/builder/nope/save"},
		{"POST", "/api/builder/nope/sources/reddit/toggle"},
	} {
		rr := env.do(t, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, tc.path)
	}
}

func TestQueryEndpoints(t *testing.T) {
	t.Run("Search", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "GET", "/api/queries", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, decodeBody[QueriesResponse](t, rr).Count)

		rr = env.do(t, "GET", "/api/queries?q=SENTIMENT", "")
		resp := decodeBody[QueriesResponse](t, rr)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, 2, resp.Queries[0].ID)

		rr = env.do(t, "GET", "/api/queries?q=interviews", "")
		assert.Equal(t, 1, decodeBody[QueriesResponse](t, rr).Count)

		rr = env.do(t, "GET", "/api/queries?per_page=2&page=2", "")
		resp = decodeBody[QueriesResponse](t, rr)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, 3, resp.Queries[0].ID)
		assert.Equal(t, 3, resp.TotalResults)

		rr = env.do(t, "GET", "/api/queries?q=nothing-matches", "")
		resp = decodeBody[QueriesResponse](t, rr)
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Queries)
	})

	t.Run("SaveAndDelete", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, "POST", "/api/queries", `{"query":"  pricing complaints  "}`)
		require.Equal(t, http.StatusOK, rr.Code)
		saved := decodeBody[QueryMutationResponse](t, rr)
		require.True(t, saved.Accepted)
		require.NotNil(t, saved.Query)
		assert.Equal(t, 4, saved.Query.ID)
		assert.Equal(t, "pricing complaints", saved.Query.Query)
		assert.Equal(t, "All Data Sources", saved.Query.Context)
		assert.Equal(t, "Nov 21, 2025", saved.Query.Date)

		rr = env.do(t, "POST", "/api/queries", `{"query":"   "}`)
		assert.False(t, decodeBody[QueryMutationResponse](t, rr).Accepted)

		rr = env.do(t, "DELETE", "/api/queries/4", "")
		assert.True(t, decodeBody[QueryMutationResponse](t, rr).Accepted)

		rr = env.do(t, "DELETE", "/api/queries/4", "")
		assert.False(t, decodeBody[QueryMutationResponse](t, rr).Accepted)

		rr = env.do(t, "DELETE", "/api/queries/abc", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

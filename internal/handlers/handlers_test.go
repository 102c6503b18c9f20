package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type fakeAnalyzer struct {
	calls  int
	report *models.AnalysisReport
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, doc *models.Document) (*models.AnalysisReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	report := *f.report
	report.FileName = doc.FileName
	return &report, nil
}

type fakeWorker struct {
	tasks []services.AnalysisTask
	err   error
}

func (f *fakeWorker) Start(context.Context) {}
func (f *fakeWorker) Stop() {}

func (f *fakeWorker) EnqueueJob(task services.AnalysisTask) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, task)
	return nil
}

type testEnv struct {
	app       *fiber.App
	analyzer  *fakeAnalyzer
	worker    *fakeWorker
	jobs      repositories.JobRepository
	readiness *services.Readiness
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		analyzer:  &fakeAnalyzer{report: &models.AnalysisReport{ID: uuid.New(), OverallBand: models.BandGood}},
		worker:    &fakeWorker{},
		jobs:      repositories.NewMemoryJobRepository(time.Minute),
		readiness: services.NewReadiness(),
	}
	env.app = NewApp(Handlers{
		Health:  NewHealthHandler(env.readiness),
		Analyze: NewAnalyzeHandler(env.analyzer, 1<<20),
		Upload:  NewUploadHandler(env.jobs, env.worker, 1<<20),
		Result:  NewResultHandler(env.jobs),
		History: NewHistoryHandler(nil),
	}, AppOptions{BodyLimit: 2 << 20})
	return env
}

func multipartRequest(t *testing.T, path, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v), string(raw))
}

func TestAnalyze_ReturnsReport(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(multipartRequest(t, "/api/v1/analyze", "jane.pdf", "application/pdf", samplePDF), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report models.AnalysisReport
	decodeBody(t, resp, &report)
	assert.Equal(t, "jane.pdf", report.FileName)
	assert.Equal(t, 1, env.analyzer.calls)
}

func TestAnalyze_RejectsNonPDFBeforeProcessing(t *testing.T) {
	env := newTestEnv(t)
	docx := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	resp, err := env.app.Test(multipartRequest(t, "/api/v1/analyze", "cv.docx", docx, []byte("PK\x03\x04 word")), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "please upload a PDF file only")
	assert.Zero(t, env.analyzer.calls)
}

func TestAnalyze_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.analyzer.calls)
}

func TestAnalyze_PipelineErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrExtraction, fiber.StatusUnprocessableEntity},
		{services.ErrClientNotReady, fiber.StatusServiceUnavailable},
		{services.ErrResponseParse, fiber.StatusBadGateway},
		{services.ErrAIRequest, fiber.StatusBadGateway},
		{&services.ModelError{Message: "not a resume"}, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		env := newTestEnv(t)
		env.analyzer.err = tt.err

		resp, err := env.app.Test(multipartRequest(t, "/api/v1/analyze", "cv.pdf", "application/pdf", samplePDF), -1)
		require.NoError(t, err)

		assert.Equal(t, tt.want, resp.StatusCode, tt.err.Error())
	}
}

func TestUploadAndResult(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(multipartRequest(t, "/api/v1/upload", "cv.pdf", "application/pdf", samplePDF), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var upload models.UploadResponse
	decodeBody(t, resp, &upload)
	assert.Equal(t, string(models.StatusQueued), upload.Status)
	require.Len(t, env.worker.tasks, 1)
	assert.Equal(t, samplePDF, env.worker.tasks[0].Document.Data)

	id := uuid.MustParse(upload.ID)
	report := &models.AnalysisReport{ID: uuid.New(), FileName: "cv.pdf"}
	require.NoError(t, env.jobs.UpdateResult(context.Background(), id, report))

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/result/"+upload.ID, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.ResultResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, string(models.StatusCompleted), result.Status)
	require.NotNil(t, result.Result)
	assert.Equal(t, report.ID, result.Result.ID)
	assert.Nil(t, result.ErrorMessage)
}

func TestUpload_QueueClosed(t *testing.T) {
	env := newTestEnv(t)
	env.worker.err = services.ErrWorkerStopped

	resp, err := env.app.Test(multipartRequest(t, "/api/v1/upload", "cv.pdf", "application/pdf", samplePDF), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestResult_FailedJob(t *testing.T) {
	env := newTestEnv(t)
	job := &models.AnalysisJob{ID: uuid.New(), Status: models.StatusQueued}
	require.NoError(t, env.jobs.Create(context.Background(), job))
	require.NoError(t, env.jobs.UpdateError(context.Background(), job.ID, "failed to parse AI response"))

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/result/"+job.ID.String(), nil), -1)
	require.NoError(t, err)

	var result models.ResultResponse
	decodeBody(t, resp, &result)
	assert.Equal(t, string(models.StatusFailed), result.Status)
	assert.Nil(t, result.Result)
	require.NotNil(t, result.ErrorMessage)
	assert.Equal(t, "failed to parse AI response", *result.ErrorMessage)
}

func TestResult_BadAndUnknownIDs(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/result/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/result/"+uuid.NewString(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	var health models.HealthResponse
	decodeBody(t, resp, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.AIReady)

	env.readiness.Resolve(services.ErrClientNotReady)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	decodeBody(t, resp, &health)
	assert.Equal(t, "degraded", health.Status)
	assert.NotEmpty(t, health.AIError)
}

func TestHistory_Disabled(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/history", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

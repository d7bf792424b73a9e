package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/handler/http/response"
)

// fakePayrollService returns canned results so the handler's decoding,
// status codes and envelope shape can be pinned down without a database.
type fakePayrollService struct {
	generateErr error
	generated   payroll.PaySlipResponse
	summary     payroll.GenerateAllResponse
}

func (f *fakePayrollService) GeneratePaySlip(_ context.Context, req payroll.GeneratePaySlipRequest) (payroll.PaySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaySlipResponse{}, err
	}
	if f.generateErr != nil {
		return payroll.PaySlipResponse{}, f.generateErr
	}
	return f.generated, nil
}

func (f *fakePayrollService) GenerateAll(_ context.Context, _ payroll.GenerateAllRequest) (payroll.GenerateAllResponse, error) {
	return f.summary, nil
}

func (f *fakePayrollService) ListPaySlips(_ context.Context, _ payroll.PaySlipFilter) ([]payroll.PaySlipResponse, error) {
	return nil, nil
}

func (f *fakePayrollService) GetMyPaySlips(_ context.Context) ([]payroll.PaySlipResponse, error) {
	return nil, nil
}

func (f *fakePayrollService) GetSalaryStructure(_ context.Context, _ string) (payroll.SalaryStructureResponse, error) {
	return payroll.SalaryStructureResponse{}, payroll.ErrMissingSalaryStructure
}

func (f *fakePayrollService) UpsertSalaryStructure(_ context.Context, _ payroll.UpsertSalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	return payroll.SalaryStructureResponse{}, nil
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestGeneratePaySlipHandler(t *testing.T) {
	svc := &fakePayrollService{
		generated: payroll.PaySlipResponse{
			ID:         "slip-1",
			EmployeeID: "e1",
			Month:      "September",
			Year:       2025,
			NetSalary:  decimal.RequireFromString("66733.33"),
		},
	}
	handler := NewPayrollHandler(svc)

	body := bytes.NewBufferString(`{"employee_id":"e1","month":"September","year":2025}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/generate", body)
	rec := httptest.NewRecorder()

	handler.GeneratePaySlip(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.True(t, envelope.Success)
}

func TestGeneratePaySlipHandlerConflict(t *testing.T) {
	svc := &fakePayrollService{generateErr: payroll.ErrSlipAlreadyGenerated}
	handler := NewPayrollHandler(svc)

	body := bytes.NewBufferString(`{"employee_id":"e1","month":"September","year":2025}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/generate", body)
	rec := httptest.NewRecorder()

	handler.GeneratePaySlip(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestGeneratePaySlipHandlerValidation(t *testing.T) {
	handler := NewPayrollHandler(&fakePayrollService{})

	body := bytes.NewBufferString(`{"employee_id":"","month":"Sep","year":25}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/generate", body)
	rec := httptest.NewRecorder()

	handler.GeneratePaySlip(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "month")
}

func TestGeneratePaySlipHandlerBadBody(t *testing.T) {
	handler := NewPayrollHandler(&fakePayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/generate",
		bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	handler.GeneratePaySlip(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateAllHandlerEmptyBody(t *testing.T) {
	svc := &fakePayrollService{
		summary: payroll.GenerateAllResponse{
			Month:     "September",
			Year:      2025,
			Generated: 3,
			Skipped:   1,
			SkipReasons: map[string]int{
				payroll.SkipReasonMissingSalaryStructure: 1,
			},
		},
	}
	handler := NewPayrollHandler(svc)

	// Generate-all takes an optional body; none at all must be accepted.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/payslips/generate-all", nil)
	rec := httptest.NewRecorder()

	handler.GenerateAll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.True(t, envelope.Success)
}

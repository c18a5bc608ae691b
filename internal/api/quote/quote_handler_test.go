package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baldotina/go-trip-quotes/internal/types"
)

// MockQuoteService is a mock implementation of the quote Service interface
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) GenerateQuote(ctx context.Context, req types.TripRequest) (*types.Proposal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Proposal), args.Error(1)
}

func (m *MockQuoteService) GetProposal(ctx context.Context, proposalID uuid.UUID) (*types.Proposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Proposal), args.Error(1)
}

func TestGenerateQuoteHandler(t *testing.T) {
	mockService := new(MockQuoteService)
	handler := NewQuoteHandler(mockService, slog.Default())

	req := madridBarcelonaRoma()
	proposal := &types.Proposal{ID: uuid.New(), Request: req}
	mockService.On("GenerateQuote", mock.Anything, req).Return(proposal, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.GenerateQuote(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got types.Proposal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, proposal.ID, got.ID)
	mockService.AssertExpectations(t)
}

func TestGenerateQuoteHandlerRejectsInvalidRequest(t *testing.T) {
	mockService := new(MockQuoteService)
	handler := NewQuoteHandler(mockService, slog.Default())

	// Single city fails validation before the service is reached.
	req := types.TripRequest{
		CityIDs:     []string{"madrid"},
		TotalDays:   5,
		Travelers:   2,
		Budget:      1000,
		Preferences: []string{types.PrefCultura},
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.GenerateQuote(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertNotCalled(t, "GenerateQuote")
}

func TestGenerateQuoteHandlerRejectsMalformedBody(t *testing.T) {
	mockService := new(MockQuoteService)
	handler := NewQuoteHandler(mockService, slog.Default())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.GenerateQuote(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

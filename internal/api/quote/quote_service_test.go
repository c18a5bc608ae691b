package quote

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
)

func TestGenerateQuoteStoresProposal(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	service := NewServiceImpl(cat, slog.Default())
	ctx := context.Background()

	proposal, err := service.GenerateQuote(ctx, madridBarcelonaRoma())
	require.NoError(t, err)
	require.NotNil(t, proposal)
	assert.NotEqual(t, uuid.Nil, proposal.ID)
	assert.Len(t, proposal.Routes, 3)

	fetched, err := service.GetProposal(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal, fetched)
}

func TestGetProposalNotFound(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	service := NewServiceImpl(cat, slog.Default())

	_, err = service.GetProposal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

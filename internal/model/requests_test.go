package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
)

func TestClassifyRequest_NormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      ClassifyRequest
		wantType CommunicationType
		wantErr  []common.Violation
	}{
		{
			name:     "defaults type to email",
			req:      ClassifyRequest{Content: "  Need a rate Dallas to Houston  "},
			wantType: CommunicationEmail,
		},
		{
			name:     "keeps call type",
			req:      ClassifyRequest{Content: "transcript", Type: CommunicationCall},
			wantType: CommunicationCall,
		},
		{
			name:     "blank content",
			req:      ClassifyRequest{Content: "   "},
			wantType: CommunicationEmail,
			wantErr:  []common.Violation{{Field: "content", Constraint: "required"}},
		},
		{
			name:     "document is not a classify channel",
			req:      ClassifyRequest{Content: "x", Type: CommunicationDocument},
			wantType: CommunicationDocument,
			wantErr:  []common.Violation{{Field: "type", Constraint: "must be one of [email, call]"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			assert.Equal(t, tt.wantType, tt.req.Type)

			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var inputErr *common.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantErr, inputErr.Violations)
			assert.True(t, errors.Is(err, common.ErrInvalidInput))
		})
	}
}

func TestBidDraftRequest_Defaults(t *testing.T) {
	req := BidDraftRequest{Content: "Quote for 2 reefers"}
	req.Normalize()

	assert.Equal(t, ResponseEmail, req.ResponseType)
	assert.Equal(t, ToneProfessional, req.Tone)
	assert.NoError(t, req.Validate())

	req.Tone = "sarcastic"
	var inputErr *common.InputError
	require.ErrorAs(t, req.Validate(), &inputErr)
	assert.Equal(t, "tone", inputErr.Violations[0].Field)
}

func TestJournalEntryRequest_Validate(t *testing.T) {
	t.Run("missing invoice data", func(t *testing.T) {
		req := JournalEntryRequest{}
		req.Normalize()
		assert.Equal(t, TransactionPayable, req.TransactionType)

		var inputErr *common.InputError
		require.ErrorAs(t, req.Validate(), &inputErr)
		assert.Equal(t, []common.Violation{{Field: "invoiceData", Constraint: "required"}}, inputErr.Violations)
	})

	t.Run("reports every nested field", func(t *testing.T) {
		req := JournalEntryRequest{InvoiceData: &InvoiceData{Vendor: " "}, TransactionType: TransactionReceipt}
		req.Normalize()

		var inputErr *common.InputError
		require.ErrorAs(t, req.Validate(), &inputErr)
		assert.ElementsMatch(t, []common.Violation{
			{Field: "invoiceData.invoiceNumber", Constraint: "required"},
			{Field: "invoiceData.vendor", Constraint: "required"},
			{Field: "invoiceData.amount", Constraint: "must be > 0"},
		}, inputErr.Violations)
	})

	t.Run("valid", func(t *testing.T) {
		req := JournalEntryRequest{InvoiceData: &InvoiceData{InvoiceNumber: "EF-1", Vendor: "Elite Freight", Amount: 2450}}
		req.Normalize()
		assert.NoError(t, req.Validate())
	})
}

func TestSummarizeAndChatRequests(t *testing.T) {
	s := SummarizeRequest{Content: "call notes", Type: CommunicationDocument}
	s.Normalize()
	assert.NoError(t, s.Validate())

	c := ChatRequest{Message: "\n\t"}
	c.Normalize()
	assert.ErrorIs(t, c.Validate(), common.ErrInvalidInput)
}

func TestExtractInvoiceRequest_Validate(t *testing.T) {
	r := ExtractInvoiceRequest{Content: "", Filename: "inv.pdf"}
	r.Normalize()
	assert.ErrorIs(t, r.Validate(), common.ErrInvalidInput)

	r.Content = "Invoice #EF-2024-1156"
	assert.NoError(t, r.Validate())
}

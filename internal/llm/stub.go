package llm

import (
	"context"
	"fmt"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

// stubClient answers without a network call when no API key is configured.
// Replies are chosen by task, never by inspecting message content.
type stubClient struct{}

func newStubClient() *stubClient {
	return &stubClient{}
}

// Complete returns the canned reply for opts.Task.
func (s *stubClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", providerError("stub", err)
	}

	switch opts.Task {
	case model.TaskClassify:
		return stubClassification, nil
	case model.TaskDraftBid:
		return stubBidDraft, nil
	case model.TaskExtractInvoice:
		return stubInvoice, nil
	case model.TaskJournalEntry:
		return stubJournalEntry, nil
	case model.TaskSummarize:
		return stubSummary, nil
	case model.TaskChat:
		return fmt.Sprintf(stubChat, lastUserMessage(messages)), nil
	default:
		return "", fmt.Errorf("%w: no API key configured and no offline reply for task %q", common.ErrMissingConfig, opts.Task)
	}
}

func lastUserMessage(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

const stubClassification = `{"bucket":"leads","intent":"rate_request","priority":"high","confidence":0.95,"reasoning":"Email contains rate request for freight shipment with urgency indicators"}`

const stubBidDraft = `Thank you for your interest in our transportation services.

Based on your shipment requirements:
- Origin: Chicago, IL
- Destination: Denver, CO
- Commodity: Electronics
- Weight: 45,000 lbs

We can provide competitive service at $3,200 for this load, which includes:
✓ Experienced driver with electronics handling experience
✓ Real-time tracking and updates
✓ $100K cargo insurance coverage
✓ Pickup within 24 hours

This rate is valid for 48 hours. We have excellent availability for next week and can guarantee on-time delivery.

Please let me know if you'd like to proceed or if you have any questions.

Best regards,
Sevos Logistics Team`

const stubInvoice = `{"invoiceNumber":"EF-2024-1156","vendor":"Elite Freight LLC","amount":2450.00,"dueDate":"2024-02-15","lineItems":[{"description":"Transportation: Dallas, TX to Houston, TX","quantity":1,"unitPrice":2450.00,"total":2450.00}]}`

const stubJournalEntry = `{"description":"Carrier invoice from Elite Freight LLC - EF-2024-1156","entries":[{"account":"Carrier Costs","accountNumber":"5000","debit":2450.00,"description":"Carrier payment - Elite Freight LLC"},{"account":"Accounts Payable","accountNumber":"2000","credit":2450.00,"description":"Payable to Elite Freight LLC"}],"totalDebits":2450.00,"totalCredits":2450.00,"balanced":true}`

const stubSummary = `{"summary":"Customer inquiry about freight capacity and rates for regular shipping lane","keyPoints":["Needs regular weekly service between LA and Phoenix","Volume: 3-4 loads per week","Requesting competitive pricing","Interested in dedicated service"],"actionItems":["Prepare competitive rate quote","Schedule follow-up call","Check carrier availability for dedicated service"],"urgency":"high"}`

const stubChat = `I understand you're asking about %q. In a trucking brokerage context, this typically involves coordinating between shippers and carriers while ensuring:

• Competitive rates and reliable service
• Proper documentation and compliance
• Real-time tracking and communication
• Risk management and insurance coverage

For specific assistance with your freight needs, I'd recommend speaking with one of our logistics specialists who can provide detailed guidance based on your unique requirements.

Is there a particular aspect of freight brokerage you'd like me to explain further?`

package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

func TestStubClient_JSONTasks(t *testing.T) {
	stub := newStubClient()
	for _, task := range []model.Task{
		model.TaskClassify,
		model.TaskExtractInvoice,
		model.TaskJournalEntry,
		model.TaskSummarize,
	} {
		t.Run(string(task), func(t *testing.T) {
			text, err := stub.Complete(context.Background(), nil, Options{Task: task})
			require.NoError(t, err)

			var obj map[string]any
			assert.NoError(t, json.Unmarshal([]byte(text), &obj))
		})
	}
}

func TestStubClient_DispatchIgnoresContent(t *testing.T) {
	stub := newStubClient()
	// The message talks about invoices, but the task decides the reply.
	msgs := []Message{{Role: RoleUser, Content: "please extract this invoice and summarize it"}}

	text, err := stub.Complete(context.Background(), msgs, Options{Task: model.TaskClassify})
	require.NoError(t, err)
	assert.Equal(t, stubClassification, text)

	again, err := stub.Complete(context.Background(), msgs, Options{Task: model.TaskClassify})
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestStubClient_DraftBidAndChat(t *testing.T) {
	stub := newStubClient()

	text, err := stub.Complete(context.Background(), nil, Options{Task: model.TaskDraftBid})
	require.NoError(t, err)
	assert.Contains(t, text, "$3,200")

	text, err = stub.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "What is a reefer?"},
	}, Options{Task: model.TaskChat})
	require.NoError(t, err)
	assert.Contains(t, text, `"What is a reefer?"`)
}

func TestStubClient_UnknownTaskIsConfigurationError(t *testing.T) {
	_, err := newStubClient().Complete(context.Background(), nil, Options{Task: "translate"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.NotErrorIs(t, err, common.ErrProvider)
}

func TestStubClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newStubClient().Complete(ctx, nil, Options{Task: model.TaskClassify})
	assert.ErrorIs(t, err, common.ErrProvider)
}

package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

func TestParser_Parse(t *testing.T) {
	input := "الاسم : أحمد\nالايچينت : سارة\nالمبلغ : 1190 + 65\n\n" +
		"الاسم : علي\nبدون مبلغ\n\n" +
		"الاسم : منى\nالمبلغ : 1.2.3\n\n" +
		"المبلغ : 300"

	outcomes := NewParser(NewSegmenter(0)).Parse(input)
	require.Len(t, outcomes, 4)

	first := outcomes[0]
	require.True(t, first.Accepted())
	assert.Nil(t, first.Rejection)
	assert.Equal(t, "plus", first.Pattern)
	assert.Equal(t, "أحمد", first.Order.CustomerName)
	assert.Equal(t, "سارة", first.Order.Agent)
	assert.Equal(t, "1255", first.Order.Amount.String())

	require.NotNil(t, outcomes[1].Rejection)
	assert.Equal(t, domain.RejectNoAmount, outcomes[1].Rejection.Reason)
	assert.Nil(t, outcomes[1].Order)

	require.NotNil(t, outcomes[2].Rejection)
	assert.Equal(t, domain.RejectMalformedAmount, outcomes[2].Rejection.Reason)

	last := outcomes[3]
	require.True(t, last.Accepted())
	assert.Equal(t, domain.UnknownCustomer, last.Order.CustomerName)
	assert.Empty(t, last.Order.Agent)
	assert.Equal(t, 3, last.Index)

	orders := domain.AcceptedOrders(outcomes)
	assert.Len(t, orders, 2)
	assert.Equal(t, map[domain.RejectReason]int{
		domain.RejectNoAmount:        1,
		domain.RejectMalformedAmount: 1,
	}, domain.RejectionsByReason(outcomes))
}

func TestParser_ConversaExportada(t *testing.T) {
	outcomes := NewParser(NewSegmenter(DefaultMinChatBlockLength)).Parse(chatExport)
	require.Len(t, outcomes, 2)

	require.True(t, outcomes[0].Accepted())
	assert.Equal(t, "عوض محمد", outcomes[0].Order.CustomerName)
	assert.Equal(t, "1255", outcomes[0].Order.Amount.String())

	require.NotNil(t, outcomes[1].Rejection)
	assert.Equal(t, domain.RejectTooShort, outcomes[1].Rejection.Reason)
}

func TestParseBlock_Vazio(t *testing.T) {
	outcome := ParseBlock(0, "")

	require.NotNil(t, outcome.Rejection)
	assert.Equal(t, domain.RejectEmptyBlock, outcome.Rejection.Reason)
	assert.False(t, outcome.Accepted())
}

func TestExtractAgent(t *testing.T) {
	tests := []struct {
		block string
		want  string
	}{
		{block: "الايچينت : سارة", want: "سارة"},
		{block: "ايچينت: منى", want: "منى"},
		{block: "الإيجنت : هدى", want: "هدى"},
		{block: "الاسم : أحمد", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAgent(tt.block))
		})
	}
}

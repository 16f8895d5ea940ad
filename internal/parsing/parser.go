package parsing

import (
	"fmt"
	"unicode/utf8"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

type Parser struct {
	segmenter Segmenter
}

func NewParser(segmenter Segmenter) *Parser {
	return &Parser{segmenter: segmenter}
}

// Parse segmenta o texto e devolve um resultado por bloco, aceito ou rejeitado
func (p *Parser) Parse(text string) []domain.BlockOutcome {
	blocks := p.segmenter.Segment(text)

	outcomes := make([]domain.BlockOutcome, 0, len(blocks))
	for i, block := range blocks {
		if block.TooShort {
			outcomes = append(outcomes, domain.BlockOutcome{
				Index: i,
				Block: block.Text,
				Rejection: &domain.Rejection{
					Reason: domain.RejectTooShort,
					Detail: fmt.Sprintf("block has %d characters, minimum is %d",
						utf8.RuneCountInString(block.Text), p.segmenter.MinChatBlockLength),
				},
			})
			continue
		}

		outcomes = append(outcomes, ParseBlock(i, block.Text))
	}

	return outcomes
}

// ParseBlock extrai o pedido de um único bloco
func ParseBlock(index int, block string) domain.BlockOutcome {
	outcome := domain.BlockOutcome{Index: index, Block: block}

	if block == "" {
		outcome.Rejection = &domain.Rejection{Reason: domain.RejectEmptyBlock, Detail: "block is empty"}
		return outcome
	}

	result := ExtractAmount(block)
	outcome.Pattern = result.Rule
	if !result.OK() {
		outcome.Rejection = &domain.Rejection{Reason: result.Reason, Detail: result.Detail}
		return outcome
	}

	outcome.Order = &domain.ParsedOrder{
		CustomerName: ExtractCustomerName(block),
		Agent:        ExtractAgent(block),
		Amount:       result.Amount,
	}

	return outcome
}

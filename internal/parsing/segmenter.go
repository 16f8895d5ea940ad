package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const DefaultMinChatBlockLength = 50

type SegmentMode string

const (
	ModeDelimited  SegmentMode = "delimited"
	ModeChatExport SegmentMode = "chat_export"
)

// assinatura de mensagem do WhatsApp (iOS): [17/7/2025، 12:37:42 ص] ~ Nome:
var chatSignature = regexp.MustCompile(bidi + `\[` + chatDate + `[،,]\s*` + chatTime + `\]\s*~?\s*[^:\n]+:`)

var blankLineRun = regexp.MustCompile(`\n[ \t\x{00A0}]*\n\s*`)

// Block é um trecho do texto que representa um pedido
type Block struct {
	Text     string
	Mode     SegmentMode
	TooShort bool
}

type Segmenter struct {
	MinChatBlockLength int
}

func NewSegmenter(minChatBlockLength int) Segmenter {
	if minChatBlockLength <= 0 {
		minChatBlockLength = DefaultMinChatBlockLength
	}
	return Segmenter{MinChatBlockLength: minChatBlockLength}
}

// IsChatExport indica se o texto bruto vem de uma conversa exportada
func IsChatExport(text string) bool {
	return chatSignature.MatchString(text)
}

// Segment divide o texto em blocos, um por pedido. Blocos vazios são descartados.
func (s Segmenter) Segment(text string) []Block {
	if IsChatExport(text) {
		return s.segmentChat(text)
	}
	return segmentDelimited(Normalize(text))
}

func (s Segmenter) segmentChat(text string) []Block {
	minLength := s.MinChatBlockLength
	if minLength <= 0 {
		minLength = DefaultMinChatBlockLength
	}

	var blocks []Block
	for _, chunk := range chatSignature.Split(text, -1) {
		cleaned := strings.TrimSpace(normalizeChatChunk(chunk))
		if cleaned == "" {
			continue
		}

		blocks = append(blocks, Block{
			Text:     cleaned,
			Mode:     ModeChatExport,
			TooShort: utf8.RuneCountInString(cleaned) < minLength,
		})
	}

	return blocks
}

func segmentDelimited(text string) []Block {
	var blocks []Block
	for _, part := range blankLineRun.Split(text, -1) {
		for _, chunk := range splitBeforeMarker(part) {
			cleaned := strings.TrimSpace(chunk)
			if cleaned == "" {
				continue
			}
			blocks = append(blocks, Block{Text: cleaned, Mode: ModeDelimited})
		}
	}
	return blocks
}

// splitBeforeMarker corta o texto antes de cada marcador de nome, mantendo o
// marcador no bloco seguinte
func splitBeforeMarker(text string) []string {
	indexes := nameMarker.FindAllStringIndex(text, -1)
	if len(indexes) == 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(indexes)+1)
	start := 0
	for _, idx := range indexes {
		if idx[0] > start {
			chunks = append(chunks, text[start:idx[0]])
		}
		start = idx[0]
	}
	chunks = append(chunks, text[start:])

	return chunks
}

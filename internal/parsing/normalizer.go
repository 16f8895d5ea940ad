package parsing

import (
	"regexp"
	"strings"
)

// bidi casa as marcas de direção que o WhatsApp insere em volta de datas e nomes
const bidi = `[\x{200E}\x{200F}\x{202A}-\x{202E}\x{2066}-\x{2069}]*`

const (
	chatDate = bidi + `\d{1,2}` + bidi + `/` + bidi + `\d{1,2}` + bidi + `/` + bidi + `\d{2,4}` + bidi
	chatTime = bidi + `\d{1,2}:\d{2}(?::\d{2})?` + bidi + `\s*` + bidi + `(?:[صم]|[AaPp]\.?[Mm]\.?)?` + bidi
)

var (
	// [17/7/2025، 12:37:42 ص] ~ Nome:
	bracketHeader = regexp.MustCompile(`^\s*` + bidi + `\[` + chatDate + `[،,]\s*` + chatTime + `\]\s*~?\s*([^:\n]+):[ \t]?`)

	// 17/07/2025, 11:27 PM - Nome:
	dashHeader = regexp.MustCompile(`^\s*` + chatDate + `[،,]?\s*` + chatTime + `\s*-\s*([^:\n]+):[ \t]?`)

	// 17/07/2025, 11:27 PM - (mensagem de sistema, sem remetente)
	dashTimestamp = regexp.MustCompile(`^\s*` + chatDate + `[،,]?\s*` + chatTime + `\s*-\s*`)

	editMarker = regexp.MustCompile(bidi + `<(?:This message was edited|تم تعديل هذه الرسالة)>`)

	bidiMarks = regexp.MustCompile(bidi)

	systemNotices = []*regexp.Regexp{
		regexp.MustCompile(`(?i)joined using this group's invite link`),
		regexp.MustCompile(`(?i)changed (?:the subject|this group's icon|the group description)`),
		regexp.MustCompile(`(?i)messages and calls are end-to-end encrypted`),
		regexp.MustCompile(`انضمّ?(?:ت)? باستخدام رابط الدعوة`),
		regexp.MustCompile(`الرسائل والمكالمات مشفرة`),
	}

	// Só valem em conversas exportadas: em texto colado casariam linhas de pedido
	exportNotices = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[^:]{1,60}\s(?:left|joined)$`),
		regexp.MustCompile(`(?i)^[^:]{1,60}\s(?:added|removed)\s[^:]{1,60}$`),
		regexp.MustCompile(`(?i)^[^:]{0,60}created group`),
		regexp.MustCompile(`^[^:]{1,60}\s(?:غادر|غادرت|انضم|انضمت)$`),
		regexp.MustCompile(`^[^:]{1,60}\s(?:أضاف|أضافت|أزال|أزالت)\s[^:]{1,60}$`),
		regexp.MustCompile(`^[^:]{0,60}أنشأ (?:ال)?مجموعة`),
	}

	mediaPlaceholders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^<?(?:media|image|video|audio|sticker|document|gif|contact card) omitted>?$`),
		regexp.MustCompile(`^<?تم استبعاد الوسائط>?$`),
		regexp.MustCompile(`(?i)^(?:this message was deleted|you deleted this message)$`),
		regexp.MustCompile(`^(?:تم حذف هذه الرسالة|لقد حذفت هذه الرسالة)\.?$`),
	}
)

// Normalize remove do texto os metadados de conversas exportadas do WhatsApp:
// cabeçalhos de data/hora/remetente, avisos de sistema, mídias omitidas e
// marcas de edição. Linhas que não são metadados passam sem alteração.
// Cada cabeçalho removido vira uma linha em branco, de modo que cada
// mensagem comece um novo bloco. Linhas de sistema sem remetente e avisos
// genéricos só são descartados quando o texto tem cabeçalho de mensagem.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	return normalizeLines(lines, hasMessageHeader(lines))
}

// normalizeChatChunk limpa um trecho já separado de uma conversa exportada
func normalizeChatChunk(chunk string) string {
	chunk = strings.ReplaceAll(chunk, "\r\n", "\n")
	return normalizeLines(strings.Split(chunk, "\n"), true)
}

func normalizeLines(lines []string, export bool) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		content, header := stripMessageHeader(line, export)
		if header == headerSystem {
			continue
		}

		content = editMarker.ReplaceAllString(content, "")
		if isSystemNotice(content, export) || isMediaPlaceholder(content) {
			continue
		}

		if header == headerMessage {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			if strings.TrimSpace(content) == "" {
				continue
			}
		}

		out = append(out, content)
	}

	return strings.Join(out, "\n")
}

type headerKind int

const (
	headerNone headerKind = iota
	headerMessage
	headerSystem
)

func hasMessageHeader(lines []string) bool {
	for _, line := range lines {
		if bracketHeader.MatchString(line) || dashHeader.MatchString(line) {
			return true
		}
	}
	return false
}

// stripMessageHeader remove o prefixo de data/hora/remetente de uma linha
func stripMessageHeader(line string, export bool) (string, headerKind) {
	if loc := bracketHeader.FindStringIndex(line); loc != nil {
		return line[loc[1]:], headerMessage
	}

	if loc := dashHeader.FindStringIndex(line); loc != nil {
		return line[loc[1]:], headerMessage
	}

	// Em conversa exportada, data e hora sem remetente é mensagem de sistema
	if export && dashTimestamp.MatchString(line) {
		return "", headerSystem
	}

	return line, headerNone
}

func isSystemNotice(line string, export bool) bool {
	clean := strings.TrimSpace(bidiMarks.ReplaceAllString(line, ""))
	if clean == "" {
		return false
	}
	if matchesAny(systemNotices, clean) {
		return true
	}
	return export && matchesAny(exportNotices, clean)
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func isMediaPlaceholder(line string) bool {
	clean := strings.TrimSpace(bidiMarks.ReplaceAllString(line, ""))
	if clean == "" {
		return false
	}
	return matchesAny(mediaPlaceholders, clean)
}

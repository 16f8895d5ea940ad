package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Texto comum não é alterado",
			input: "الاسم : محمد\nالعنوان : القاهرة\nالمبلغ : 100",
			want:  "الاسم : محمد\nالعنوان : القاهرة\nالمبلغ : 100",
		},
		{
			name: "Cabeçalhos do Android viram blocos separados",
			input: "17/07/2025, 11:27 PM - Ahmed: الاسم : محمد\n" +
				"المبلغ : 100\n" +
				"17/07/2025, 11:30 PM - Sara: الاسم : علي\n" +
				"المبلغ : 200",
			want: "الاسم : محمد\nالمبلغ : 100\n\nالاسم : علي\nالمبلغ : 200",
		},
		{
			name:  "Cabeçalho do Android em 24 horas",
			input: "17/07/2025, 23:27 - Ahmed: المبلغ : 100",
			want:  "المبلغ : 100",
		},
		{
			name:  "Cabeçalho entre colchetes do iOS",
			input: "[‏17‏/7‏/2025، 12:37:42 ص] ~ روان محمود: الاسم : عوض",
			want:  "الاسم : عوض",
		},
		{
			name: "Mensagens de sistema são descartadas",
			input: "17/07/2025, 11:20 PM - Ahmed joined using this group's invite link\n" +
				"Messages and calls are end-to-end encrypted. No one outside of this chat can read them.\n" +
				"الاسم : محمد",
			want: "الاسم : محمد",
		},
		{
			name: "Avisos genéricos são descartados em conversa exportada",
			input: "17/07/2025, 11:27 PM - Ahmed: الاسم : محمد\n" +
				"17/07/2025, 11:28 PM - Sara left\n" +
				"Omar left\n" +
				"المبلغ : 100",
			want: "الاسم : محمد\nالمبلغ : 100",
		},
		{
			name:  "Texto colado mantém linhas com forma de aviso ou data",
			input: "الاسم : محمد\nالعميل left\n17/07/2025 05:00 - توصيل بعد الظهر\nالعميل غادر\nالمبلغ : 100",
			want:  "الاسم : محمد\nالعميل left\n17/07/2025 05:00 - توصيل بعد الظهر\nالعميل غادر\nالمبلغ : 100",
		},
		{
			name:  "Mídias omitidas e mensagens apagadas são descartadas",
			input: "الاسم : محمد\n<Media omitted>\n<تم استبعاد الوسائط>\nThis message was deleted\nالمبلغ : 100",
			want:  "الاسم : محمد\nالمبلغ : 100",
		},
		{
			name:  "Marca de edição é removida e a linha mantida",
			input: "المبلغ : 100‏<تم تعديل هذه الرسالة>\nالاسم : محمد <This message was edited>",
			want:  "المبلغ : 100\nالاسم : محمد ",
		},
		{
			name:  "Quebra de linha do Windows",
			input: "الاسم : محمد\r\nالمبلغ : 100",
			want:  "الاسم : محمد\nالمبلغ : 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	input := "17/07/2025, 11:27 PM - Ahmed: الاسم : محمد\n<Media omitted>\nالمبلغ : 100 <This message was edited>"

	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}

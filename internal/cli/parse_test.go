package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOrders = "الاسم : أحمد\nالمبلغ : 1190 + 65\n\nالاسم : سارة\nالمبلغ : 500\n\nمرحبا"

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand_EntradaPadrao(t *testing.T) {
	out, err := runCommand(t, sampleOrders, "parse", "--team", "a")

	require.NoError(t, err)
	assert.Contains(t, out, "#1 ok")
	assert.Contains(t, out, "1255")
	assert.Contains(t, out, "#3 rejected no_amount")
	assert.Contains(t, out, "pedidos: 2  vendas: 1,755  rejeitados: 1")
}

func TestParseCommand_ArquivoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleOrders), 0o600))

	out, err := runCommand(t, "", "parse", path, "--json", "--team", "C1")

	require.NoError(t, err)
	assert.Contains(t, out, `"team": "C1"`)
	assert.Contains(t, out, `"order_count": 2`)
	assert.Contains(t, out, `"reason": "no_amount"`)
}

func TestParseCommand_TimeDesconhecido(t *testing.T) {
	_, err := runCommand(t, sampleOrders, "parse", "--team", "Z")

	assert.Error(t, err)
}

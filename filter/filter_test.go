package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyorn/xivseek/xivapi"
)

func TestCompile(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		f, err := Compile(`LevelItem > 20 && contains(Name, "iron")`)
		require.NoError(t, err)
		assert.Equal(t, `LevelItem > 20 && contains(Name, "iron")`, f.Expression())
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		require.Error(t, err)

		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Equal(t, "empty expression", compErr.Reason)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile("LevelItem >")
		require.Error(t, err)

		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Error(t, compErr.Err)
	})

	t.Run("non-boolean expression", func(t *testing.T) {
		_, err := Compile(`1 + 2`)
		require.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	row := xivapi.Row{
		"ID":        1675,
		"Name":      "Iron Ingot",
		"LevelItem": 23,
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`LevelItem > 20`, true},
		{`LevelItem > 50`, false},
		{`contains(Name, "iron")`, true},
		{`startsWith(Name, "iron")`, true},
		{`endsWith(Name, "ingot")`, true},
		{`lower(Name) == "iron ingot"`, true},
		{`upper(Name) == "IRON INGOT"`, true},
		{`LevelItem > 20 && contains(Name, "steel")`, false},
		{`Row["ID"] == 1675`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Evaluate(row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateMissingColumn(t *testing.T) {
	f, err := Compile(`Missing > 5`)
	require.NoError(t, err)

	_, err = f.Evaluate(xivapi.Row{"Name": "Iron Ingot"})
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	rows := []xivapi.Row{
		{"Name": "Iron Ingot", "LevelItem": 23},
		{"Name": "Steel Ingot", "LevelItem": 29},
		{"Name": "Iron Ore", "LevelItem": 13},
	}

	f, err := Compile(`LevelItem > 20`)
	require.NoError(t, err)

	matched, err := f.Apply(rows)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Iron Ingot", matched[0]["Name"])
	assert.Equal(t, "Steel Ingot", matched[1]["Name"])
}

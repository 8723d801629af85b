package pathutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norman-ai/utils"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"family_a": map[string]any{
			"raccoon_1": "Bandit",
			"raccoon_2": "Cooper",
		},
		"members": []any{
			map[string]any{"name": "Rascal", "age": 3},
			map[string]any{"name": "Meeko", "age": 5},
		},
	}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()

	v, err := Get(doc, "family_a.raccoon_1")
	require.NoError(t, err)
	assert.Equal(t, "Bandit", v)

	v, err = Get(doc, "members[1].name")
	require.NoError(t, err)
	assert.Equal(t, "Meeko", v)

	v, err = Get(doc, "members[0].age")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestGet_EmptyPath(t *testing.T) {
	doc := sampleDoc()
	v, err := Get(doc, "")
	require.NoError(t, err)
	assert.Equal(t, doc, v)
}

func TestGet_StructFields(t *testing.T) {
	type den struct {
		Leader string
	}
	type nest struct {
		Den den
	}

	v, err := Get(nest{Den: den{Leader: "Rocket"}}, "Den.Leader")
	require.NoError(t, err)
	assert.Equal(t, "Rocket", v)

	v, err = Get(&nest{Den: den{Leader: "Rocket"}}, "Den.Leader")
	require.NoError(t, err)
	assert.Equal(t, "Rocket", v)
}

func TestGet_Errors(t *testing.T) {
	doc := sampleDoc()

	_, err := Get(doc, "family_a.raccoon_9")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = Get(doc, "members[9]")
	assert.ErrorIs(t, err, utils.ErrOutOfRange)

	_, err = Get(doc, "members.name")
	assert.ErrorIs(t, err, utils.ErrMalformedPath)

	_, err = Get(doc, "family_a.raccoon_1.deeper")
	assert.ErrorIs(t, err, utils.ErrUnsupportedValue)

	var structured *utils.Error
	_, err = Get(doc, "family_a.raccoon_9")
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, "pathutil.Get", structured.Op)
	assert.Equal(t, utils.KindNotFound, structured.Kind)
}

func TestSet_ExistingPath(t *testing.T) {
	doc := sampleDoc()

	out, err := Set(doc, "family_a.raccoon_1", "Shadow")
	require.NoError(t, err)
	assert.Equal(t, "Shadow", out.(map[string]any)["family_a"].(map[string]any)["raccoon_1"])

	_, err = Set(doc, "members[0].name", "Ranger")
	require.NoError(t, err)
	v, err := Get(doc, "members[0].name")
	require.NoError(t, err)
	assert.Equal(t, "Ranger", v)
}

func TestSet_CreatesIntermediates(t *testing.T) {
	doc := map[string]any{}

	_, err := Set(doc, "a.b[2].c", "deep")
	require.NoError(t, err)

	v, err := Get(doc, "a.b[2].c")
	require.NoError(t, err)
	assert.Equal(t, "deep", v)

	// b grew to index 2 with nil filler before it.
	b, err := Get(doc, "a.b")
	require.NoError(t, err)
	require.Len(t, b, 3)
	assert.Nil(t, b.([]any)[0])
	assert.Nil(t, b.([]any)[1])
}

func TestSet_GrowsTopLevelSequence(t *testing.T) {
	out, err := Set([]any{}, "[3]", "tail")
	require.NoError(t, err)

	seq := out.([]any)
	require.Len(t, seq, 4)
	assert.Equal(t, "tail", seq[3])
}

func TestSet_Errors(t *testing.T) {
	_, err := Set("scalar", "a.b", 1)
	assert.ErrorIs(t, err, utils.ErrUnsupportedValue)

	_, err = Set(map[string]any{}, "", 1)
	assert.ErrorIs(t, err, utils.ErrMalformedPath)

	_, err = Set([]any{}, "notanindex", 1)
	assert.ErrorIs(t, err, utils.ErrMalformedPath)

	// Writing through an existing scalar is refused.
	_, err = Set(map[string]any{"a": 5}, "a.b", 1)
	assert.ErrorIs(t, err, utils.ErrUnsupportedValue)
}

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuery(t *testing.T) *QueryService {
	t.Helper()
	ref := validReference()
	require.Empty(t, ref.Validate())
	return NewQueryService(ref, ref.BuildIndex())
}

func TestListComponents(t *testing.T) {
	q := newTestQuery(t)

	all := q.ListComponents("", "")
	assert.Len(t, all, 2)

	byPackage := q.ListComponents("mui-material", "")
	require.Len(t, byPackage, 1)
	assert.Equal(t, "Button", byPackage[0].Name)

	byKeyword := q.ListComponents("", "tap")
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "Button", byKeyword[0].Name)

	assert.Empty(t, q.ListComponents("mui-system", "tap"))
}

func TestListHooks(t *testing.T) {
	q := newTestQuery(t)

	assert.Len(t, q.ListHooks(""), 1)
	assert.Len(t, q.ListHooks("button"), 1)
	assert.Empty(t, q.ListHooks("slider"))
}

func TestGetComponent(t *testing.T) {
	q := newTestQuery(t)

	byName, ok := q.GetComponent("Button")
	require.True(t, ok)
	assert.Equal(t, "/material/api/button/", byName.Pathname)

	byPrefixed, ok := q.GetComponent("MuiButton")
	require.True(t, ok)
	assert.Equal(t, "Button", byPrefixed.Name)

	byPathname, ok := q.GetComponent("/system/api/stack/")
	require.True(t, ok)
	assert.Equal(t, "Stack", byPathname.Name)

	_, ok = q.GetComponent("Dialog")
	assert.False(t, ok)
}

func TestGetHook(t *testing.T) {
	q := newTestQuery(t)

	hook, ok := q.GetHook("useButton")
	require.True(t, ok)
	assert.Equal(t, "/base/api/use-button/", hook.Pathname)

	_, ok = q.GetHook("useSlider")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	q := newTestQuery(t)

	byName := q.Search("but")
	require.NotEmpty(t, byName)
	assert.Equal(t, "component", byName[0].Kind)
	assert.Equal(t, "name", byName[0].MatchReason)

	byProp := q.Search("spacing")
	require.Len(t, byProp, 1)
	assert.Equal(t, "Stack", byProp[0].Name)
	assert.Equal(t, "prop:spacing", byProp[0].MatchReason)

	byReturn := q.Search("getRootProps")
	require.Len(t, byReturn, 1)
	assert.Equal(t, "hook", byReturn[0].Kind)
	assert.Equal(t, "return:getRootProps", byReturn[0].MatchReason)

	assert.Nil(t, q.Search(""))
}

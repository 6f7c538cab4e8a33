package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/muse/internal/model"
)

func TestNavigator_StartsAtHome(t *testing.T) {
	assert.Equal(t, model.ViewHome, NewNavigator().Current())
}

func TestNavigator_AnyViewReachable(t *testing.T) {
	for _, from := range model.Views() {
		for _, to := range model.Views() {
			n := NewNavigator()
			require.NoError(t, n.Navigate(from))
			require.NoError(t, n.Navigate(to))
			assert.Equal(t, to, n.Current(), "%s -> %s", from, to)
		}
	}
}

func TestNavigator_NotifiesEveryNavigation(t *testing.T) {
	n := NewNavigator()
	var seen []model.View
	n.SetOnChange(func(v model.View) { seen = append(seen, v) })

	require.NoError(t, n.Navigate(model.ViewCreate))
	require.NoError(t, n.Navigate(model.ViewCreate))
	require.NoError(t, n.Navigate(model.ViewSettings))

	assert.Equal(t, []model.View{model.ViewCreate, model.ViewCreate, model.ViewSettings}, seen)
}

func TestNavigator_RejectsUnknownView(t *testing.T) {
	n := NewNavigator()
	called := false
	n.SetOnChange(func(model.View) { called = true })

	err := n.Navigate(model.View("detail"))
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, model.ViewHome, n.Current())
	assert.False(t, called)
}

package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamMembershipIsCaseInsensitive(t *testing.T) {
	tm := New("pvp", "Steve")

	assert.Equal(t, "pvp", tm.Name())
	assert.True(t, tm.Member("steve"))
	assert.True(t, tm.Member(" STEVE "))
	assert.False(t, tm.Member("Alex"))
}

func TestTeamJoinLeave(t *testing.T) {
	tm := New("pvp")

	assert.True(t, tm.Join("Alex"))
	assert.False(t, tm.Join("alex"))
	assert.True(t, tm.Member("Alex"))

	assert.True(t, tm.Leave("ALEX"))
	assert.False(t, tm.Leave("Alex"))
	assert.False(t, tm.Member("Alex"))
}

func TestTeamMembersSorted(t *testing.T) {
	tm := New("pvp", "Zed", "alex", "Mia")
	assert.Equal(t, []string{"alex", "mia", "zed"}, tm.Members())

	tm.Replace([]string{"Bob"})
	assert.Equal(t, []string{"bob"}, tm.Members())
	assert.False(t, tm.Member("alex"))
}

package blizzard

import (
	"testing"

	"github.com/JosephVasc/arenameta/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveNamespaceRetail(t *testing.T) {
	ns := ResolveNamespace(models.GameVersionRetail)

	assert.Equal(t, "profile-us", ns.Profile)
	assert.Equal(t, "dynamic-us", ns.Dynamic)
	assert.Equal(t, 33, ns.Season)
}

func TestResolveNamespaceClassic(t *testing.T) {
	ns := ResolveNamespace(models.GameVersionClassic)

	assert.Equal(t, "profile-classic-us", ns.Profile)
	assert.Equal(t, "dynamic-classic-us", ns.Dynamic)
	assert.Equal(t, 1, ns.Season)
}

package dns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoServices() *fakeRunner {
	return newFakeRunner().on("networksetup -listallnetworkservices", "Wi-Fi\nEthernet\n")
}

func TestApplyPublicDNS(t *testing.T) {
	runner := twoServices().
		on(publicSetCommand("Wi-Fi"), "").
		on(publicSetCommand("Ethernet"), "").
		on("networksetup -getdnsservers Wi-Fi", publicGetOutput()).
		on("networksetup -getdnsservers Ethernet", publicGetOutput())

	var outcomes []Outcome
	err := NewReconciler(NewHost(runner, testConfig(t))).Apply(PublicDNS, func(o Outcome) {
		outcomes = append(outcomes, o)
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "Wi-Fi", outcomes[0].State.Interface)
	assert.Equal(t, "Ethernet", outcomes[1].State.Interface)
	for _, o := range outcomes {
		assert.True(t, o.OK)
		assert.Equal(t, PublicDNS, o.Desired)
	}
	// set then verify, service by service
	assert.Equal(t, []string{
		"networksetup -listallnetworkservices",
		publicSetCommand("Wi-Fi"),
		"networksetup -getdnsservers Wi-Fi",
		publicSetCommand("Ethernet"),
		"networksetup -getdnsservers Ethernet",
	}, runner.calls)
}

func TestApplyClearToDHCP(t *testing.T) {
	runner := twoServices().
		on("networksetup -setdnsservers Wi-Fi empty", "").
		on("networksetup -setdnsservers Ethernet empty", "").
		on("networksetup -getdnsservers Wi-Fi", unsetOutput("Wi-Fi")).
		on("networksetup -getdnsservers Ethernet", unsetOutput("Wi-Fi")).
		on("scutil --dns", scutilDNS)

	var outcomes []Outcome
	err := NewReconciler(NewHost(runner, testConfig(t))).Apply(ClearToDHCP, func(o Outcome) {
		outcomes = append(outcomes, o)
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.True(t, o.OK)
	}
	// verification never reads the system wide fallback
	assert.Zero(t, runner.count("scutil"))
}

func TestApplyMismatchIsNotAnError(t *testing.T) {
	runner := twoServices().
		on("networksetup -setdnsservers Wi-Fi empty", "").
		on("networksetup -setdnsservers Ethernet empty", "").
		on("networksetup -getdnsservers Wi-Fi", "9.9.9.9\n").
		on("networksetup -getdnsservers Ethernet", unsetOutput("Ethernet"))

	var outcomes []Outcome
	err := NewReconciler(NewHost(runner, testConfig(t))).Apply(ClearToDHCP, func(o Outcome) {
		outcomes = append(outcomes, o)
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].OK)
	assert.Equal(t, []string{"9.9.9.9"}, outcomes[0].State.Servers)
	assert.True(t, outcomes[1].OK)
}

func TestApplyAbortsOnFirstFailure(t *testing.T) {
	runner := twoServices().
		fail(publicSetCommand("Wi-Fi"), errors.New("exit status 1")).
		on(publicSetCommand("Ethernet"), "").
		on("networksetup -getdnsservers Ethernet", publicGetOutput())

	reported := 0
	err := NewReconciler(NewHost(runner, testConfig(t))).Apply(PublicDNS, func(Outcome) {
		reported++
	})
	require.Error(t, err)
	assert.True(t, IsCollaboratorError(err))
	assert.Zero(t, reported)
	for _, call := range runner.calls {
		assert.NotContains(t, call, "Ethernet")
	}
}

func TestApplyEnumerationFailure(t *testing.T) {
	runner := newFakeRunner().fail("networksetup -listallnetworkservices", errors.New("exit status 1"))
	err := NewReconciler(NewHost(runner, testConfig(t))).Apply(PublicDNS, func(Outcome) {
		t.Fatal("nothing must be reported")
	})
	assert.True(t, IsCollaboratorError(err))
	assert.Len(t, runner.calls, 1)
}

func TestApplyIsIdempotent(t *testing.T) {
	runner := newStatefulRunner("Wi-Fi", "Ethernet")
	reconciler := NewReconciler(NewHost(runner, testConfig(t)))

	run := func(d Desired) []bool {
		var oks []bool
		require.NoError(t, reconciler.Apply(d, func(o Outcome) { oks = append(oks, o.OK) }))
		return oks
	}

	first := run(PublicDNS)
	second := run(PublicDNS)
	assert.Equal(t, []bool{true, true}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, PublicServers(), runner.servers["Wi-Fi"])

	first = run(ClearToDHCP)
	second = run(ClearToDHCP)
	assert.Equal(t, []bool{true, true}, first)
	assert.Equal(t, first, second)
	assert.Empty(t, runner.servers)
}

func TestListScenario(t *testing.T) {
	runner := newFakeRunner().
		on("networksetup -listallnetworkservices", listing).
		on("networksetup -getdnsservers Wi-Fi", unsetOutput("Wi-Fi")).
		on("networksetup -getdnsservers Ethernet", "9.9.9.9\n149.112.112.112\n").
		on("scutil --dns", "nameserver[0] : 192.168.1.1\nnameserver[1] : 192.168.1.1\n")

	var states []State
	err := NewReconciler(NewHost(runner, testConfig(t))).List(func(s State) {
		states = append(states, s)
	})
	require.NoError(t, err)
	assert.Equal(t, []State{
		{Interface: "Wi-Fi", Servers: []string{"192.168.1.1"}, Source: SourceSystemFallback},
		{Interface: "Ethernet", Servers: []string{"9.9.9.9", "149.112.112.112"}, Source: SourceManual},
	}, states)
	assert.Equal(t, 1, runner.count("scutil"))
	assert.Zero(t, runner.count("networksetup -setdnsservers"))
}

func TestListAbortsOnFailure(t *testing.T) {
	runner := twoServices().fail("networksetup -getdnsservers Wi-Fi", errors.New("exit status 1"))
	reported := 0
	err := NewReconciler(NewHost(runner, testConfig(t))).List(func(State) { reported++ })
	assert.True(t, IsCollaboratorError(err))
	assert.Zero(t, reported)
	assert.Zero(t, runner.count("networksetup -getdnsservers Ethernet"))
}

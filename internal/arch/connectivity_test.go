package arch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConnectivity_Connected(t *testing.T) {
	assert.NoError(t, CheckConnectivity(chain()))
	assert.NoError(t, CheckConnectivity(diamond()))
}

func TestCheckConnectivity_RandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		assert.NoError(t, CheckConnectivity(randomDAG(rng, 1+rng.IntN(30))))
	}
}

func TestCheckConnectivity_Cycle(t *testing.T) {
	d := chain()
	d["X"] = &Layer{Type: "FooLayer", Sinks: Names("Y")}
	d["Y"] = &Layer{Type: "FooLayer", Sinks: Names("Z")}
	d["Z"] = &Layer{Type: "FooLayer", Sinks: Names("X", "Out")}
	d[InputLayerName].Sinks.Add("X")

	err := CheckConnectivity(d)
	require.ErrorIs(t, err, ErrCycle)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, [][]string{{"X", "Y", "Z"}}, cycleErr.Cycles)
	assert.Contains(t, err.Error(), "[X Y Z]")
}

func TestCheckConnectivity_SelfLoop(t *testing.T) {
	d := chain()
	d["H"].Sinks.Add("H")

	var cycleErr *CycleError
	require.ErrorAs(t, CheckConnectivity(d), &cycleErr)
	assert.Equal(t, [][]string{{"H"}}, cycleErr.Cycles)
}

func TestCheckConnectivity_IsolatedCycle(t *testing.T) {
	// An island cycle with no link to input or output.
	d := chain()
	d["P"] = &Layer{Type: "FooLayer", Sinks: Names("Q")}
	d["Q"] = &Layer{Type: "FooLayer", Sinks: Names("P")}

	var cycleErr *CycleError
	require.ErrorAs(t, CheckConnectivity(d), &cycleErr)
	assert.Equal(t, [][]string{{"P", "Q"}}, cycleErr.Cycles)
}

func TestCheckConnectivity_Disconnected(t *testing.T) {
	d := chain()
	d["Orphan"] = &Layer{Type: "FooLayer", Sinks: Names("Out")}

	err := CheckConnectivity(d)
	require.ErrorIs(t, err, ErrDisconnected)

	var disc *DisconnectedError
	require.ErrorAs(t, err, &disc)
	assert.Equal(t, []string{"Orphan"}, disc.FromInput)
	assert.Empty(t, disc.ToOutput)
	assert.Contains(t, err.Error(), "not reachable from input: Orphan")
}

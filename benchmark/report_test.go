package benchmark

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, r *Report) map[string]any {
	t.Helper()
	out, err := r.Render()
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	return doc
}

// requireZeroNumbers walks the decoded document and fails on any numeric
// leaf that is not zero.
func requireZeroNumbers(t *testing.T, path string, v any) {
	t.Helper()
	switch x := v.(type) {
	case map[string]any:
		for k, vv := range x {
			requireZeroNumbers(t, path+"/"+k, vv)
		}
	case []any:
		for _, vv := range x {
			requireZeroNumbers(t, path+"[]", vv)
		}
	case float64:
		require.Zero(t, x, "numeric leaf %s", path)
	}
}

func TestReportDefaults(t *testing.T) {
	cases := []struct {
		system string
		build  func(string, string) *Report
	}{
		{"halo2", NewHalo2Report},
		{"aleo-snarkos", NewSnarkOSReport},
		{"aleo-snarkvm", NewSnarkVMReport},
		{"miden", NewMidenReport},
		{"nexus", NewNexusReport},
	}
	for _, tc := range cases {
		t.Run(tc.system, func(t *testing.T) {
			doc := decode(t, tc.build("ecdsa_verification", ""))
			require.Equal(t, tc.system, doc["system"])
			require.Equal(t, "ecdsa_verification", doc["operation"])
			require.Equal(t, DefaultCircuitSize, doc["circuit_size"])

			_, err := time.Parse(time.RFC3339, doc["timestamp"].(string))
			require.NoError(t, err)

			requireZeroNumbers(t, "", doc)
		})
	}
}

func TestCircuitSizePassedThrough(t *testing.T) {
	doc := decode(t, NewHalo2Report("ecdsa_verification", "large"))
	require.Equal(t, "large", doc["circuit_size"])
}

func TestSystemSpecificSections(t *testing.T) {
	halo2 := decode(t, NewHalo2Report("op", ""))
	require.NotContains(t, halo2, "network_metrics")
	require.NotContains(t, halo2, "execution_metrics")

	snarkos := decode(t, NewSnarkOSReport("op", ""))
	require.Contains(t, snarkos, "network_metrics")
	net := snarkos["network_metrics"].(map[string]any)
	require.Contains(t, net, "block_height")
	require.Contains(t, net, "sync_status")
	feats := snarkos["features"].(map[string]any)
	require.Equal(t, "PoSW", feats["consensus_mechanism"])

	snarkvm := decode(t, NewSnarkVMReport("op", ""))
	require.Contains(t, snarkvm, "execution_metrics")
	exec := snarkvm["execution_metrics"].(map[string]any)
	require.Contains(t, exec, "program_id")
	require.Contains(t, exec, "register_usage")

	miden := decode(t, NewMidenReport("op", ""))
	require.Contains(t, miden["performance_metrics"].(map[string]any), "vm_cycles")
	require.Equal(t, true, miden["security_metrics"].(map[string]any)["post_quantum_resistant"])

	nexus := decode(t, NewNexusReport("op", ""))
	require.Contains(t, nexus["features"].(map[string]any), "native_lookups")
	require.Contains(t, nexus["scalability_metrics"].(map[string]any), "lookup_table_size")
}

func TestCollectAll(t *testing.T) {
	reports, err := CollectAll(context.Background(), "ecdsa_verification", "medium")
	require.NoError(t, err)
	require.Len(t, reports, 5)

	want := []string{"halo2", "aleo-snarkos", "aleo-snarkvm", "miden", "nexus"}
	for i, r := range reports {
		require.Equal(t, want[i], r.System)
		require.Equal(t, "medium", r.CircuitSize)
	}
}

func TestCollectAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CollectAll(ctx, "ecdsa_verification", "")
	require.ErrorIs(t, err, context.Canceled)
}

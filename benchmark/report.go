// Package benchmark defines the per-proving-system metric reports the
// harness binaries print. The reports are output scaffolds: every numeric
// leaf stays at zero until measurement code fills it in, while string and
// boolean leaves carry the fixed characteristics of each system.
package benchmark

import (
	"encoding/json"
	"time"
)

// DefaultCircuitSize is used when a harness is invoked without arguments.
const DefaultCircuitSize = "small"

// Report is one metrics document. The shared sections appear for every
// system; the trailing extension sections only for the systems that declare
// them.
type Report struct {
	Operation   string `json:"operation"`
	System      string `json:"system"`
	CircuitSize string `json:"circuit_size"`
	Timestamp   string `json:"timestamp"`

	Time         TimeMetrics        `json:"time_metrics"`
	Resource     ResourceMetrics    `json:"resource_metrics"`
	Setup        SetupMetrics       `json:"setup_metrics"`
	Features     Features           `json:"features"`
	Security     SecurityMetrics    `json:"security_metrics"`
	Scalability  ScalabilityMetrics `json:"scalability_metrics"`
	Performance  PerformanceMetrics `json:"performance_metrics"`
	Requirements SystemRequirements `json:"system_requirements"`

	Network   *NetworkMetrics   `json:"network_metrics,omitempty"`
	Execution *ExecutionMetrics `json:"execution_metrics,omitempty"`
}

type TimeMetrics struct {
	SetupTimeMs          int64 `json:"setup_time_ms"`
	ProvingTimeMs        int64 `json:"proving_time_ms"`
	VerificationTimeMs   int64 `json:"verification_time_ms"`
	TotalExecutionTimeMs int64 `json:"total_execution_time_ms"`

	BlockProductionTimeMs *int64 `json:"block_production_time_ms,omitempty"`
	ConsensusTimeMs       *int64 `json:"consensus_time_ms,omitempty"`
	CompilationTimeMs     *int64 `json:"compilation_time_ms,omitempty"`
	ExecutionTimeMs       *int64 `json:"execution_time_ms,omitempty"`
}

type ResourceMetrics struct {
	PeakMemoryUsageKb     int64 `json:"peak_memory_usage_kb"`
	ProofSizeBytes        int64 `json:"proof_size_bytes"`
	CPUUtilizationPercent int64 `json:"cpu_utilization_percent"`
	GPUUtilizationPercent int64 `json:"gpu_utilization_percent"`

	NetworkBandwidthUsage *int64 `json:"network_bandwidth_usage,omitempty"`
	CircuitSizeBytes      *int64 `json:"circuit_size_bytes,omitempty"`
}

type SetupMetrics struct {
	SetupType      string `json:"setup_type"`
	SetupSizeBytes int64  `json:"setup_size_bytes"`
	SetupReusable  bool   `json:"setup_reusable"`
}

type Features struct {
	RecursiveProofs      bool `json:"recursive_proofs"`
	UniversalCircuits    bool `json:"universal_circuits"`
	ParallelProving      bool `json:"parallel_proving"`
	ParallelVerification bool `json:"parallel_verification"`
	CustomGates          bool `json:"custom_gates"`

	ConsensusMechanism    *string `json:"consensus_mechanism,omitempty"`
	NetworkProtocol       *string `json:"network_protocol,omitempty"`
	PrivateExecution      *bool   `json:"private_execution,omitempty"`
	RecordTypes           *bool   `json:"record_types,omitempty"`
	NativeFieldOperations *bool   `json:"native_field_operations,omitempty"`
	ZeroKnowledge         *bool   `json:"zero_knowledge,omitempty"`
	NativeLookups         *bool   `json:"native_lookups,omitempty"`
}

type SecurityMetrics struct {
	PostQuantumResistant bool     `json:"post_quantum_resistant"`
	SecurityLevelBits    int64    `json:"security_level_bits"`
	Assumptions          []string `json:"assumptions"`
}

type ScalabilityMetrics struct {
	ConstraintsCount            int64  `json:"constraints_count"`
	VariablesCount              int64  `json:"variables_count"`
	Degree                      int64  `json:"degree"`
	ProvingComplexityClass      string `json:"proving_complexity_class"`
	VerificationComplexityClass string `json:"verification_complexity_class"`

	NetworkTps      *int64 `json:"network_tps,omitempty"`
	BlockCapacity   *int64 `json:"block_capacity,omitempty"`
	ProgramSize     *int64 `json:"program_size,omitempty"`
	LookupTableSize *int64 `json:"lookup_table_size,omitempty"`
}

type PerformanceMetrics struct {
	ThroughputProofsPerSecond  float64 `json:"throughput_proofs_per_second"`
	LatencyMs                  int64   `json:"latency_ms"`
	BatchProvingSupported      bool    `json:"batch_proving_supported"`
	BatchVerificationSupported bool    `json:"batch_verification_supported"`

	BlockTimeMs               *int64 `json:"block_time_ms,omitempty"`
	NetworkLatencyMs          *int64 `json:"network_latency_ms,omitempty"`
	InstructionCount          *int64 `json:"instruction_count,omitempty"`
	MemoryUsagePerInstruction *int64 `json:"memory_usage_per_instruction,omitempty"`
	VMCycles                  *int64 `json:"vm_cycles,omitempty"`
}

type SystemRequirements struct {
	MinimumMemoryGb     int64 `json:"minimum_memory_gb"`
	RecommendedCPUCores int64 `json:"recommended_cpu_cores"`
	GPURequired         bool  `json:"gpu_required"`
	DiskSpaceGb         int64 `json:"disk_space_gb"`

	NetworkBandwidthRequired *int64 `json:"network_bandwidth_required,omitempty"`
}

type NetworkMetrics struct {
	BlockHeight       int64  `json:"block_height"`
	NetworkDifficulty int64  `json:"network_difficulty"`
	ConnectedPeers    int64  `json:"connected_peers"`
	SyncStatus        string `json:"sync_status"`
	MempoolSize       int64  `json:"mempool_size"`
}

type ExecutionMetrics struct {
	ProgramID     string `json:"program_id"`
	FunctionID    string `json:"function_id"`
	InputSize     int64  `json:"input_size"`
	OutputSize    int64  `json:"output_size"`
	StackSize     int64  `json:"stack_size"`
	RegisterUsage int64  `json:"register_usage"`
}

// Render pretty-prints the report.
func (r *Report) Render() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func boolean(v bool) *bool { return &v }

func newReport(system, operation, circuitSize string) *Report {
	if circuitSize == "" {
		circuitSize = DefaultCircuitSize
	}
	return &Report{
		Operation:   operation,
		System:      system,
		CircuitSize: circuitSize,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Scalability: ScalabilityMetrics{
			ProvingComplexityClass:      "O(n log n)",
			VerificationComplexityClass: "O(1)",
		},
	}
}

// NewHalo2Report describes the halo2 prover.
func NewHalo2Report(operation, circuitSize string) *Report {
	r := newReport("halo2", operation, circuitSize)
	r.Setup = SetupMetrics{SetupType: "trusted", SetupReusable: true}
	r.Security.Assumptions = []string{"discrete_log"}
	r.Scalability.VerificationComplexityClass = "O(n)"
	return r
}

// NewSnarkOSReport describes an Aleo snarkOS node.
func NewSnarkOSReport(operation, circuitSize string) *Report {
	r := newReport("aleo-snarkos", operation, circuitSize)
	r.Time.BlockProductionTimeMs = i64(0)
	r.Time.ConsensusTimeMs = i64(0)
	r.Resource.NetworkBandwidthUsage = i64(0)
	r.Setup = SetupMetrics{SetupType: "universal_srs", SetupReusable: true}
	r.Features = Features{
		RecursiveProofs:      true,
		UniversalCircuits:    true,
		ParallelProving:      true,
		ParallelVerification: true,
		CustomGates:          true,
		ConsensusMechanism:   str("PoSW"),
		NetworkProtocol:      str("P2P"),
	}
	r.Security.Assumptions = []string{"discrete_log", "collision_resistant_hash"}
	r.Scalability.NetworkTps = i64(0)
	r.Scalability.BlockCapacity = i64(0)
	r.Performance.BatchProvingSupported = true
	r.Performance.BatchVerificationSupported = true
	r.Performance.BlockTimeMs = i64(0)
	r.Performance.NetworkLatencyMs = i64(0)
	r.Requirements.NetworkBandwidthRequired = i64(0)
	r.Network = &NetworkMetrics{}
	return r
}

// NewSnarkVMReport describes the Aleo snarkVM executor.
func NewSnarkVMReport(operation, circuitSize string) *Report {
	r := newReport("aleo-snarkvm", operation, circuitSize)
	r.Time.CompilationTimeMs = i64(0)
	r.Time.ExecutionTimeMs = i64(0)
	r.Resource.CircuitSizeBytes = i64(0)
	r.Setup = SetupMetrics{SetupType: "universal_srs", SetupReusable: true}
	r.Features = Features{
		RecursiveProofs:      true,
		UniversalCircuits:    true,
		ParallelProving:      true,
		ParallelVerification: true,
		CustomGates:          true,
		PrivateExecution:     boolean(true),
		RecordTypes:          boolean(true),
	}
	r.Security.Assumptions = []string{"discrete_log", "collision_resistant_hash"}
	r.Scalability.ProgramSize = i64(0)
	r.Performance.BatchProvingSupported = true
	r.Performance.BatchVerificationSupported = true
	r.Performance.InstructionCount = i64(0)
	r.Performance.MemoryUsagePerInstruction = i64(0)
	r.Execution = &ExecutionMetrics{}
	return r
}

// NewMidenReport describes the Miden VM prover.
func NewMidenReport(operation, circuitSize string) *Report {
	r := newReport("miden", operation, circuitSize)
	r.Setup = SetupMetrics{SetupType: "transparent", SetupReusable: true}
	r.Features = Features{
		RecursiveProofs:       true,
		UniversalCircuits:     true,
		ParallelProving:       true,
		ParallelVerification:  true,
		CustomGates:           true,
		NativeFieldOperations: boolean(true),
	}
	r.Security.PostQuantumResistant = true
	r.Security.Assumptions = []string{"collision_resistant_hash", "AIR_soundness"}
	r.Performance.BatchProvingSupported = true
	r.Performance.BatchVerificationSupported = true
	r.Performance.VMCycles = i64(0)
	return r
}

// NewNexusReport describes the Nexus prover.
func NewNexusReport(operation, circuitSize string) *Report {
	r := newReport("nexus", operation, circuitSize)
	r.Setup = SetupMetrics{SetupType: "transparent", SetupReusable: true}
	r.Features = Features{
		RecursiveProofs:      true,
		UniversalCircuits:    true,
		ParallelProving:      true,
		ParallelVerification: true,
		CustomGates:          true,
		ZeroKnowledge:        boolean(true),
		NativeLookups:        boolean(true),
	}
	r.Security.PostQuantumResistant = true
	r.Security.Assumptions = []string{"collision_resistant_hash", "discrete_log"}
	r.Scalability.LookupTableSize = i64(0)
	r.Performance.BatchProvingSupported = true
	r.Performance.BatchVerificationSupported = true
	return r
}

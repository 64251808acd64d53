package memaccount

import (
	"fmt"

	"valuecore/object"
)

// keyBookkeepingOverhead is the bytes one keyspace entry's hashtable slot
// costs beyond the value it points to; the key string's own length is
// added separately, as command/dispatch.go's MEMORY USAGE accounting does.
const keyBookkeepingOverhead = 48

// ValueOverhead breaks down a single value's footprint into a
// header/payload split (spec.md §4.6). MEMORY USAGE does not use it; that
// command reports SizeOf plus key bookkeeping directly. Not to be
// confused with OverheadReport,
// the process-wide structure overheadReport() collects.
type ValueOverhead struct {
	Kind         string
	Encoding     string
	TotalBytes   int
	HeaderBytes  int
	PayloadBytes int
	Sampled      bool
}

// ComputeValueOverhead runs SizeOf and splits the result into header
// vs. payload for reporting. Sampled is true whenever the encoding's
// exact size would require a full O(size) walk and an approximation
// was used instead (spec.md §4.6: "approximate for HT/QuickList/
// SkipList").
func ComputeValueOverhead(v *object.Value, samples int) ValueOverhead {
	total := SizeOf(v, samples)
	report := ValueOverhead{
		Kind:        v.Kind().String(),
		Encoding:    v.Encoding().WireName(),
		TotalBytes:  total,
		HeaderBytes: headerSize,
	}
	report.PayloadBytes = total - headerSize
	switch v.Encoding() {
	case object.EncHT, object.EncQuickList, object.EncSkipList:
		report.Sampled = true
	}
	return report
}

// HostMemoryInputs carries the host-process buffer and replication
// figures overheadReport() folds in (spec.md §4.6) that this package
// has no way to observe on its own: a standalone binary with no
// replication link and no client-output-buffer tracking supplies zero
// values for all of them. A host embedding this layer behind real
// replica/client connections wires the real counts in before calling
// ComputeOverheadReport.
type HostMemoryInputs struct {
	ReplicationBacklogBytes int64

	NormalClientBufferBytes int64 // sum of output+query buffers across normal clients
	NumNormalClients        int

	SlaveBufferBytes int64 // sum of output+query buffers across connected replicas
	NumSlaves        int

	PersistenceBufferBytes int64
}

// DatabaseOverhead is one keyspace's contribution to an OverheadReport
// (spec.md §4.6's "per-database entry": id, main-hashtable bookkeeping
// bytes, expires-hashtable bookkeeping bytes, key count).
type DatabaseOverhead struct {
	ID                    int
	MainHashtableBytes    int64
	ExpiresHashtableBytes int64
	Keys                  int
}

// OverheadReport is the process-wide structure overheadReport()
// collects (spec.md §4.6): allocator usage, fragmentation, replication
// and client buffer bytes, per-database entries, and the derived
// fields MEMORY STATS reports alongside them.
type OverheadReport struct {
	TotalBytes         int64
	StartupBaseline    int64
	HistoricalPeak     int64
	FragmentationRatio float64

	HostMemoryInputs

	Databases []DatabaseOverhead

	// Derived fields.
	OverheadTotal  int64   // TotalBytes - DatasetBytes, floored at 0
	DatasetBytes   int64   // sum of every value's sizeOf
	DatasetPercent float64 // DatasetBytes / TotalBytes * 100
	BytesPerKey    int64   // DatasetBytes / total key count
	PeakPercent    float64 // TotalBytes / HistoricalPeak * 100
}

// ComputeOverheadReport builds the full overheadReport() structure: the
// allocator/fragmentation/peak figures come from monitor (nil yields
// zero values, matching a process with no sampler started); the
// per-database entry is derived by walking store and summing SizeOf
// over every value; inputs supplies the host-process figures this
// package cannot observe on its own.
func ComputeOverheadReport(store *object.Store, samples int, monitor *Monitor, inputs HostMemoryInputs) OverheadReport {
	report := OverheadReport{HostMemoryInputs: inputs}

	if monitor != nil {
		report.TotalBytes = monitor.CurrentBytes()
		report.StartupBaseline = monitor.Baseline()
		report.HistoricalPeak = monitor.Peak()
		report.FragmentationRatio = monitor.FragmentationRatio()
	}

	keys := store.Keys()
	var datasetBytes, mainHashtableBytes int64
	for _, k := range keys {
		v := store.Get(k)
		if v == nil {
			continue
		}
		datasetBytes += int64(SizeOf(v, samples))
		mainHashtableBytes += int64(len(k)) + keyBookkeepingOverhead
	}

	// A single keyspace (db 0): this layer has no database-selection or
	// expiration concept of its own (spec.md's scope is the value layer,
	// not the keyspace it lives in), so ExpiresHashtableBytes is always 0.
	report.Databases = []DatabaseOverhead{{
		ID:                 0,
		MainHashtableBytes: mainHashtableBytes,
		Keys:               len(keys),
	}}

	report.DatasetBytes = datasetBytes
	if report.TotalBytes > 0 {
		overhead := report.TotalBytes - datasetBytes
		if overhead < 0 {
			overhead = 0
		}
		report.OverheadTotal = overhead
		report.DatasetPercent = float64(datasetBytes) / float64(report.TotalBytes) * 100
	}
	if len(keys) > 0 {
		report.BytesPerKey = datasetBytes / int64(len(keys))
	}
	if report.HistoricalPeak > 0 {
		report.PeakPercent = float64(report.TotalBytes) / float64(report.HistoricalPeak) * 100
	}

	return report
}

// Pairs renders the report as the flat (name, value) list MEMORY STATS
// returns (spec.md §4.7: "the overheadReport structure serialized as a
// list of (name, value) pairs including per-database entries").
func (r OverheadReport) Pairs() []string {
	pairs := []string{
		"total_bytes", fmt.Sprintf("%d", r.TotalBytes),
		"startup_baseline", fmt.Sprintf("%d", r.StartupBaseline),
		"historical_peak", fmt.Sprintf("%d", r.HistoricalPeak),
		"fragmentation_ratio", fmt.Sprintf("%.3f", r.FragmentationRatio),
		"replication_backlog_bytes", fmt.Sprintf("%d", r.ReplicationBacklogBytes),
		"normal_client_buffer_bytes", fmt.Sprintf("%d", r.NormalClientBufferBytes),
		"slave_buffer_bytes", fmt.Sprintf("%d", r.SlaveBufferBytes),
		"persistence_buffer_bytes", fmt.Sprintf("%d", r.PersistenceBufferBytes),
		"overhead_total", fmt.Sprintf("%d", r.OverheadTotal),
		"dataset_bytes", fmt.Sprintf("%d", r.DatasetBytes),
		"dataset_percent", fmt.Sprintf("%.2f", r.DatasetPercent),
		"bytes_per_key", fmt.Sprintf("%d", r.BytesPerKey),
		"peak_percent", fmt.Sprintf("%.2f", r.PeakPercent),
	}
	for _, db := range r.Databases {
		prefix := fmt.Sprintf("db%d", db.ID)
		pairs = append(pairs,
			prefix+".keys", fmt.Sprintf("%d", db.Keys),
			prefix+".main_hashtable_bytes", fmt.Sprintf("%d", db.MainHashtableBytes),
			prefix+".expires_hashtable_bytes", fmt.Sprintf("%d", db.ExpiresHashtableBytes),
		)
	}
	return pairs
}

// Memory-doctor rule thresholds (spec.md §4.6).
const (
	emptyThresholdBytes = 5 * 1024 * 1024
	bigPeakRatio        = 1.5
	highFragRatio       = 1.4
	bigClientBufBytes   = 200 * 1024
	bigSlaveBufBytes    = 10 * 1024 * 1024
)

// DoctorFinding is one actionable observation MEMORY DOCTOR surfaces.
type DoctorFinding struct {
	Rule     string // "empty", "big_peak", "high_frag", "big_client_buf", "big_slave_buf", or "" for the no-issues fallback
	Severity string // "info" or "warning"
	Message  string
}

// MemoryDoctor evaluates the named rule set of spec.md §4.6 against an
// OverheadReport and returns a short list of plain-language findings,
// mirroring the source's MEMORY DOCTOR subcommand (spec.md §4.7). It
// never mutates anything; it is purely diagnostic.
//
// empty suppresses every other rule: below the 5MiB floor there isn't
// enough allocated memory for peak/fragmentation/buffer ratios to mean
// anything.
func MemoryDoctor(report OverheadReport) []DoctorFinding {
	if report.TotalBytes < emptyThresholdBytes {
		return []DoctorFinding{{"empty", "info", fmt.Sprintf("total memory usage is %d bytes, below the %d byte reporting floor; other checks are not meaningful at this scale", report.TotalBytes, emptyThresholdBytes)}}
	}

	var findings []DoctorFinding

	if report.HistoricalPeak > 0 && float64(report.HistoricalPeak)/float64(report.TotalBytes) > bigPeakRatio {
		findings = append(findings, DoctorFinding{"big_peak", "warning", fmt.Sprintf("historical peak (%d bytes) exceeds %.1fx current usage (%d bytes); a past spike may be keeping pages the allocator hasn't released", report.HistoricalPeak, bigPeakRatio, report.TotalBytes)})
	}

	if report.FragmentationRatio > highFragRatio {
		findings = append(findings, DoctorFinding{"high_frag", "warning", fmt.Sprintf("fragmentation ratio %.2f exceeds %.2f; MEMORY PURGE or a restart may reclaim fragmented pages", report.FragmentationRatio, highFragRatio)})
	}

	if report.NumNormalClients > 0 {
		avg := float64(report.NormalClientBufferBytes) / float64(report.NumNormalClients)
		if avg > bigClientBufBytes {
			findings = append(findings, DoctorFinding{"big_client_buf", "warning", fmt.Sprintf("average normal-client buffer is %.0f bytes, above the %d byte threshold; a slow consumer may be backing up output", avg, bigClientBufBytes)})
		}
	}

	if report.NumSlaves > 0 {
		avg := float64(report.SlaveBufferBytes) / float64(report.NumSlaves)
		if avg > bigSlaveBufBytes {
			findings = append(findings, DoctorFinding{"big_slave_buf", "warning", fmt.Sprintf("average replica buffer is %.0f bytes, above the %d byte threshold; a lagging replica may be accumulating backlog", avg, bigSlaveBufBytes)})
		}
	}

	if len(findings) == 0 {
		findings = append(findings, DoctorFinding{"", "info", "no issues detected"})
	}
	return findings
}

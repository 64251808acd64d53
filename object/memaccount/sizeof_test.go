package memaccount

import (
	"testing"

	"valuecore/object"
)

func TestSizeOfEmbStrFitsScenarioS1(t *testing.T) {
	v := object.MakeString([]byte("hello"))
	size := SizeOf(v, 5)
	if size > 64 {
		t.Errorf("expected EmbStr size <= 64 bytes, got %d", size)
	}
}

func TestSizeOfDeterministicForZipList(t *testing.T) {
	v := object.CreateList()
	first := SizeOf(v, 0)
	second := SizeOf(v, 0)
	if first != second {
		t.Errorf("expected deterministic sizeOf for ZipList encoding, got %d then %d", first, second)
	}
}

func TestSizeOfIntEncodingDeterministic(t *testing.T) {
	v := object.MakeFromInt(5)
	first := SizeOf(v, 0)
	second := SizeOf(v, 0)
	if first != second {
		t.Errorf("expected deterministic sizeOf for Int encoding, got %d then %d", first, second)
	}
}

func TestComputeValueOverheadSampledFlag(t *testing.T) {
	zl := object.CreateHash()
	report := ComputeValueOverhead(zl, 5)
	if report.Sampled {
		t.Error("expected ZipList-encoded values to report Sampled=false")
	}

	ht := object.CreateHashTable()
	report = ComputeValueOverhead(ht, 5)
	if !report.Sampled {
		t.Error("expected HT-encoded values to report Sampled=true")
	}
}

func TestMemoryDoctorEmptyRuleSuppressesOthers(t *testing.T) {
	report := OverheadReport{TotalBytes: 1024, HistoricalPeak: 10_000_000, FragmentationRatio: 3.0}
	findings := MemoryDoctor(report)
	if len(findings) != 1 || findings[0].Rule != "empty" {
		t.Errorf("expected the empty rule alone to fire below the 5MiB floor, got %+v", findings)
	}
}

func TestMemoryDoctorNoIssues(t *testing.T) {
	report := OverheadReport{TotalBytes: 50 * 1024 * 1024, HistoricalPeak: 55 * 1024 * 1024, FragmentationRatio: 1.1}
	findings := MemoryDoctor(report)
	if len(findings) != 1 || findings[0].Severity != "info" {
		t.Errorf("expected a single info finding for a clean snapshot, got %+v", findings)
	}
}

func TestMemoryDoctorFlagsBigPeakAndHighFrag(t *testing.T) {
	report := OverheadReport{TotalBytes: 50 * 1024 * 1024, HistoricalPeak: 100 * 1024 * 1024, FragmentationRatio: 2.0}
	findings := MemoryDoctor(report)
	rules := map[string]bool{}
	for _, f := range findings {
		rules[f.Rule] = true
	}
	if !rules["big_peak"] {
		t.Errorf("expected big_peak to fire when peak is 2x current usage, got %+v", findings)
	}
	if !rules["high_frag"] {
		t.Errorf("expected high_frag to fire at fragmentation ratio 2.0, got %+v", findings)
	}
}

func TestMemoryDoctorFlagsBigClientAndSlaveBuf(t *testing.T) {
	report := OverheadReport{
		TotalBytes:         50 * 1024 * 1024,
		HistoricalPeak:     50 * 1024 * 1024,
		FragmentationRatio: 1.0,
		HostMemoryInputs: HostMemoryInputs{
			NormalClientBufferBytes: 1024 * 1024,
			NumNormalClients:        1,
			SlaveBufferBytes:        20 * 1024 * 1024,
			NumSlaves:               1,
		},
	}
	findings := MemoryDoctor(report)
	rules := map[string]bool{}
	for _, f := range findings {
		rules[f.Rule] = true
	}
	if !rules["big_client_buf"] {
		t.Errorf("expected big_client_buf to fire at a 1MiB average client buffer, got %+v", findings)
	}
	if !rules["big_slave_buf"] {
		t.Errorf("expected big_slave_buf to fire at a 20MiB average replica buffer, got %+v", findings)
	}
}

func TestComputeOverheadReportDerivedFields(t *testing.T) {
	store := object.NewStore()
	store.Set("a", object.MakeString([]byte("hello")))
	store.Set("b", object.MakeFromInt(42))

	report := ComputeOverheadReport(store, 5, nil, HostMemoryInputs{})
	if len(report.Databases) != 1 || report.Databases[0].Keys != 2 {
		t.Fatalf("expected a single db entry with 2 keys, got %+v", report.Databases)
	}
	if report.DatasetBytes <= 0 {
		t.Errorf("expected positive dataset bytes, got %d", report.DatasetBytes)
	}
	if report.BytesPerKey <= 0 {
		t.Errorf("expected positive bytes-per-key, got %d", report.BytesPerKey)
	}
}

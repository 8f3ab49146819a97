package fat

import "testing"

// TestEncodeDecodeRoundTrip tests that Encode followed by Decode recovers
// the original modification time exactly.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	times := []int64{0, 1000, 1_700_000_000}
	for _, modTime := range times {
		create, write := Encode(modTime)
		decoded := Decode(create, write)
		if decoded != modTime {
			t.Errorf("round trip mismatch for %d: got %d", modTime, decoded)
		}
	}
}

// TestDecodeDSTArtifact tests that a one-hour discrepancy between create
// and write times is resolved in favor of the create time, the signature
// of a DST-boundary artifact rather than a genuine modification.
func TestDecodeDSTArtifact(t *testing.T) {
	const original int64 = 1_700_000_000
	const driftedWrite = original + 3600

	decoded := Decode(original, driftedWrite)
	if decoded != original {
		t.Errorf("expected DST artifact to resolve to create time %d, got %d", original, decoded)
	}
}

// TestDecodeGenuineChange tests that a discrepancy not matching the DST
// hour pattern is treated as a genuine modification, trusting the write
// time.
func TestDecodeGenuineChange(t *testing.T) {
	const create int64 = 1_700_000_000
	const write = create + 120

	decoded := Decode(create, write)
	if decoded != write {
		t.Errorf("expected genuine change to trust write time %d, got %d", write, decoded)
	}
}

// TestIsDSTArtifact tests IsDSTArtifact directly.
func TestIsDSTArtifact(t *testing.T) {
	if !IsDSTArtifact(1000, 1000+3600) {
		t.Error("expected exact one-hour drift to be recognized as a DST artifact")
	}
	if IsDSTArtifact(1000, 1000+7200) {
		t.Error("expected two-hour drift not to be recognized as a DST artifact")
	}
}
